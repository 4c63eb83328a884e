// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/weld-storefront/models"

// Action is a state transition trigger consumed by [Reduce].
type Action interface {
	isAction()
}

type (
	// SyncStarted marks the beginning of a sync cycle.
	SyncStarted struct{}

	// SyncSucceeded replaces the three collections with Snapshot.
	SyncSucceeded struct{ Snapshot models.Snapshot }

	// SyncFailed records a failed cycle; the collections stay as they were.
	SyncFailed struct{ Message string }

	// LoggedIn stores an authenticated session.
	LoggedIn struct{ Session models.Session }

	// LoggedOut clears the session and every form field.
	LoggedOut struct{}

	TitleChanged       struct{ Title string }
	DescriptionChanged struct{ Description string }
	CategoryChanged    struct{ Category models.Category }
	FileSelected       struct{ File models.FileRef }
	FileCleared        struct{}

	// ValidationFailed surfaces a local validation message without
	// touching the form.
	ValidationFailed struct{ Message string }

	// SubmitStarted enters the submitting phase. It is ignored while a
	// submission is already running or when nobody is logged in.
	SubmitStarted struct{}

	// UploadSucceeded clears title, description and file, keeps the
	// category and records the server echo.
	UploadSucceeded struct {
		Ack     models.UploadAck
		Message string
	}

	// UploadFailed keeps every field for a retry and surfaces Message.
	UploadFailed struct{ Message string }

	// NoticeDismissed clears the upload notice and error.
	NoticeDismissed struct{}
)

func (SyncStarted) isAction()        {}
func (SyncSucceeded) isAction()      {}
func (SyncFailed) isAction()         {}
func (LoggedIn) isAction()           {}
func (LoggedOut) isAction()          {}
func (TitleChanged) isAction()       {}
func (DescriptionChanged) isAction() {}
func (CategoryChanged) isAction()    {}
func (FileSelected) isAction()       {}
func (FileCleared) isAction()        {}
func (ValidationFailed) isAction()   {}
func (SubmitStarted) isAction()      {}
func (UploadSucceeded) isAction()    {}
func (UploadFailed) isAction()       {}
func (NoticeDismissed) isAction()    {}
