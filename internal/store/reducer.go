// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/weld-storefront/models"

// Reduce returns the state that follows s after a. It does not modify s.
// Unknown actions return s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SyncStarted:
		s.Syncing = true

	case SyncSucceeded:
		s.Portfolio = a.Snapshot.Portfolio
		s.Catalogue = a.Snapshot.Catalogue
		s.Contact = a.Snapshot.Contact
		s.Loaded = true
		s.Syncing = false
		s.SyncNotice = ""

	case SyncFailed:
		s.Syncing = false
		s.SyncNotice = a.Message

	case LoggedIn:
		s.Session = a.Session

	case LoggedOut:
		s.Session = models.Session{}
		s.Upload = models.NewPendingUpload()
		s.Phase = PhaseIdle
		s.UploadError = ""
		s.Notice = ""
		s.LastAck = nil

	case TitleChanged:
		if s.Phase == PhaseSubmitting {
			return s
		}
		s.Upload.Title = a.Title
		s = edited(s)

	case DescriptionChanged:
		if s.Phase == PhaseSubmitting {
			return s
		}
		s.Upload.Description = a.Description
		s = edited(s)

	case CategoryChanged:
		if s.Phase == PhaseSubmitting || !a.Category.Valid() {
			return s
		}
		s.Upload.Category = a.Category
		s = edited(s)

	case FileSelected:
		if s.Phase == PhaseSubmitting {
			return s
		}
		s.Upload.File = a.File
		s = edited(s)

	case FileCleared:
		if s.Phase == PhaseSubmitting {
			return s
		}
		s.Upload.File = models.FileRef{}
		s = edited(s)

	case ValidationFailed:
		s.UploadError = a.Message
		s.Notice = ""

	case SubmitStarted:
		if !s.CanSubmit() {
			return s
		}
		s.Phase = PhaseSubmitting
		s.UploadError = ""
		s.Notice = ""

	case UploadSucceeded:
		if s.Phase != PhaseSubmitting {
			return s
		}
		ack := a.Ack
		s.Upload = models.PendingUpload{Category: s.Upload.Category}
		s.Phase = PhaseIdle
		s.UploadError = ""
		s.Notice = a.Message
		s.LastAck = &ack

	case UploadFailed:
		if s.Phase != PhaseSubmitting {
			return s
		}
		s.Phase = PhaseEditing
		s.UploadError = a.Message
		s.Notice = ""

	case NoticeDismissed:
		s.Notice = ""
		s.UploadError = ""
	}

	return s
}

// edited moves the form between idle and editing after a field change.
func edited(s State) State {
	u := s.Upload
	if u.Title == "" && u.Description == "" && !u.File.IsSet() && u.Category == models.DefaultCategory {
		s.Phase = PhaseIdle
	} else {
		s.Phase = PhaseEditing
	}
	s.UploadError = ""
	return s
}
