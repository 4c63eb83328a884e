// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the storefront's explicit view-state container.
//
// All state lives in one [State] value. It only changes through [Reduce],
// a pure function of the previous state and an [Action]; [ViewStore] wraps
// it for callers that need a shared, mutable handle. Rendering code reads
// the state and dispatches actions but never mutates it directly.
package store

import "github.com/MKhiriev/weld-storefront/models"

// UploadPhase is the position of the admin form in the upload workflow.
type UploadPhase int

const (
	// PhaseIdle means the form is empty.
	PhaseIdle UploadPhase = iota
	// PhaseEditing means the form holds user input that was not submitted yet
	// or whose last submission failed.
	PhaseEditing
	// PhaseSubmitting means a request is in flight.
	PhaseSubmitting
)

func (p UploadPhase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "idle"
	}
}

// State is everything the shell renders.
type State struct {
	// Portfolio, Catalogue and Contact always come from the same sync cycle.
	Portfolio []models.PortfolioItem
	Catalogue []models.CatalogueItem
	Contact   models.Contact

	// Loaded is set after the first successful sync.
	Loaded bool
	// Syncing is set while a sync cycle is running.
	Syncing bool
	// SyncNotice is a passive message about the last failed sync.
	SyncNotice string

	Session models.Session

	Upload      models.PendingUpload
	Phase       UploadPhase
	UploadError string
	// Notice is the confirmation of the last successful upload.
	Notice  string
	LastAck *models.UploadAck
}

// Initial returns the state before the first sync.
func Initial() State {
	return State{Upload: models.NewPendingUpload()}
}

// CanSubmit reports whether a submit may start now.
func (s State) CanSubmit() bool {
	return s.Session.Authenticated && s.Phase != PhaseSubmitting
}
