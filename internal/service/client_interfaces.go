// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the storefront's business workflows: the data sync
// loop, the admin credential gate, the upload workflow and the builders for
// outbound links. Nothing here knows about the terminal UI; the shell drives
// these services and feeds their results into the view-state store.
package service

import (
	"context"

	"github.com/MKhiriev/weld-storefront/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService fetches the three read-only collections as one unit.
type SyncService interface {
	// Refresh issues GET /portfolio, GET /catalogue and GET /contact
	// concurrently and waits for all three. On success the returned Snapshot
	// holds exactly the three response bodies. If any request fails, no
	// partial snapshot is returned and the error wraps adapter.ErrNetwork.
	Refresh(ctx context.Context) (models.Snapshot, error)
}

// AuthService is the cosmetic client-side gate in front of the admin form.
type AuthService interface {
	// Login compares the pair against the fixed admin credentials. A mismatch
	// returns [ErrAuthMismatch] and an unauthenticated Session.
	Login(username, password string) (models.Session, error)
}

// UploadService validates and submits admin uploads.
type UploadService interface {
	// Validate checks that the form can be submitted: the title is non-empty
	// and a file is selected. It never touches the network.
	Validate(upload models.PendingUpload) error

	// Submit validates upload, checks that session is authenticated and that
	// no other submission is running, then sends it through the gateway
	// with the session's credentials.
	Submit(ctx context.Context, session models.Session, upload models.PendingUpload) (models.UploadAck, error)
}

// LinkService builds the outbound links offered by the shell.
type LinkService interface {
	// WhatsAppURL returns a wa.me chat link pre-filled with an enquiry about
	// service.
	WhatsAppURL(contact models.Contact, service string) (string, error)

	// PhoneURL returns a tel: link for the shop phone.
	PhoneURL(contact models.Contact) (string, error)

	// MapsURL returns the shop's maps link.
	MapsURL(contact models.Contact) (string, error)

	// MediaURL resolves a backend-relative media path against the backend
	// origin. Absolute URLs are returned unchanged.
	MediaURL(path string) string
}
