// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/weld-storefront/internal/adapter"
)

const (
	MsgUploadFailed       = "Upload failed"
	MsgNetworkUnavailable = "network unavailable or server unreachable"
	MsgAuthMismatch       = "Invalid credentials"
	MsgTitleRequired      = "Title is required"
	MsgFileRequired       = "Please choose an image or video file"
	MsgNotAuthenticated   = "Please log in as admin first"
	MsgUploadInFlight     = "Upload already in progress"
	MsgNoContact          = "Contact details are not loaded yet"
)

// UserMessage maps a service or adapter error to the text shown to the
// user. Upload failures show the server's detail when it sent one.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var upErr *adapter.UploadError
	switch {
	case errors.As(err, &upErr):
		if upErr.Detail != "" {
			return upErr.Detail
		}
		return MsgUploadFailed
	case errors.Is(err, ErrTitleRequired):
		return MsgTitleRequired
	case errors.Is(err, ErrFileRequired):
		return MsgFileRequired
	case errors.Is(err, ErrAuthMismatch):
		return MsgAuthMismatch
	case errors.Is(err, ErrNotAuthenticated):
		return MsgNotAuthenticated
	case errors.Is(err, ErrUploadInFlight):
		return MsgUploadInFlight
	case errors.Is(err, ErrNoContact):
		return MsgNoContact
	case errors.Is(err, adapter.ErrNetwork):
		return MsgNetworkUnavailable
	default:
		return err.Error()
	}
}
