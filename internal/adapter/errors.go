// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork covers every failed read: transport errors, timeouts,
	// non-2xx statuses and undecodable bodies.
	ErrNetwork = errors.New("network unavailable or server unreachable")

	// ErrUpload is wrapped by every *UploadError.
	ErrUpload = errors.New("upload failed")
)

// UploadError describes a failed POST /admin/upload.
//
// Status is 0 when no response was received. Detail is the server-provided
// message, empty when the server sent none.
type UploadError struct {
	Status int
	Detail string
	Err    error
}

func (e *UploadError) Error() string {
	switch {
	case e.Detail != "" && e.Status != 0:
		return fmt.Sprintf("%s: http %d: %s", ErrUpload, e.Status, e.Detail)
	case e.Status != 0:
		return fmt.Sprintf("%s: http %d", ErrUpload, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", ErrUpload, e.Err)
	default:
		return ErrUpload.Error()
	}
}

// Unwrap exposes both ErrUpload and the underlying cause.
func (e *UploadError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpload}
	}
	return []error{ErrUpload, e.Err}
}
