// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrAuthMismatch = errors.New("invalid username or password")

	ErrValidation    = errors.New("validation failed")
	ErrTitleRequired = fmt.Errorf("%w: title is required", ErrValidation)
	ErrFileRequired  = fmt.Errorf("%w: file is required", ErrValidation)

	ErrNotAuthenticated = errors.New("admin login required")
	ErrUploadInFlight   = errors.New("an upload is already in progress")

	ErrNoContact = errors.New("contact details are not available")
)
