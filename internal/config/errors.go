// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrInvalidAdapterConfigs indicates a missing backend address or a
	// non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidPickerConfigs indicates a media directory that is not a
	// readable directory.
	ErrInvalidPickerConfigs = errors.New("invalid picker configuration")
)
