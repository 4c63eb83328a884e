// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package opener

import "errors"

var (
	ErrEmptyURL          = errors.New("empty url")
	ErrUnsupportedScheme = errors.New("unsupported url scheme")
	ErrNoOpener          = errors.New("no link opener available")
)
