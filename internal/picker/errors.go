// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package picker

import "errors"

var (
	ErrNoSelection      = errors.New("no file selected")
	ErrUnsupportedMedia = errors.New("only image and video files are allowed")
	ErrAssetNotFound    = errors.New("media asset not found")
)
