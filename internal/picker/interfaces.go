// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package picker turns a user's file selection into a platform-neutral
// [models.FileRef].
//
// Two pickers are provided. [BrowserPicker] works on filesystem paths coming
// from a file-selection input. [NativeMediaPicker] works on entries of a
// [MediaLibrary] and fills in defaults for whatever metadata the library does
// not report. Both produce the same FileRef shape, so the upload workflow never
// branches on where a file came from.
package picker

import (
	"context"
	"io"

	"github.com/MKhiriev/weld-storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/picker_mock.go -package=mock

// FilePicker resolves a selection into a FileRef.
type FilePicker interface {
	// Pick resolves selection. An empty selection (the user cancelled)
	// returns [ErrNoSelection]; a non-image/video file returns
	// [ErrUnsupportedMedia].
	Pick(ctx context.Context, selection string) (models.FileRef, error)
}

// MediaLibrary is a source of media assets such as a camera roll or a
// pictures folder. URIs are opaque to callers.
type MediaLibrary interface {
	// List returns the available assets, newest first.
	List(ctx context.Context) ([]models.MediaAsset, error)

	// Asset returns the asset identified by uri.
	Asset(ctx context.Context, uri string) (models.MediaAsset, error)

	// Open returns a reader over the asset's content.
	Open(uri string) (io.ReadCloser, error)
}
