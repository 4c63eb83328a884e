// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package picker

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/weld-storefront/models"
)

const (
	defaultImageContentType = "image/jpeg"
	defaultVideoContentType = "video/mp4"
)

type NativeMediaPicker struct {
	library MediaLibrary
	now     func() time.Time
}

// NewNativeMediaPicker returns a picker over library.
func NewNativeMediaPicker(library MediaLibrary) *NativeMediaPicker {
	return &NativeMediaPicker{library: library, now: time.Now}
}

// Library returns the underlying media library for listing.
func (p *NativeMediaPicker) Library() MediaLibrary {
	return p.library
}

// Pick implements [FilePicker]. selection is an asset URI. Missing metadata
// is defaulted: the name becomes image_<unix-millis>.jpg (.mp4 for video),
// the kind is video only when the asset says so, and the size is 0.
func (p *NativeMediaPicker) Pick(ctx context.Context, selection string) (models.FileRef, error) {
	uri := strings.TrimSpace(selection)
	if uri == "" {
		return models.FileRef{}, ErrNoSelection
	}

	asset, err := p.library.Asset(ctx, uri)
	if err != nil {
		return models.FileRef{}, fmt.Errorf("pick media asset: %w", err)
	}

	kind := models.FileTypeFromContentType(asset.Type)

	contentType := strings.TrimSpace(asset.Type)
	if !strings.Contains(contentType, "/") {
		contentType = defaultImageContentType
		if kind == models.FileTypeVideo {
			contentType = defaultVideoContentType
		}
	}

	name := strings.TrimSpace(asset.FileName)
	if name == "" {
		ext := ".jpg"
		if kind == models.FileTypeVideo {
			ext = ".mp4"
		}
		name = fmt.Sprintf("image_%d%s", p.now().UnixMilli(), ext)
	}

	size := asset.FileSize
	if size < 0 {
		size = 0
	}

	open := func() (io.ReadCloser, error) {
		return p.library.Open(asset.URI)
	}

	return models.NewFileRef(name, contentType, size, open), nil
}
