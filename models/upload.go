// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"io"
)

// ErrFileRefUnset is returned by [FileRef.Open] on the zero value.
var ErrFileRefUnset = errors.New("file reference is not set")

// FileRef is a platform-neutral handle to the binary content of an upload.
// Every file picker converges on this shape; callers only see the declared
// metadata and an Open function, never the underlying path or URI.
type FileRef struct {
	// Name is the declared file name sent as the multipart filename.
	Name string

	// ContentType is the declared MIME type (e.g. "image/jpeg").
	ContentType string

	// Kind is the media kind derived from ContentType.
	Kind FileType

	// Size is the declared size in bytes; 0 when unknown.
	Size int64

	open func() (io.ReadCloser, error)
}

// NewFileRef builds a FileRef. open is called once per submission and must
// return a fresh stream each time.
func NewFileRef(name, contentType string, size int64, open func() (io.ReadCloser, error)) FileRef {
	return FileRef{
		Name:        name,
		ContentType: contentType,
		Kind:        FileTypeFromContentType(contentType),
		Size:        size,
		open:        open,
	}
}

// IsSet reports whether the reference points at content.
func (f FileRef) IsSet() bool {
	return f.open != nil
}

// Open returns a new reader over the file content.
func (f FileRef) Open() (io.ReadCloser, error) {
	if f.open == nil {
		return nil, ErrFileRefUnset
	}
	return f.open()
}

// PendingUpload is the client-only admin form state between user input and
// submission.
type PendingUpload struct {
	Title       string
	Description string
	Category    Category
	File        FileRef
}

// NewPendingUpload returns an empty form with the default category.
func NewPendingUpload() PendingUpload {
	return PendingUpload{Category: DefaultCategory}
}

// Metadata extracts the text fields sent alongside the file. The title is
// sent as entered. An unknown or empty category falls back to
// [DefaultCategory].
func (p PendingUpload) Metadata() UploadMetadata {
	category := p.Category
	if !category.Valid() {
		category = DefaultCategory
	}
	return UploadMetadata{
		Title:       p.Title,
		Description: p.Description,
		Category:    category,
	}
}

// UploadMetadata is the set of text fields of POST /admin/upload.
type UploadMetadata struct {
	Title       string
	Description string
	Category    Category
}

// UploadAck is the record echoed back by the backend after a successful
// upload.
type UploadAck struct {
	ID          ItemID   `json:"id"`
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        FileType `json:"type"`
	Category    Category `json:"category"`
}

// MediaAsset is what a native media library reports for a picked entry.
// Name, Type and Size may be empty; pickers fill in defaults.
type MediaAsset struct {
	URI      string
	FileName string
	Type     string
	FileSize int64
}
