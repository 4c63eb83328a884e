// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// FileType is the media kind of a portfolio entry.
type FileType string

const (
	// FileTypeImage marks still images (image/* uploads).
	FileTypeImage FileType = "image"

	// FileTypeVideo marks video clips (video/* uploads).
	FileTypeVideo FileType = "video"
)

// FileTypeFromContentType maps a MIME type such as "video/mp4" onto a
// [FileType]. Bare "video" is accepted as well, which is what native media
// libraries report. Anything that is not video is treated as an image.
func FileTypeFromContentType(contentType string) FileType {
	main, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(contentType)), "/")
	if main == string(FileTypeVideo) {
		return FileTypeVideo
	}
	return FileTypeImage
}

// Category is the upload destination on the backend.
type Category string

const (
	// CategoryPortfolio stores the upload in the showcased gallery.
	CategoryPortfolio Category = "portfolio"

	// CategoryCatalogue adds the upload as a new service offering.
	CategoryCatalogue Category = "catalogue"
)

// DefaultCategory is used for a fresh upload form and after logout.
const DefaultCategory = CategoryPortfolio

// Categories lists the selectable upload destinations in display order.
var Categories = []Category{CategoryPortfolio, CategoryCatalogue}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == CategoryPortfolio || c == CategoryCatalogue
}

// Next returns the other category; used by the form toggle.
func (c Category) Next() Category {
	if c == CategoryCatalogue {
		return CategoryPortfolio
	}
	return CategoryCatalogue
}
