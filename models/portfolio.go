// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// PortfolioItem is a showcased media entry returned by GET /portfolio.
// Items are created server-side on upload and never mutated by the client.
type PortfolioItem struct {
	// ID is the opaque server identifier.
	ID ItemID `json:"id"`

	// Title is the display name of the work.
	Title string `json:"title"`

	// Description is optional free text.
	Description string `json:"description"`

	// FileType tells whether FileURL points at an image or a video.
	FileType FileType `json:"file_type"`

	// FileURL is a path relative to the backend origin, e.g.
	// "/static/portfolio/3f2a.jpg".
	FileURL string `json:"file_url"`

	// Category is echoed by newer backends; empty otherwise.
	Category Category `json:"category,omitempty"`
}

// UnmarshalJSON decodes both the current schema (file_type/file_url) and
// the file-backed one that still emits type/url.
func (p *PortfolioItem) UnmarshalJSON(b []byte) error {
	type plain PortfolioItem
	var raw struct {
		plain
		LegacyType FileType `json:"type"`
		LegacyURL  string   `json:"url"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*p = PortfolioItem(raw.plain)
	if p.FileType == "" {
		p.FileType = raw.LegacyType
	}
	if p.FileURL == "" {
		p.FileURL = raw.LegacyURL
	}
	return nil
}

// IsVideo reports whether the entry is a video clip.
func (p PortfolioItem) IsVideo() bool {
	return p.FileType == FileTypeVideo
}
