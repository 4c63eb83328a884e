// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// CatalogueItem is a service offering returned by GET /catalogue.
type CatalogueItem struct {
	ID          ItemID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// Price is free text ("on request", "from 4000"); often empty.
	Price string `json:"price,omitempty"`

	// MediaURL is set for entries created through the admin upload.
	MediaURL string `json:"media_url,omitempty"`
}

// UnmarshalJSON also accepts the desc/media keys written by the
// file-backed backend.
func (c *CatalogueItem) UnmarshalJSON(b []byte) error {
	type plain CatalogueItem
	var raw struct {
		plain
		LegacyDesc  string `json:"desc"`
		LegacyMedia string `json:"media"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*c = CatalogueItem(raw.plain)
	if c.Description == "" {
		c.Description = raw.LegacyDesc
	}
	if c.MediaURL == "" {
		c.MediaURL = raw.LegacyMedia
	}
	return nil
}
