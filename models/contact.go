// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Contact is the workshop's singleton contact record (GET /contact).
type Contact struct {
	Phone string `json:"phone"`

	// WhatsApp is either a bare number or a full wa.me link; only its digits
	// are used when composing enquiry links.
	WhatsApp string `json:"whatsapp"`

	Address string `json:"address"`
	MapsURL string `json:"maps_url"`
	Email   string `json:"email,omitempty"`
}

// UnmarshalJSON accepts the legacy "maps" key as a fallback for maps_url.
func (c *Contact) UnmarshalJSON(b []byte) error {
	type plain Contact
	var raw struct {
		plain
		LegacyMaps string `json:"maps"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*c = Contact(raw.plain)
	if c.MapsURL == "" {
		c.MapsURL = raw.LegacyMaps
	}
	return nil
}

// IsZero reports whether no field is populated.
func (c Contact) IsZero() bool {
	return c == Contact{}
}
