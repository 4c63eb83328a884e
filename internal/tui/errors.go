// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/weld-storefront/internal/opener"
	"github.com/MKhiriev/weld-storefront/internal/picker"
	"github.com/MKhiriev/weld-storefront/internal/service"
)

// humanizeError turns an error into a one-line message for the status area.
// Service and adapter errors keep their mapped text; raw transport errors
// that slipped through unwrapped are reported as a network problem.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, picker.ErrUnsupportedMedia):
		return "Only image or video files are allowed"
	case errors.Is(err, picker.ErrNoSelection):
		return service.MsgFileRequired
	case errors.Is(err, picker.ErrAssetNotFound):
		return "Media asset not found"
	case errors.Is(err, opener.ErrUnsupportedScheme), errors.Is(err, opener.ErrEmptyURL):
		return "Link is not available"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return service.MsgNetworkUnavailable
	}

	return service.UserMessage(err)
}
