// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/weld-storefront/internal/logger"
	"github.com/MKhiriev/weld-storefront/internal/opener"
	"github.com/MKhiriev/weld-storefront/internal/picker"
	"github.com/MKhiriev/weld-storefront/internal/service"
	"github.com/MKhiriev/weld-storefront/internal/store"
)

// Pickers are the file sources offered by the admin form. Browser is
// required; Native is nil when no media library is configured.
type Pickers struct {
	Browser picker.FilePicker
	Native  *picker.NativeMediaPicker
}

// env is shared by every page of one program run.
type env struct {
	ctx      context.Context
	services *service.ClientServices
	store    *store.ViewStore
	opener   opener.ExternalLinkOpener
	pickers  Pickers
	shopName string
	logger   *logger.Logger
}
