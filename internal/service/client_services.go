// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/weld-storefront/internal/adapter"
	"github.com/MKhiriev/weld-storefront/internal/logger"
	"github.com/MKhiriev/weld-storefront/internal/utils"
)

type ClientServices struct {
	SyncService   SyncService
	AuthService   AuthService
	UploadService UploadService
	LinkService   LinkService
}

func NewClientServices(gateway adapter.Gateway, ids utils.IDGenerator, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SyncService:   NewClientSyncService(gateway, ids, logger),
		AuthService:   NewClientAuthService(logger),
		UploadService: NewClientUploadService(gateway, logger),
		LinkService:   NewClientLinkService(gateway.BaseURL()),
	}
}
