// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the storefront client
// and the workshop backend.
//
// The primary abstraction is [Gateway], which decouples the service layer
// from HTTP. The package ships a REST implementation ([NewHTTPGateway]) built
// on resty.
//
// Read failures of any kind wrap [ErrNetwork]. Upload failures are reported
// as *[UploadError], which wraps [ErrUpload] and carries the server's
// human-readable detail when one was sent, so callers can use [errors.Is] and
// [errors.As] without inspecting HTTP status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/weld-storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// Gateway defines all communication with the workshop backend.
type Gateway interface {
	// FetchPortfolio retrieves the portfolio gallery via GET /portfolio.
	FetchPortfolio(ctx context.Context) ([]models.PortfolioItem, error)

	// FetchCatalogue retrieves the service catalogue via GET /catalogue.
	FetchCatalogue(ctx context.Context) ([]models.CatalogueItem, error)

	// FetchContact retrieves the shop contact details via GET /contact.
	// An empty object decodes to the zero Contact.
	FetchContact(ctx context.Context) (models.Contact, error)

	// SubmitUpload sends one multipart POST /admin/upload carrying creds,
	// meta and the content of file. It is never retried.
	SubmitUpload(ctx context.Context, creds models.Credentials, meta models.UploadMetadata, file models.FileRef) (models.UploadAck, error)

	// BaseURL returns the normalised backend origin without a trailing slash.
	BaseURL() string
}
