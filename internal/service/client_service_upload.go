// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/weld-storefront/internal/adapter"
	"github.com/MKhiriev/weld-storefront/internal/logger"
	"github.com/MKhiriev/weld-storefront/models"
)

type clientUploadService struct {
	adapter  adapter.Gateway
	inFlight atomic.Bool
	logger   *logger.Logger
}

func NewClientUploadService(gateway adapter.Gateway, logger *logger.Logger) UploadService {
	return &clientUploadService{adapter: gateway, logger: logger}
}

// Validate implements [UploadService].
func (u *clientUploadService) Validate(upload models.PendingUpload) error {
	if upload.Title == "" {
		return ErrTitleRequired
	}
	if !upload.File.IsSet() {
		return ErrFileRequired
	}
	return nil
}

// Submit implements [UploadService]. Validation runs first so an invalid
// form never reaches the network, whatever the session state.
func (u *clientUploadService) Submit(ctx context.Context, session models.Session, upload models.PendingUpload) (models.UploadAck, error) {
	if err := u.Validate(upload); err != nil {
		return models.UploadAck{}, err
	}
	if !session.Authenticated {
		return models.UploadAck{}, ErrNotAuthenticated
	}

	if !u.inFlight.CompareAndSwap(false, true) {
		return models.UploadAck{}, ErrUploadInFlight
	}
	defer u.inFlight.Store(false)

	meta := upload.Metadata()
	log := u.logger.With().
		Str("title", meta.Title).
		Str("category", string(meta.Category)).
		Str("file", upload.File.Name).
		Int64("size", upload.File.Size).
		Logger()

	ack, err := u.adapter.SubmitUpload(ctx, session.Credentials(), meta, upload.File)
	if err != nil {
		log.Error().Err(err).Msg("upload failed")
		return models.UploadAck{}, err
	}

	log.Info().Str("id", ack.ID.String()).Str("url", ack.URL).Msg("upload accepted")
	return ack, nil
}
