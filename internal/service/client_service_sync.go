// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/weld-storefront/internal/adapter"
	"github.com/MKhiriev/weld-storefront/internal/logger"
	"github.com/MKhiriev/weld-storefront/internal/utils"
	"github.com/MKhiriev/weld-storefront/models"
	"golang.org/x/sync/errgroup"
)

type clientSyncService struct {
	adapter adapter.Gateway
	ids     utils.IDGenerator
	logger  *logger.Logger
}

func NewClientSyncService(gateway adapter.Gateway, ids utils.IDGenerator, logger *logger.Logger) SyncService {
	return &clientSyncService{adapter: gateway, ids: ids, logger: logger}
}

// Refresh implements [SyncService]. All three requests share one correlation
// ID. The first failure cancels the remaining requests.
func (s *clientSyncService) Refresh(ctx context.Context) (models.Snapshot, error) {
	syncID := s.ids.Generate()
	ctx = utils.WithRequestID(ctx, syncID)
	log := s.logger.With().Str("sync_id", syncID).Logger()

	var (
		portfolio []models.PortfolioItem
		catalogue []models.CatalogueItem
		contact   models.Contact
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.adapter.FetchPortfolio(gctx)
		if err != nil {
			return fmt.Errorf("fetch portfolio: %w", err)
		}
		portfolio = items
		return nil
	})
	g.Go(func() error {
		items, err := s.adapter.FetchCatalogue(gctx)
		if err != nil {
			return fmt.Errorf("fetch catalogue: %w", err)
		}
		catalogue = items
		return nil
	})
	g.Go(func() error {
		c, err := s.adapter.FetchContact(gctx)
		if err != nil {
			return fmt.Errorf("fetch contact: %w", err)
		}
		contact = c
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Warn().Err(err).Msg("sync failed, keeping previous data")
		return models.Snapshot{}, fmt.Errorf("%w: %w", adapter.ErrNetwork, err)
	}

	log.Debug().
		Int("portfolio", len(portfolio)).
		Int("catalogue", len(catalogue)).
		Msg("sync completed")

	return models.Snapshot{Portfolio: portfolio, Catalogue: catalogue, Contact: contact}, nil
}
