// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/weld-storefront/internal/adapter"
	"github.com/MKhiriev/weld-storefront/internal/logger"
	"github.com/MKhiriev/weld-storefront/internal/mock"
	"github.com/MKhiriev/weld-storefront/internal/utils"
	"github.com/MKhiriev/weld-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

// requestIDIs matches a context carrying the given correlation ID.
func requestIDIs(want string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		ctx, ok := x.(context.Context)
		if !ok {
			return false
		}
		id, ok := utils.GetRequestIDFromContext(ctx)
		return ok && id == want
	})
}

func newTestSyncSvc(t *testing.T) (SyncService, *mock.MockGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	return NewClientSyncService(gw, fixedIDs("sync-1"), logger.Nop()), gw
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestClientSyncService_Refresh_Success(t *testing.T) {
	svc, gw := newTestSyncSvc(t)

	portfolio := []models.PortfolioItem{{ID: "1", Title: "Gate", FileType: models.FileTypeImage, FileURL: "/static/portfolio/a.jpg"}}
	catalogue := []models.CatalogueItem{{ID: "1", Name: "Steel Gates"}, {ID: "2", Name: "Window Grills"}}
	contact := models.Contact{Phone: "+91 98765", WhatsApp: "+919876500000", Address: "Shed 4", MapsURL: "https://maps.example/shed4"}

	gw.EXPECT().FetchPortfolio(requestIDIs("sync-1")).Return(portfolio, nil)
	gw.EXPECT().FetchCatalogue(requestIDIs("sync-1")).Return(catalogue, nil)
	gw.EXPECT().FetchContact(requestIDIs("sync-1")).Return(contact, nil)

	snap, err := svc.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, portfolio, snap.Portfolio)
	assert.Equal(t, catalogue, snap.Catalogue)
	assert.Equal(t, contact, snap.Contact)
}

func TestClientSyncService_Refresh_EmptyCollections(t *testing.T) {
	svc, gw := newTestSyncSvc(t)

	gw.EXPECT().FetchPortfolio(gomock.Any()).Return([]models.PortfolioItem{}, nil)
	gw.EXPECT().FetchCatalogue(gomock.Any()).Return([]models.CatalogueItem{}, nil)
	gw.EXPECT().FetchContact(gomock.Any()).Return(models.Contact{}, nil)

	snap, err := svc.Refresh(context.Background())

	require.NoError(t, err)
	assert.Empty(t, snap.Portfolio)
	assert.Empty(t, snap.Catalogue)
	assert.True(t, snap.Contact.IsZero())
}

// TestClientSyncService_Refresh_AnyFailure checks that a failure of any one
// of the three reads yields no snapshot.
func TestClientSyncService_Refresh_AnyFailure(t *testing.T) {
	netErr := fmt.Errorf("%w: http 500", adapter.ErrNetwork)

	tests := []struct {
		name         string
		portfolioErr error
		catalogueErr error
		contactErr   error
	}{
		{name: "portfolio fails", portfolioErr: netErr},
		{name: "catalogue fails", catalogueErr: netErr},
		{name: "contact fails", contactErr: netErr},
		{name: "all fail", portfolioErr: netErr, catalogueErr: netErr, contactErr: netErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, gw := newTestSyncSvc(t)

			gw.EXPECT().FetchPortfolio(gomock.Any()).Return([]models.PortfolioItem{{ID: "1"}}, tt.portfolioErr)
			gw.EXPECT().FetchCatalogue(gomock.Any()).Return([]models.CatalogueItem{{ID: "1"}}, tt.catalogueErr)
			gw.EXPECT().FetchContact(gomock.Any()).Return(models.Contact{Phone: "1"}, tt.contactErr)

			snap, err := svc.Refresh(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, adapter.ErrNetwork)
			assert.Equal(t, models.Snapshot{}, snap)
		})
	}
}

func TestClientSyncService_Refresh_NonNetworkErrorIsWrapped(t *testing.T) {
	svc, gw := newTestSyncSvc(t)

	boom := errors.New("boom")
	gw.EXPECT().FetchPortfolio(gomock.Any()).Return(nil, boom)
	gw.EXPECT().FetchCatalogue(gomock.Any()).Return(nil, nil)
	gw.EXPECT().FetchContact(gomock.Any()).Return(models.Contact{}, nil)

	_, err := svc.Refresh(context.Background())

	assert.ErrorIs(t, err, adapter.ErrNetwork)
	assert.ErrorIs(t, err, boom)
}

func TestClientSyncService_Refresh_FailureCancelsSiblings(t *testing.T) {
	svc, gw := newTestSyncSvc(t)

	gw.EXPECT().FetchPortfolio(gomock.Any()).Return(nil, adapter.ErrNetwork)
	gw.EXPECT().FetchCatalogue(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.CatalogueItem, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	gw.EXPECT().FetchContact(gomock.Any()).DoAndReturn(func(ctx context.Context) (models.Contact, error) {
		<-ctx.Done()
		return models.Contact{}, ctx.Err()
	})

	_, err := svc.Refresh(context.Background())

	assert.ErrorIs(t, err, adapter.ErrNetwork)
}
