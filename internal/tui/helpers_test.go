// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/weld-storefront/internal/logger"
	"github.com/MKhiriev/weld-storefront/internal/mock"
	"github.com/MKhiriev/weld-storefront/internal/picker"
	"github.com/MKhiriev/weld-storefront/internal/service"
	"github.com/MKhiriev/weld-storefront/internal/store"
	"github.com/MKhiriev/weld-storefront/models"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
)

const testBaseURL = "http://localhost:8000"

var adminSession = models.Session{Authenticated: true, Username: "admin", Password: "changeme"}

type testDeps struct {
	env     *env
	sync    *mock.MockSyncService
	auth    *mock.MockAuthService
	upload  *mock.MockUploadService
	opener  *mock.MockExternalLinkOpener
	browser *mock.MockFilePicker
	library *mock.MockMediaLibrary
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := &testDeps{
		sync:    mock.NewMockSyncService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		upload:  mock.NewMockUploadService(ctrl),
		opener:  mock.NewMockExternalLinkOpener(ctrl),
		browser: mock.NewMockFilePicker(ctrl),
		library: mock.NewMockMediaLibrary(ctrl),
	}
	d.env = &env{
		ctx: context.Background(),
		services: &service.ClientServices{
			SyncService:   d.sync,
			AuthService:   d.auth,
			UploadService: d.upload,
			LinkService:   service.NewClientLinkService(testBaseURL),
		},
		store:    store.NewViewStore(),
		opener:   d.opener,
		pickers:  Pickers{Browser: d.browser, Native: picker.NewNativeMediaPicker(d.library)},
		shopName: "Test Welding",
		logger:   logger.Nop(),
	}
	return d
}

func testSnapshot() models.Snapshot {
	return models.Snapshot{
		Portfolio: []models.PortfolioItem{
			{ID: "1", Title: "Iron gate", FileType: models.FileTypeImage, FileURL: "/static/portfolio/gate.jpg"},
			{ID: "2", Title: "Railing", FileType: models.FileTypeVideo, FileURL: "/static/portfolio/railing.mp4"},
		},
		Catalogue: []models.CatalogueItem{
			{ID: "1", Name: "Gate Fabrication", Description: "Custom gates"},
			{ID: "2", Name: "Grill Repair", Price: "on request"},
		},
		Contact: models.Contact{
			Phone:    "+91 12345 67890",
			WhatsApp: "https://wa.me/911234567890",
			Address:  "Main Road",
			MapsURL:  "https://maps.example.com/shop",
		},
	}
}

func testFile() models.FileRef {
	return models.NewFileRef("bracket.jpg", "image/jpeg", 2048, func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("JPEG")), nil
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// exec runs cmd and returns its message, or nil when cmd is nil.
func exec(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
