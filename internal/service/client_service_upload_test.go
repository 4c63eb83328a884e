// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/weld-storefront/internal/adapter"
	"github.com/MKhiriev/weld-storefront/internal/logger"
	"github.com/MKhiriev/weld-storefront/internal/mock"
	"github.com/MKhiriev/weld-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var adminSession = models.Session{Authenticated: true, Username: "admin", Password: "changeme"}

func fileRef() models.FileRef {
	return models.NewFileRef("bracket.jpg", "image/jpeg", 4, func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("JPEG")), nil
	})
}

func newTestUploadSvc(t *testing.T) (*clientUploadService, *mock.MockGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	return NewClientUploadService(gw, logger.Nop()).(*clientUploadService), gw
}

// ── Validate ─────────────────────────────────────────────────────────────────

func TestClientUploadService_Validate(t *testing.T) {
	tests := []struct {
		name    string
		upload  models.PendingUpload
		wantErr error
	}{
		{name: "valid", upload: models.PendingUpload{Title: "Gate bracket", File: fileRef()}},
		{name: "empty title", upload: models.PendingUpload{Title: "", File: fileRef()}, wantErr: ErrTitleRequired},
		{name: "whitespace title", upload: models.PendingUpload{Title: " \t ", File: fileRef()}},
		{name: "no file", upload: models.PendingUpload{Title: "Gate bracket"}, wantErr: ErrFileRequired},
		{name: "nothing", upload: models.PendingUpload{}, wantErr: ErrTitleRequired},
	}

	svc, _ := newTestUploadSvc(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Validate(tt.upload)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

// ── Submit ───────────────────────────────────────────────────────────────────

func TestClientUploadService_Submit_Success(t *testing.T) {
	svc, gw := newTestUploadSvc(t)
	upload := models.PendingUpload{Title: "  Gate bracket ", Description: "Mild steel", Category: models.CategoryCatalogue, File: fileRef()}
	ack := models.UploadAck{ID: "ab12", URL: "/static/catalogue/ab12.jpg", Title: "Gate bracket", Type: models.FileTypeImage, Category: models.CategoryCatalogue}

	gw.EXPECT().SubmitUpload(gomock.Any(),
		models.Credentials{Username: "admin", Password: "changeme"},
		models.UploadMetadata{Title: "  Gate bracket ", Description: "Mild steel", Category: models.CategoryCatalogue},
		gomock.Any(),
	).DoAndReturn(func(_ context.Context, _ models.Credentials, _ models.UploadMetadata, f models.FileRef) (models.UploadAck, error) {
		assert.Equal(t, "bracket.jpg", f.Name)
		return ack, nil
	})

	got, err := svc.Submit(context.Background(), adminSession, upload)

	require.NoError(t, err)
	assert.Equal(t, ack, got)
	assert.False(t, svc.inFlight.Load())
}

// TestClientUploadService_Submit_InvalidNeverCallsGateway covers local
// rejection: the mock gateway has no expectations, so any call fails the test.
func TestClientUploadService_Submit_InvalidNeverCallsGateway(t *testing.T) {
	svc, _ := newTestUploadSvc(t)

	_, err := svc.Submit(context.Background(), adminSession, models.PendingUpload{Title: "", File: fileRef()})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Submit(context.Background(), adminSession, models.PendingUpload{Title: "Gate"})
	assert.ErrorIs(t, err, ErrFileRequired)
}

func TestClientUploadService_Submit_RequiresLogin(t *testing.T) {
	svc, _ := newTestUploadSvc(t)

	_, err := svc.Submit(context.Background(), models.Session{}, models.PendingUpload{Title: "Gate", File: fileRef()})

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestClientUploadService_Submit_ServerDetail(t *testing.T) {
	svc, gw := newTestUploadSvc(t)
	upErr := &adapter.UploadError{Status: 413, Detail: "file too large"}

	gw.EXPECT().SubmitUpload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.UploadAck{}, upErr)

	_, err := svc.Submit(context.Background(), adminSession, models.PendingUpload{Title: "Gate bracket", File: fileRef()})

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUpload)
	assert.Equal(t, "file too large", UserMessage(err))
	assert.False(t, svc.inFlight.Load())
}

func TestClientUploadService_Submit_RejectsConcurrent(t *testing.T) {
	svc, gw := newTestUploadSvc(t)

	started := make(chan struct{})
	release := make(chan struct{})
	gw.EXPECT().SubmitUpload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.Credentials, models.UploadMetadata, models.FileRef) (models.UploadAck, error) {
			close(started)
			<-release
			return models.UploadAck{ID: "1"}, nil
		})

	upload := models.PendingUpload{Title: "Gate", File: fileRef()}

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = svc.Submit(context.Background(), adminSession, upload)
	}()

	<-started
	_, err := svc.Submit(context.Background(), adminSession, upload)
	assert.True(t, errors.Is(err, ErrUploadInFlight))

	close(release)
	wg.Wait()
	assert.NoError(t, firstErr)
}
