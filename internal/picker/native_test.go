// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package picker

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/weld-storefront/internal/mock"
	"github.com/MKhiriev/weld-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newNativePicker(t *testing.T) (*NativeMediaPicker, *mock.MockMediaLibrary) {
	t.Helper()
	ctrl := gomock.NewController(t)
	lib := mock.NewMockMediaLibrary(ctrl)
	p := NewNativeMediaPicker(lib)
	p.now = func() time.Time { return time.UnixMilli(1700000000123) }
	return p, lib
}

func TestNativeMediaPicker_FullMetadata(t *testing.T) {
	p, lib := newNativePicker(t)
	ctx := context.Background()

	lib.EXPECT().Asset(ctx, "asset://1").Return(models.MediaAsset{
		URI: "asset://1", FileName: "balcony.mov", Type: "video/quicktime", FileSize: 2048,
	}, nil)
	lib.EXPECT().Open("asset://1").Return(io.NopCloser(strings.NewReader("MOV")), nil)

	ref, err := p.Pick(ctx, "asset://1")

	require.NoError(t, err)
	assert.Equal(t, "balcony.mov", ref.Name)
	assert.Equal(t, "video/quicktime", ref.ContentType)
	assert.Equal(t, models.FileTypeVideo, ref.Kind)
	assert.Equal(t, int64(2048), ref.Size)

	rc, err := ref.Open()
	require.NoError(t, err)
	body, _ := io.ReadAll(rc)
	assert.Equal(t, "MOV", string(body))
}

func TestNativeMediaPicker_Defaults(t *testing.T) {
	tests := []struct {
		name      string
		asset     models.MediaAsset
		wantName  string
		wantType  string
		wantKind  models.FileType
		wantBytes int64
	}{
		{
			name:     "bare image",
			asset:    models.MediaAsset{URI: "u"},
			wantName: "image_1700000000123.jpg",
			wantType: "image/jpeg",
			wantKind: models.FileTypeImage,
		},
		{
			name:     "bare video",
			asset:    models.MediaAsset{URI: "u", Type: "video"},
			wantName: "image_1700000000123.mp4",
			wantType: "video/mp4",
			wantKind: models.FileTypeVideo,
		},
		{
			name:      "named image with size",
			asset:     models.MediaAsset{URI: "u", FileName: "gate.heic", Type: "image", FileSize: 10},
			wantName:  "gate.heic",
			wantType:  "image/jpeg",
			wantKind:  models.FileTypeImage,
			wantBytes: 10,
		},
		{
			name:     "negative size",
			asset:    models.MediaAsset{URI: "u", FileSize: -1},
			wantName: "image_1700000000123.jpg",
			wantType: "image/jpeg",
			wantKind: models.FileTypeImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, lib := newNativePicker(t)
			lib.EXPECT().Asset(gomock.Any(), "u").Return(tt.asset, nil)

			ref, err := p.Pick(context.Background(), "u")

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, ref.Name)
			assert.Equal(t, tt.wantType, ref.ContentType)
			assert.Equal(t, tt.wantKind, ref.Kind)
			assert.Equal(t, tt.wantBytes, ref.Size)
			assert.True(t, ref.IsSet())
		})
	}
}

func TestNativeMediaPicker_Cancelled(t *testing.T) {
	p, _ := newNativePicker(t)

	_, err := p.Pick(context.Background(), "")

	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestNativeMediaPicker_LibraryError(t *testing.T) {
	p, lib := newNativePicker(t)
	lib.EXPECT().Asset(gomock.Any(), "u").Return(models.MediaAsset{}, ErrAssetNotFound)

	_, err := p.Pick(context.Background(), "u")

	assert.True(t, errors.Is(err, ErrAssetNotFound))
	assert.Same(t, lib, p.Library())
}
