// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemID_DecodesStringAndNumber(t *testing.T) {
	var items []struct {
		ID ItemID `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`[{"id":"3f2a"},{"id":7},{"id":null}]`), &items))

	require.Len(t, items, 3)
	assert.Equal(t, ItemID("3f2a"), items[0].ID)
	assert.Equal(t, ItemID("7"), items[1].ID)
	assert.Equal(t, ItemID(""), items[2].ID)
}

func TestItemID_MarshalKeepsNumbers(t *testing.T) {
	b, err := json.Marshal([]ItemID{"12", "ab12"})
	require.NoError(t, err)
	assert.JSONEq(t, `[12,"ab12"]`, string(b))
}

func TestPortfolioItem_CurrentSchema(t *testing.T) {
	var p PortfolioItem
	body := `{"id":"a1","title":"Gate","description":"Wrought iron","file_type":"video","file_url":"/static/portfolio/a1.mp4"}`
	require.NoError(t, json.Unmarshal([]byte(body), &p))

	assert.Equal(t, PortfolioItem{
		ID:          "a1",
		Title:       "Gate",
		Description: "Wrought iron",
		FileType:    FileTypeVideo,
		FileURL:     "/static/portfolio/a1.mp4",
	}, p)
	assert.True(t, p.IsVideo())
}

func TestPortfolioItem_LegacyKeys(t *testing.T) {
	var p PortfolioItem
	body := `{"id":"b2","title":"Grill","type":"image","url":"/static/portfolio/b2.jpg","category":"portfolio"}`
	require.NoError(t, json.Unmarshal([]byte(body), &p))

	assert.Equal(t, FileTypeImage, p.FileType)
	assert.Equal(t, "/static/portfolio/b2.jpg", p.FileURL)
	assert.Equal(t, CategoryPortfolio, p.Category)
}

func TestCatalogueItem_LegacyKeys(t *testing.T) {
	var c CatalogueItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"Steel Gates","desc":"Custom steel gates","price":"","media":"/static/catalogue/x.jpg"}`), &c))

	assert.Equal(t, ItemID("1"), c.ID)
	assert.Equal(t, "Custom steel gates", c.Description)
	assert.Equal(t, "/static/catalogue/x.jpg", c.MediaURL)
}

func TestContact_LegacyMapsKey(t *testing.T) {
	var c Contact
	require.NoError(t, json.Unmarshal([]byte(`{"phone":"+91 1","maps":"https://maps.google.com/?q=x"}`), &c))
	assert.Equal(t, "https://maps.google.com/?q=x", c.MapsURL)
	assert.False(t, c.IsZero())
	assert.True(t, Contact{}.IsZero())
}

func TestFileTypeFromContentType(t *testing.T) {
	tests := []struct {
		in   string
		want FileType
	}{
		{"video/mp4", FileTypeVideo},
		{"video", FileTypeVideo},
		{"VIDEO/QuickTime", FileTypeVideo},
		{"image/png", FileTypeImage},
		{"image", FileTypeImage},
		{"", FileTypeImage},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FileTypeFromContentType(tt.in))
		})
	}
}

func TestCategory_NextAndValid(t *testing.T) {
	assert.Equal(t, CategoryCatalogue, CategoryPortfolio.Next())
	assert.Equal(t, CategoryPortfolio, CategoryCatalogue.Next())
	assert.True(t, CategoryCatalogue.Valid())
	assert.False(t, Category("news").Valid())
}

func TestFileRef_ZeroValueIsUnset(t *testing.T) {
	var f FileRef
	assert.False(t, f.IsSet())

	_, err := f.Open()
	assert.ErrorIs(t, err, ErrFileRefUnset)
}

func TestFileRef_OpenReturnsContent(t *testing.T) {
	f := NewFileRef("a.jpg", "image/jpeg", 3, func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("abc")), nil
	})
	require.True(t, f.IsSet())
	assert.Equal(t, FileTypeImage, f.Kind)

	rc, err := f.Open()
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(b))
}

func TestPendingUpload_Metadata(t *testing.T) {
	p := PendingUpload{Title: "  Gate bracket ", Description: "d"}
	meta := p.Metadata()

	assert.Equal(t, "  Gate bracket ", meta.Title)
	assert.Equal(t, CategoryPortfolio, meta.Category)

	p.Category = CategoryCatalogue
	assert.Equal(t, CategoryCatalogue, p.Metadata().Category)
}

func TestAppBuildInfo_BlankValues(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", " ")
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "N/A", AppBuildInfo{}.BuildVersion())
}
