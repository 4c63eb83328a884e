// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package picker

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/weld-storefront/models"
)

// DirMediaLibrary exposes the image and video files of one directory as a
// [MediaLibrary]. Asset URIs are absolute file paths inside that directory.
type DirMediaLibrary struct {
	root string
}

// NewDirMediaLibrary returns a library rooted at dir.
func NewDirMediaLibrary(dir string) (*DirMediaLibrary, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve media dir: %w", err)
	}
	return &DirMediaLibrary{root: root}, nil
}

// List implements [MediaLibrary]. Subdirectories and non-media files are
// skipped.
func (l *DirMediaLibrary) List(ctx context.Context) ([]models.MediaAsset, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, fmt.Errorf("read media dir: %w", err)
	}

	type dated struct {
		asset models.MediaAsset
		mod   int64
	}
	found := make([]dated, 0, len(entries))
	for _, e := range entries {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() {
			continue
		}
		asset, info, ok := l.describe(filepath.Join(l.root, e.Name()))
		if !ok {
			continue
		}
		found = append(found, dated{asset: asset, mod: info.ModTime().UnixNano()})
	}

	slices.SortStableFunc(found, func(a, b dated) int {
		if c := cmp.Compare(b.mod, a.mod); c != 0 {
			return c
		}
		return cmp.Compare(a.asset.FileName, b.asset.FileName)
	})

	assets := make([]models.MediaAsset, len(found))
	for i, d := range found {
		assets[i] = d.asset
	}
	return assets, nil
}

// Asset implements [MediaLibrary].
func (l *DirMediaLibrary) Asset(_ context.Context, uri string) (models.MediaAsset, error) {
	path, err := l.resolve(uri)
	if err != nil {
		return models.MediaAsset{}, err
	}
	asset, _, ok := l.describe(path)
	if !ok {
		return models.MediaAsset{}, fmt.Errorf("%s: %w", uri, ErrAssetNotFound)
	}
	return asset, nil
}

// Open implements [MediaLibrary].
func (l *DirMediaLibrary) Open(uri string) (io.ReadCloser, error) {
	path, err := l.resolve(uri)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

func (l *DirMediaLibrary) resolve(uri string) (string, error) {
	path := filepath.Clean(uri)
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.root, path)
	}
	rel, err := filepath.Rel(l.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: %w", uri, ErrAssetNotFound)
	}
	return path, nil
}

func (l *DirMediaLibrary) describe(path string) (models.MediaAsset, os.FileInfo, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return models.MediaAsset{}, nil, false
	}
	ct := typeByExtension(path)
	if !isMedia(ct) {
		return models.MediaAsset{}, nil, false
	}
	return models.MediaAsset{
		URI:      path,
		FileName: filepath.Base(path),
		Type:     ct,
		FileSize: info.Size(),
	}, info, true
}
