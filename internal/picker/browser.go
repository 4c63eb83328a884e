// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package picker

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/weld-storefront/models"
)

const sniffLen = 512

type BrowserPicker struct{}

// NewBrowserPicker returns a picker for paths chosen in a file-selection
// input that accepts image/* and video/*.
func NewBrowserPicker() *BrowserPicker {
	return &BrowserPicker{}
}

// Pick implements [FilePicker]. selection is a filesystem path; a leading
// "~/" is expanded to the home directory. The declared name is the base
// name, the content type comes from the extension or, failing that, from
// the first bytes of the file.
func (p *BrowserPicker) Pick(_ context.Context, selection string) (models.FileRef, error) {
	path, err := expandPath(strings.TrimSpace(selection))
	if err != nil {
		return models.FileRef{}, err
	}
	if path == "" {
		return models.FileRef{}, ErrNoSelection
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.FileRef{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return models.FileRef{}, fmt.Errorf("%s is a directory: %w", path, ErrNoSelection)
	}

	contentType, err := detectContentType(path)
	if err != nil {
		return models.FileRef{}, err
	}
	if !isMedia(contentType) {
		return models.FileRef{}, fmt.Errorf("%s (%s): %w", filepath.Base(path), contentType, ErrUnsupportedMedia)
	}

	open := func() (io.ReadCloser, error) {
		return os.Open(path)
	}

	return models.NewFileRef(filepath.Base(path), contentType, info.Size(), open), nil
}

func expandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func detectContentType(path string) (string, error) {
	if ct := typeByExtension(path); isMedia(ct) {
		return ct, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return stripParams(http.DetectContentType(head[:n])), nil
}

// extraMediaTypes covers extensions missing from the built-in mime table on
// systems without a mime.types file.
var extraMediaTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".3gp":  "video/3gpp",
	".heic": "image/heic",
	".bmp":  "image/bmp",
}

func typeByExtension(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ct := stripParams(mime.TypeByExtension(ext)); ct != "" {
		return ct
	}
	return extraMediaTypes[ext]
}

func stripParams(contentType string) string {
	ct, _, _ := strings.Cut(contentType, ";")
	return strings.TrimSpace(ct)
}

func isMedia(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "video/")
}
