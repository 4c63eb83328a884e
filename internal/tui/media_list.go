// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/weld-storefront/models"
)

// mediaListModel is the media library overlay of the admin page.
type mediaListModel struct {
	assets  []models.MediaAsset
	cursor  int
	loading bool
	errMsg  string
}

func newMediaListModel() *mediaListModel {
	return &mediaListModel{loading: true}
}

func (l *mediaListModel) loaded(msg mediaListMsg) {
	l.loading = false
	l.cursor = 0
	if msg.err != nil {
		l.errMsg = humanizeError(msg.err)
		l.assets = nil
		return
	}
	l.errMsg = ""
	l.assets = msg.assets
}

func (l *mediaListModel) move(delta int) {
	next := l.cursor + delta
	if next < 0 || next >= len(l.assets) {
		return
	}
	l.cursor = next
}

func (l *mediaListModel) selected() (models.MediaAsset, bool) {
	if l.loading || len(l.assets) == 0 {
		return models.MediaAsset{}, false
	}
	return l.assets[l.cursor], true
}

func (l *mediaListModel) View() string {
	var b strings.Builder

	switch {
	case l.loading:
		b.WriteString("Loading...\n")
	case l.errMsg != "":
		b.WriteString("Error: ")
		b.WriteString(errorStyle.Render(l.errMsg))
		b.WriteString("\n")
	case len(l.assets) == 0:
		b.WriteString("No media found.\n")
	default:
		b.WriteString("  Name                           │ Type       │ Size\n")
		b.WriteString("  ───────────────────────────────┼────────────┼──────────\n")
		for i, a := range l.assets {
			line := fmt.Sprintf("%s %-31s│ %-11s│ %s",
				cursorMark(i == l.cursor),
				fitText(valueOrDash(a.FileName), 30),
				fitText(valueOrDash(a.Type), 10),
				formatSize(a.FileSize),
			)
			if i == l.cursor {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return renderPage("MEDIA LIBRARY", strings.TrimRight(b.String(), "\n"), "↑/↓: select │ enter: choose │ esc: back")
}
