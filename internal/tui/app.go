// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/weld-storefront/internal/store"
	"github.com/MKhiriev/weld-storefront/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) runs sync cycles and applies their results to the store
// 5) delegates all other messages to the active page
//
// Only the newest sync cycle may update the store; results of older cycles
// that finish late are dropped.
type RootModel struct {
	env     *env
	pages   map[string]tea.Model
	current string

	syncSeq    int
	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(e *env, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		env:       e,
		pages:     pages,
		current:   startPage,
		buildInfo: buildInfo,
	}
}

// Init starts the page and the first sync cycle.
func (r RootModel) Init() tea.Cmd {
	page := r.page()
	if page == nil {
		return requestRefresh
	}
	return tea.Batch(page.Init(), requestRefresh)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.current == pageHome {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = msg.Page

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, next.Init()

	case refreshRequestMsg:
		r.syncSeq++
		r.env.store.Dispatch(store.SyncStarted{})
		r.env.logger.Debug().Int("seq", r.syncSeq).Msg("sync started")
		return r, cmdRefresh(r.env.ctx, r.env.services.SyncService, r.syncSeq)

	case syncResultMsg:
		if msg.seq != r.syncSeq {
			r.env.logger.Debug().Int("seq", msg.seq).Int("latest", r.syncSeq).Msg("stale sync result dropped")
			return r, nil
		}
		if msg.err != nil {
			r.env.logger.Warn().Err(msg.err).Msg("sync failed")
			r.env.store.Dispatch(store.SyncFailed{Message: humanizeError(msg.err)})
			return r, nil
		}
		r.env.store.Dispatch(store.SyncSucceeded{Snapshot: msg.snapshot})
		return r, nil
	}

	page := r.page()
	if page == nil {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.env.shopName, r.buildInfo)
	}
	page := r.page()
	if page == nil {
		return renderPage(r.env.shopName, "", "")
	}
	return page.View()
}

func (r RootModel) page() tea.Model {
	return r.pages[r.current]
}
