// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the storefront's terminal shell. It renders the view-state
// store and turns key presses into store actions and service calls.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/weld-storefront/internal/logger"
	"github.com/MKhiriev/weld-storefront/internal/opener"
	"github.com/MKhiriev/weld-storefront/internal/service"
	"github.com/MKhiriev/weld-storefront/internal/store"
	"github.com/MKhiriev/weld-storefront/models"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrUserQuit       = errors.New("user quit")
	ErrMissingService = errors.New("tui: missing dependency")
)

type TUI struct {
	services  *service.ClientServices
	store     *store.ViewStore
	opener    opener.ExternalLinkOpener
	pickers   Pickers
	shopName  string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New checks the dependencies and returns a TUI ready to run.
func New(
	services *service.ClientServices,
	viewStore *store.ViewStore,
	linkOpener opener.ExternalLinkOpener,
	pickers Pickers,
	shopName string,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*TUI, error) {
	if services == nil || viewStore == nil || linkOpener == nil || pickers.Browser == nil {
		return nil, ErrMissingService
	}

	return &TUI{
		services:  services,
		store:     viewStore,
		opener:    linkOpener,
		pickers:   pickers,
		shopName:  shopName,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the storefront until the user quits or ctx is cancelled.
// Ctrl+C returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	e := &env{
		ctx:      ctx,
		services: t.services,
		store:    t.store,
		opener:   t.opener,
		pickers:  t.pickers,
		shopName: t.shopName,
		logger:   t.logger,
	}

	pages := map[string]tea.Model{
		pageHome:  NewHomeModel(e),
		pageLogin: NewLoginModel(e),
		pageAdmin: NewAdminModel(e),
	}

	return NewRootModel(e, pages, pageHome, t.buildInfo)
}
