// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/weld-storefront/internal/logger"
	"github.com/MKhiriev/weld-storefront/internal/tui"
)

// Shell is the interactive front end driven by [App].
type Shell interface {
	Run(ctx context.Context) error
}

type App struct {
	shell  Shell
	logger *logger.Logger
}

func NewApp(shell Shell, logger *logger.Logger) (*App, error) {
	if shell == nil {
		return nil, errors.New("client: shell is required")
	}
	return &App{shell: shell, logger: logger}, nil
}

// Run blocks until the shell exits or the process receives SIGINT or
// SIGTERM. Quitting from the shell is a normal exit.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	err := a.shell.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	case ctx.Err() != nil:
		a.logger.Info().Err(ctx.Err()).Msg("client interrupted")
		return nil
	default:
		return err
	}
}
