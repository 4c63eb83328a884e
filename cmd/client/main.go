// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/weld-storefront/internal/adapter"
	"github.com/MKhiriev/weld-storefront/internal/client"
	"github.com/MKhiriev/weld-storefront/internal/config"
	"github.com/MKhiriev/weld-storefront/internal/logger"
	"github.com/MKhiriev/weld-storefront/internal/opener"
	"github.com/MKhiriev/weld-storefront/internal/picker"
	"github.com/MKhiriev/weld-storefront/internal/service"
	"github.com/MKhiriev/weld-storefront/internal/store"
	"github.com/MKhiriev/weld-storefront/internal/tui"
	"github.com/MKhiriev/weld-storefront/internal/utils"
	"github.com/MKhiriev/weld-storefront/models"
	"github.com/rs/zerolog"
)

const appRole = "weld-storefront"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	bootLog := logger.NewLogger(os.Stderr, appRole, zerolog.InfoLevel)
	cfg, err := config.GetClientConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log, err := logger.NewClientLogger(appRole, cfg.Log.File, cfg.Log.Level)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error creating logger")
	}

	ids := utils.NewUUIDGenerator()

	gateway, err := adapter.NewHTTPGateway(cfg.Adapter, ids, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create gateway")
	}

	pickers := tui.Pickers{Browser: picker.NewBrowserPicker()}
	if cfg.Picker.MediaDir != "" {
		library, libErr := picker.NewDirMediaLibrary(cfg.Picker.MediaDir)
		if libErr != nil {
			log.Fatal().Err(libErr).Str("dir", cfg.Picker.MediaDir).Msg("open media library")
		}
		pickers.Native = picker.NewNativeMediaPicker(library)
	}

	linkOpener := opener.NewFallbackOpener(log, opener.NewSystemOpener(), opener.NewClipboardOpener())

	services := service.NewClientServices(gateway, ids, log)

	ui, err := tui.New(services, store.NewViewStore(), linkOpener, pickers, cfg.App.ShopName, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	log.Info().
		Str("backend", gateway.BaseURL()).
		Str("version", buildInfo.BuildVersion()).
		Msg("starting storefront client")

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
