// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// Defaults applied by [GetClientConfig] to fields no source has set.
const (
	DefaultHTTPAddress    = "http://localhost:8000"
	DefaultRequestTimeout = 15 * time.Second
	DefaultShopName       = "Local Welding Workshop"
	DefaultLogFile        = "weld-storefront.log"
	DefaultLogLevel       = "debug"
)

// ClientApp holds presentation settings.
type ClientApp struct {
	ShopName string
}

// ClientAdapter holds network settings used by the gateway client.
type ClientAdapter struct {
	// HTTPAddress is the backend origin.
	HTTPAddress string
	// RequestTimeout is the per-request timeout.
	RequestTimeout time.Duration
}

// ClientPicker holds file picker settings.
type ClientPicker struct {
	// MediaDir enables the media-library picker when non-empty.
	MediaDir string
}

// ClientLog holds logger settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the validated client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Picker  ClientPicker
	Log     ClientLog
}

// GetClientConfig builds the client configuration from the process
// environment and command line.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// newClientConfig maps the merged structured config onto the client view
// and fills in defaults.
func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			ShopName: cfg.App.ShopName,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Picker: ClientPicker{
			MediaDir: cfg.Picker.MediaDir,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}

	if clientCfg.App.ShopName == "" {
		clientCfg.App.ShopName = DefaultShopName
	}
	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Log.File == "" {
		clientCfg.Log.File = DefaultLogFile
	}
	if clientCfg.Log.Level == "" {
		clientCfg.Log.Level = DefaultLogLevel
	}

	return clientCfg
}
