// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration container. It is populated by
// merging values from environment variables, command-line flags, and an
// optional config file; zero values mean "not set by this source".
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds presentation-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend origin and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Picker holds file acquisition settings.
	Picker Picker `envPrefix:"PICKER_"`

	// Log holds logger output settings.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// The format is chosen by extension (.yaml/.yml, anything else is JSON).
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds settings shown by the presentation shell.
type App struct {
	// ShopName is the heading rendered on the home page.
	// Env: APP_SHOP_NAME
	ShopName string `env:"SHOP_NAME"`
}

// Adapter holds settings of the backend gateway client.
type Adapter struct {
	// HTTPAddress is the backend origin, e.g. "http://localhost:8000".
	// A bare host:port is accepted and gets an http:// scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every backend call, uploads included
	// (e.g. "15s", "1m"). Expiry is reported as a network error.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Picker holds settings for media acquisition.
type Picker struct {
	// MediaDir is the directory served by the media-library picker. When
	// empty only the path-based picker is offered.
	// Env: PICKER_MEDIA_DIR
	MediaDir string `env:"MEDIA_DIR"`
}

// Log holds logger settings.
type Log struct {
	// File is the log file path. The terminal UI owns stdout, so logs never
	// go there unless the file cannot be opened.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// in the following priority order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. Config file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
