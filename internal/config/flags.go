// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// BaseURL holds a backend origin given on the command line.
// It implements the flag.Value interface.
type BaseURL struct {
	raw string
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a backend origin, e.g. http://localhost:8000 or host:port
//	-request-timeout per-request timeout (e.g., "15s", "1m")
//	-shop-name heading shown on the home page
//	-media-dir directory served by the media-library picker
//	-log-file log file path
//	-log-level zerolog level name
//	-c/-config JSON or YAML config file path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("weld-storefront", flag.ContinueOnError)

	var backend BaseURL
	var requestTimeout time.Duration
	var shopName string
	var mediaDir string
	var logFile string
	var logLevel string
	var configPath string

	fs.Var(&backend, "a", "Backend origin, scheme://host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&shopName, "shop-name", "", "Shop name shown on the home page")
	fs.StringVar(&mediaDir, "media-dir", "", "Media library directory")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&configPath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ShopName: shopName,
		},
		Adapter: Adapter{
			HTTPAddress:    backend.String(),
			RequestTimeout: requestTimeout,
		},
		Picker: Picker{
			MediaDir: mediaDir,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		FilePath: configPath,
	}, nil
}

// String returns the origin as given, or an empty string when unset.
func (u *BaseURL) String() string {
	return u.raw
}

// Set validates s as an http(s) origin. A value without a scheme is treated
// as host:port over plain http.
func (u *BaseURL) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("empty backend address")
	}

	candidate := s
	if !strings.Contains(candidate, "://") {
		candidate = "http://" + candidate
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("backend address must use http or https")
	}
	if parsed.Host == "" {
		return errors.New("backend address must include a host")
	}

	u.raw = s
	return nil
}
