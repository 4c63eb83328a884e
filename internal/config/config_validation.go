// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// validate checks the client config after defaults were applied.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	if cfg.Picker.MediaDir != "" {
		info, err := os.Stat(cfg.Picker.MediaDir)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPickerConfigs, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: %s is not a directory", ErrInvalidPickerConfigs, cfg.Picker.MediaDir)
		}
	}

	return nil
}
