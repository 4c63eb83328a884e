// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later sources
// override earlier ones while zero fields leave them untouched.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:8000", RequestTimeout: time.Second}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flag:8000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://flag:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestGetStructuredConfig_FileOverridesEnvAndFlags(t *testing.T) {
	p := writeConfigFile(t, "config.json", `{"adapter": {"http_address": "http://file:8000"}}`)
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "http://env:8000",
		"LOG_LEVEL":       "info",
	})

	cfg, err := GetStructuredConfig([]string{"-c", p, "-request-timeout", "5s"})

	require.NoError(t, err)
	assert.Equal(t, "http://file:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, p, cfg.FilePath)
}

func TestGetStructuredConfig_MissingFile(t *testing.T) {
	clearEnvVars(t)

	_, err := GetStructuredConfig([]string{"-c", "/definitely/not/here.json"})
	require.Error(t, err)
}

// ── client view ───────────────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := getClientConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultShopName, cfg.App.ShopName)
	assert.Equal(t, DefaultLogFile, cfg.Log.File)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Empty(t, cfg.Picker.MediaDir)
}

func TestGetClientConfig_InvalidLogLevel(t *testing.T) {
	clearEnvVars(t)

	_, err := getClientConfig([]string{"-log-level", "chatty"})
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

func TestGetClientConfig_MediaDirMustExist(t *testing.T) {
	clearEnvVars(t)

	_, err := getClientConfig([]string{"-media-dir", "/no/such/dir"})
	assert.ErrorIs(t, err, ErrInvalidPickerConfigs)

	cfg, err := getClientConfig([]string{"-media-dir", t.TempDir()})
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Picker.MediaDir)
}

func TestClientConfigValidate_NegativeTimeout(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}})
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}
