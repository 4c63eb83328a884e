// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the storefront client's process lifecycle.
//
// It runs the terminal shell under a signal-aware context and turns a user
// quit into a clean exit.
package client
