// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "sync"

// ViewStore holds the current State and applies actions to it.
// It is safe for concurrent use.
type ViewStore struct {
	mu    sync.RWMutex
	state State
}

// NewViewStore returns a store holding [Initial].
func NewViewStore() *ViewStore {
	return &ViewStore{state: Initial()}
}

// Dispatch applies a and returns the resulting state.
func (v *ViewStore) Dispatch(a Action) State {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state = Reduce(v.state, a)
	return v.state
}

// State returns the current state.
func (v *ViewStore) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.state
}
