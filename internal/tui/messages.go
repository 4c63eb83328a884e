// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/weld-storefront/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageHome  = "home"
	pageLogin = "login"
	pageAdmin = "admin"
)

// NavigateTo asks [RootModel] to switch the active page. When Payload is set
// it is delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// refreshRequestMsg asks the root to start a new sync cycle.
type refreshRequestMsg struct{}

type syncResultMsg struct {
	seq      int
	snapshot models.Snapshot
	err      error
}

type loginResultMsg struct {
	session models.Session
	err     error
}

type uploadResultMsg struct {
	title string
	ack   models.UploadAck
	err   error
}

type filePickedMsg struct {
	file models.FileRef
	err  error
}

type mediaListMsg struct {
	assets []models.MediaAsset
	err    error
}

type linkOpenedMsg struct {
	url string
	err error
}

type clearStatusMsg struct{}
