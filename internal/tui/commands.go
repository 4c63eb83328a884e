// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/weld-storefront/internal/opener"
	"github.com/MKhiriev/weld-storefront/internal/picker"
	"github.com/MKhiriev/weld-storefront/internal/service"
	"github.com/MKhiriev/weld-storefront/models"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

func requestRefresh() tea.Msg {
	return refreshRequestMsg{}
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func cmdRefresh(ctx context.Context, sync service.SyncService, seq int) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := sync.Refresh(ctx)
		return syncResultMsg{seq: seq, snapshot: snapshot, err: err}
	}
}

func cmdLogin(auth service.AuthService, username, password string) tea.Cmd {
	return func() tea.Msg {
		session, err := auth.Login(username, password)
		return loginResultMsg{session: session, err: err}
	}
}

func cmdSubmit(ctx context.Context, upload service.UploadService, session models.Session, pending models.PendingUpload) tea.Cmd {
	title := pending.Metadata().Title
	return func() tea.Msg {
		ack, err := upload.Submit(ctx, session, pending)
		return uploadResultMsg{title: title, ack: ack, err: err}
	}
}

func cmdPick(ctx context.Context, p picker.FilePicker, selection string) tea.Cmd {
	return func() tea.Msg {
		file, err := p.Pick(ctx, selection)
		return filePickedMsg{file: file, err: err}
	}
}

func cmdListMedia(ctx context.Context, library picker.MediaLibrary) tea.Cmd {
	return func() tea.Msg {
		assets, err := library.List(ctx)
		return mediaListMsg{assets: assets, err: err}
	}
}

func cmdOpenLink(o opener.ExternalLinkOpener, url string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg{url: url, err: o.Open(url)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
