// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/MKhiriev/weld-storefront/internal/adapter"
	"github.com/MKhiriev/weld-storefront/internal/picker"
	"github.com/MKhiriev/weld-storefront/internal/service"
	"github.com/MKhiriev/weld-storefront/internal/store"
	"github.com/MKhiriev/weld-storefront/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func loggedInAdmin(t *testing.T) (*AdminModel, *testDeps) {
	t.Helper()
	d := newTestDeps(t)
	d.env.store.Dispatch(store.LoggedIn{Session: adminSession})
	return NewAdminModel(d.env), d
}

func uploadTitled(title string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		u, ok := x.(models.PendingUpload)
		return ok && u.Title == title && u.File.IsSet()
	})
}

func TestAdminModel_InitRequiresLogin(t *testing.T) {
	d := newTestDeps(t)
	m := NewAdminModel(d.env)

	assert.Equal(t, NavigateTo{Page: pageLogin}, exec(m.Init()))
}

func TestAdminModel_TypingUpdatesStore(t *testing.T) {
	m, d := loggedInAdmin(t)

	m.Update(runes("Gate bracket"))
	m.Update(keyOf(tea.KeyTab))
	m.Update(runes("Mild steel"))

	st := d.env.store.State()
	assert.Equal(t, "Gate bracket", st.Upload.Title)
	assert.Equal(t, "Mild steel", st.Upload.Description)
	assert.Equal(t, store.PhaseEditing, st.Phase)
}

func TestAdminModel_CategoryToggle(t *testing.T) {
	m, d := loggedInAdmin(t)

	m.Update(keyOf(tea.KeyTab))
	m.Update(keyOf(tea.KeyTab))
	assert.Equal(t, fieldCategory, m.focus)

	m.Update(keyOf(tea.KeyEnter))
	assert.Equal(t, models.CategoryCatalogue, d.env.store.State().Upload.Category)

	m.Update(keyOf(tea.KeySpace))
	assert.Equal(t, models.CategoryPortfolio, d.env.store.State().Upload.Category)
}

func TestAdminModel_ValidationNeverSubmits(t *testing.T) {
	m, d := loggedInAdmin(t)
	d.upload.EXPECT().Validate(gomock.Any()).Return(service.ErrTitleRequired)

	_, cmd := m.Update(keyOf(tea.KeyCtrlS))
	assert.Nil(t, cmd)

	st := d.env.store.State()
	assert.Equal(t, service.MsgTitleRequired, st.UploadError)
	assert.NotEqual(t, store.PhaseSubmitting, st.Phase)
	assert.Contains(t, m.View(), service.MsgTitleRequired)
}

func TestAdminModel_BrowserPick(t *testing.T) {
	m, d := loggedInAdmin(t)
	d.browser.EXPECT().Pick(gomock.Any(), "/tmp/bracket.jpg").Return(testFile(), nil)

	m.Update(keyOf(tea.KeyShiftTab))
	assert.Equal(t, fieldFile, m.focus)
	m.Update(runes("/tmp/bracket.jpg"))

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	m.Update(exec(cmd))

	file := d.env.store.State().Upload.File
	assert.True(t, file.IsSet())
	assert.Equal(t, "bracket.jpg", file.Name)
	assert.Contains(t, m.View(), "bracket.jpg (image, 2.0 KB)")
}

func TestAdminModel_BrowserPickRejectsNonMedia(t *testing.T) {
	m, d := loggedInAdmin(t)
	d.browser.EXPECT().Pick(gomock.Any(), "notes.txt").Return(models.FileRef{}, picker.ErrUnsupportedMedia)

	m.Update(keyOf(tea.KeyShiftTab))
	m.Update(runes("notes.txt"))
	_, cmd := m.Update(keyOf(tea.KeyEnter))
	m.Update(exec(cmd))

	st := d.env.store.State()
	assert.False(t, st.Upload.File.IsSet())
	assert.Equal(t, "Only image or video files are allowed", st.UploadError)
}

func TestAdminModel_ClearFile(t *testing.T) {
	m, d := loggedInAdmin(t)
	m.Update(filePickedMsg{file: testFile()})
	require.True(t, d.env.store.State().Upload.File.IsSet())

	m.Update(keyOf(tea.KeyCtrlD))
	assert.False(t, d.env.store.State().Upload.File.IsSet())
}

func TestAdminModel_SubmitSuccess(t *testing.T) {
	m, d := loggedInAdmin(t)
	ack := models.UploadAck{ID: "7", URL: "/static/portfolio/7.jpg", Title: "Gate bracket", Type: models.FileTypeImage, Category: models.CategoryCatalogue}

	d.upload.EXPECT().Validate(uploadTitled("Gate bracket")).Return(nil)
	d.upload.EXPECT().Submit(gomock.Any(), adminSession, uploadTitled("Gate bracket")).Return(ack, nil)

	m.Update(runes("Gate bracket"))
	m.Update(filePickedMsg{file: testFile()})
	d.env.store.Dispatch(store.CategoryChanged{Category: models.CategoryCatalogue})

	_, cmd := m.Update(keyOf(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	assert.Equal(t, store.PhaseSubmitting, d.env.store.State().Phase)
	assert.Contains(t, m.View(), "[Uploading...]")

	_, next := m.Update(exec(cmd))
	assert.Equal(t, refreshRequestMsg{}, exec(next))

	st := d.env.store.State()
	assert.Equal(t, store.PhaseIdle, st.Phase)
	assert.Empty(t, st.Upload.Title)
	assert.False(t, st.Upload.File.IsSet())
	assert.Equal(t, models.CategoryCatalogue, st.Upload.Category)
	assert.Contains(t, st.Notice, "Gate bracket")
	require.NotNil(t, st.LastAck)
	assert.Equal(t, ack, *st.LastAck)

	assert.Empty(t, m.title.Value())
	assert.Contains(t, m.View(), testBaseURL+"/static/portfolio/7.jpg")
}

func TestAdminModel_SubmitFailureKeepsForm(t *testing.T) {
	m, d := loggedInAdmin(t)

	d.upload.EXPECT().Validate(gomock.Any()).Return(nil)
	d.upload.EXPECT().Submit(gomock.Any(), adminSession, gomock.Any()).
		Return(models.UploadAck{}, &adapter.UploadError{Status: 401, Detail: "Unauthorized"})

	m.Update(runes("Gate bracket"))
	m.Update(filePickedMsg{file: testFile()})

	_, cmd := m.Update(keyOf(tea.KeyCtrlS))
	_, next := m.Update(exec(cmd))
	assert.Nil(t, next)

	st := d.env.store.State()
	assert.Equal(t, store.PhaseEditing, st.Phase)
	assert.Equal(t, "Unauthorized", st.UploadError)
	assert.Equal(t, "Gate bracket", st.Upload.Title)
	assert.True(t, st.Upload.File.IsSet())
	assert.Equal(t, "Gate bracket", m.title.Value())
}

func TestAdminModel_KeysIgnoredWhileSubmitting(t *testing.T) {
	m, d := loggedInAdmin(t)

	d.upload.EXPECT().Validate(gomock.Any()).Return(nil)

	m.Update(runes("Gate"))
	m.Update(filePickedMsg{file: testFile()})
	_, cmd := m.Update(keyOf(tea.KeyCtrlS))
	require.NotNil(t, cmd)

	m.Update(runes("X"))
	_, again := m.Update(keyOf(tea.KeyCtrlS))
	_, esc := m.Update(keyOf(tea.KeyEsc))

	assert.Nil(t, again)
	assert.Nil(t, esc)
	assert.Equal(t, "Gate", d.env.store.State().Upload.Title)
	assert.Equal(t, "Gate", m.title.Value())
}

func TestAdminModel_MediaLibraryPick(t *testing.T) {
	m, d := loggedInAdmin(t)
	assets := []models.MediaAsset{
		{URI: "new.mp4", FileName: "new.mp4", Type: "video/mp4", FileSize: 4096},
		{URI: "old.jpg", FileName: "", Type: "image", FileSize: 0},
	}
	d.library.EXPECT().List(gomock.Any()).Return(assets, nil)
	d.library.EXPECT().Asset(gomock.Any(), "old.jpg").Return(assets[1], nil)

	_, cmd := m.Update(keyOf(tea.KeyCtrlL))
	require.NotNil(t, m.library)
	assert.Contains(t, m.View(), "Loading...")

	m.Update(exec(cmd))
	view := m.View()
	assert.Contains(t, view, "new.mp4")
	assert.Contains(t, view, "Unknown")

	m.Update(keyOf(tea.KeyDown))
	_, cmd = m.Update(keyOf(tea.KeyEnter))
	m.Update(exec(cmd))

	assert.Nil(t, m.library)
	file := d.env.store.State().Upload.File
	assert.True(t, file.IsSet())
	assert.Regexp(t, `^image_\d+\.jpg$`, file.Name)
	assert.Equal(t, "image/jpeg", file.ContentType)
	assert.Equal(t, int64(0), file.Size)
}

func TestAdminModel_MediaLibraryEscCloses(t *testing.T) {
	m, d := loggedInAdmin(t)
	d.library.EXPECT().List(gomock.Any()).Return(nil, nil)

	_, cmd := m.Update(keyOf(tea.KeyCtrlL))
	m.Update(exec(cmd))
	assert.Contains(t, m.View(), "No media found.")

	m.Update(keyOf(tea.KeyEsc))
	assert.Nil(t, m.library)
}

func TestAdminModel_NoMediaLibrary(t *testing.T) {
	m, d := loggedInAdmin(t)
	d.env.pickers.Native = nil

	_, cmd := m.Update(keyOf(tea.KeyCtrlL))
	assert.Nil(t, cmd)
	assert.Nil(t, m.library)
	assert.Equal(t, "No media library configured", d.env.store.State().UploadError)
}

func TestAdminModel_Logout(t *testing.T) {
	m, d := loggedInAdmin(t)
	m.Update(runes("Gate"))

	_, cmd := m.Update(keyOf(tea.KeyCtrlX))
	assert.Equal(t, NavigateTo{Page: pageHome}, exec(cmd))

	st := d.env.store.State()
	assert.False(t, st.Session.Authenticated)
	assert.Empty(t, st.Upload.Title)
	assert.Empty(t, m.title.Value())
}

func TestAdminModel_RecentItems(t *testing.T) {
	m, d := loggedInAdmin(t)
	d.env.store.Dispatch(store.SyncSucceeded{Snapshot: testSnapshot()})

	view := m.View()
	assert.Contains(t, view, "Portfolio items: 2")
	assert.Contains(t, view, "Railing")
	assert.Contains(t, view, "portfolio")
}

func TestAdminModel_SubmitSuccessWithoutEcho(t *testing.T) {
	m, d := loggedInAdmin(t)

	d.upload.EXPECT().Validate(gomock.Any()).Return(nil)
	d.upload.EXPECT().Submit(gomock.Any(), adminSession, uploadTitled("  Gate bracket")).Return(models.UploadAck{}, nil)

	m.Update(runes("  Gate bracket"))
	m.Update(filePickedMsg{file: testFile()})

	_, cmd := m.Update(keyOf(tea.KeyCtrlS))
	_, next := m.Update(exec(cmd))
	assert.Equal(t, refreshRequestMsg{}, exec(next))

	st := d.env.store.State()
	assert.Equal(t, store.PhaseIdle, st.Phase)
	assert.Empty(t, st.UploadError)
	assert.Empty(t, st.Upload.Title)
	assert.False(t, st.Upload.File.IsSet())
	assert.Contains(t, st.Notice, "Gate bracket")
}
