// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/weld-storefront/internal/store"
	"github.com/MKhiriev/weld-storefront/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldCategory
	fieldFile
	fieldCount
)

const recentLimit = 5

// AdminModel is the upload form shown after login. Form values live in the
// store; the widgets only collect keystrokes and are reset from the store
// after a successful upload or logout.
type AdminModel struct {
	env *env

	title       textinput.Model
	description textarea.Model
	filePath    textinput.Model
	focus       int

	library *mediaListModel
}

// NewAdminModel creates the admin page.
func NewAdminModel(e *env) *AdminModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Width = 50
	title.Focus()

	description := textarea.New()
	description.Placeholder = "description"
	description.ShowLineNumbers = false
	description.CharLimit = 2000
	description.SetWidth(50)
	description.SetHeight(3)

	filePath := textinput.New()
	filePath.Placeholder = "path to image or video"
	filePath.Width = 50

	return &AdminModel{
		env:         e,
		title:       title,
		description: description,
		filePath:    filePath,
	}
}

func (m *AdminModel) Init() tea.Cmd {
	if !m.env.store.State().Session.Authenticated {
		return navigate(pageLogin)
	}
	return textinput.Blink
}

func (m *AdminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case uploadResultMsg:
		return m, m.handleUploadResult(msg)

	case filePickedMsg:
		if msg.err != nil {
			m.env.logger.Debug().Err(msg.err).Msg("file pick failed")
			m.env.store.Dispatch(store.ValidationFailed{Message: humanizeError(msg.err)})
			return m, nil
		}
		m.env.store.Dispatch(store.FileSelected{File: msg.file})
		m.library = nil
		return m, nil

	case mediaListMsg:
		if m.library != nil {
			m.library.loaded(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if m.library != nil {
			return m, m.handleLibraryKey(msg)
		}
		return m, m.handleKey(msg)
	}

	return m, m.updateFocused(msg)
}

func (m *AdminModel) handleUploadResult(msg uploadResultMsg) tea.Cmd {
	if msg.err != nil {
		m.env.logger.Warn().Err(msg.err).Str("title", msg.title).Msg("upload failed")
		m.env.store.Dispatch(store.UploadFailed{Message: humanizeError(msg.err)})
		return nil
	}

	title := msg.ack.Title
	if title == "" {
		title = msg.title
	}
	m.env.logger.Info().Str("id", msg.ack.ID.String()).Str("title", title).Msg("upload succeeded")
	m.env.store.Dispatch(store.UploadSucceeded{
		Ack:     msg.ack,
		Message: fmt.Sprintf("Uploaded %q successfully", title),
	})
	m.resetWidgets()
	return requestRefresh
}

func (m *AdminModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	st := m.env.store.State()
	if st.Phase == store.PhaseSubmitting {
		return nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.env.store.Dispatch(store.NoticeDismissed{})
		return navigate(pageHome)
	case key.Matches(msg, keys.logout):
		m.env.store.Dispatch(store.LoggedOut{})
		m.resetWidgets()
		return navigate(pageHome)
	case key.Matches(msg, keys.tab):
		return m.setFocus((m.focus + 1) % fieldCount)
	case key.Matches(msg, keys.backtab):
		return m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
	case key.Matches(msg, keys.submit):
		return m.submit()
	case key.Matches(msg, keys.library):
		return m.openLibrary()
	case key.Matches(msg, keys.clear):
		m.filePath.Reset()
		m.env.store.Dispatch(store.FileCleared{})
		return nil
	}

	switch m.focus {
	case fieldCategory:
		if key.Matches(msg, keys.enter, keys.left, keys.right) || msg.String() == " " {
			m.env.store.Dispatch(store.CategoryChanged{Category: st.Upload.Category.Next()})
		}
		return nil
	case fieldFile:
		if key.Matches(msg, keys.enter) {
			return cmdPick(m.env.ctx, m.env.pickers.Browser, m.filePath.Value())
		}
	case fieldTitle:
		if key.Matches(msg, keys.enter) {
			return m.setFocus(fieldDescription)
		}
	}

	return m.updateFocused(msg)
}

// submit validates locally and, when the form is complete, starts the upload.
func (m *AdminModel) submit() tea.Cmd {
	st := m.env.store.State()
	if err := m.env.services.UploadService.Validate(st.Upload); err != nil {
		m.env.store.Dispatch(store.ValidationFailed{Message: humanizeError(err)})
		return nil
	}

	st = m.env.store.Dispatch(store.SubmitStarted{})
	if st.Phase != store.PhaseSubmitting {
		return nil
	}

	m.env.logger.Debug().Str("title", st.Upload.Metadata().Title).Str("category", string(st.Upload.Metadata().Category)).Msg("upload started")
	return cmdSubmit(m.env.ctx, m.env.services.UploadService, st.Session, st.Upload)
}

func (m *AdminModel) openLibrary() tea.Cmd {
	native := m.env.pickers.Native
	if native == nil {
		m.env.store.Dispatch(store.ValidationFailed{Message: "No media library configured"})
		return nil
	}

	m.library = newMediaListModel()
	return cmdListMedia(m.env.ctx, native.Library())
}

func (m *AdminModel) handleLibraryKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.library = nil
		return nil
	case key.Matches(msg, keys.up):
		m.library.move(-1)
	case key.Matches(msg, keys.down):
		m.library.move(1)
	case key.Matches(msg, keys.enter):
		asset, ok := m.library.selected()
		if !ok {
			return nil
		}
		m.filePath.Reset()
		return cmdPick(m.env.ctx, m.env.pickers.Native, asset.URI)
	}
	return nil
}

// updateFocused forwards msg to the focused widget and mirrors its value
// into the store.
func (m *AdminModel) updateFocused(msg tea.Msg) tea.Cmd {
	st := m.env.store.State()

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
		if v := m.title.Value(); v != st.Upload.Title {
			m.env.store.Dispatch(store.TitleChanged{Title: v})
		}
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
		if v := m.description.Value(); v != st.Upload.Description {
			m.env.store.Dispatch(store.DescriptionChanged{Description: v})
		}
	case fieldFile:
		m.filePath, cmd = m.filePath.Update(msg)
	}
	return cmd
}

func (m *AdminModel) setFocus(field int) tea.Cmd {
	m.title.Blur()
	m.description.Blur()
	m.filePath.Blur()
	m.focus = field

	switch field {
	case fieldTitle:
		return m.title.Focus()
	case fieldDescription:
		return m.description.Focus()
	case fieldFile:
		return m.filePath.Focus()
	}
	return nil
}

func (m *AdminModel) resetWidgets() {
	m.title.Reset()
	m.description.Reset()
	m.filePath.Reset()
	m.library = nil
	m.setFocus(fieldTitle)
}

func (m *AdminModel) View() string {
	st := m.env.store.State()
	if m.library != nil {
		return m.library.View()
	}

	var b strings.Builder
	b.WriteString("Logged in as ")
	b.WriteString(valueOrDash(st.Session.Username))
	b.WriteString("\n\n")

	b.WriteString("  Field       │ Value\n")
	b.WriteString("──────────────┼────────────────────────────────────────────\n")
	b.WriteString(focusMark(m.focus == fieldTitle))
	b.WriteString("Title       │ [")
	b.WriteString(m.title.View())
	b.WriteString("]\n")
	b.WriteString(focusMark(m.focus == fieldDescription))
	b.WriteString("Description │\n")
	b.WriteString(m.description.View())
	b.WriteString("\n")
	b.WriteString(focusMark(m.focus == fieldCategory))
	b.WriteString("Category    │ ")
	b.WriteString(renderCategory(st.Upload.Category))
	b.WriteString("\n")
	b.WriteString(focusMark(m.focus == fieldFile))
	b.WriteString("File        │ [")
	b.WriteString(m.filePath.View())
	b.WriteString("]\n")
	b.WriteString("  Selected    │ ")
	b.WriteString(renderFile(st.Upload.File))
	b.WriteString("\n")

	switch st.Phase {
	case store.PhaseSubmitting:
		b.WriteString("\n[Uploading...]\n")
	default:
		b.WriteString("\n[Upload]\n")
	}

	if st.UploadError != "" {
		b.WriteString("\nError: ")
		b.WriteString(errorStyle.Render(st.UploadError))
		b.WriteString("\n")
	}
	if st.Notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(st.Notice))
		b.WriteString("\n")
		if st.LastAck != nil && st.LastAck.URL != "" {
			b.WriteString("URL: ")
			b.WriteString(m.env.services.LinkService.MediaURL(st.LastAck.URL))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.viewRecent(st))

	hotKeys := "tab: next field │ enter: choose file │ ctrl+l: media library │ ctrl+d: clear file │ ctrl+s: upload │ ctrl+x: log out │ esc: back"
	return renderPage("ADMIN UPLOAD", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *AdminModel) viewRecent(st store.State) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Portfolio items: %d\n", len(st.Portfolio)))

	start := len(st.Portfolio) - recentLimit
	if start < 0 {
		start = 0
	}
	for i := len(st.Portfolio) - 1; i >= start; i-- {
		item := st.Portfolio[i]
		category := item.Category
		if category == "" {
			category = models.CategoryPortfolio
		}
		b.WriteString(fmt.Sprintf("  %-30s │ %-5s │ %s\n", fitText(item.Title, 30), valueOrDash(string(item.FileType)), category))
	}
	return b.String()
}

func focusMark(focused bool) string {
	if focused {
		return "> "
	}
	return "  "
}

func renderCategory(current models.Category) string {
	parts := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		label := string(c)
		if c == current {
			label = selectedStyle.Render("[" + label + "]")
		} else {
			label = " " + label + " "
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func renderFile(f models.FileRef) string {
	if !f.IsSet() {
		return "-"
	}
	return fmt.Sprintf("%s (%s, %s)", f.Name, valueOrDash(string(f.Kind)), formatSize(f.Size))
}
