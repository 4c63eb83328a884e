// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/weld-storefront/internal/store"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the admin login screen. It renders
// two text inputs (username and password) and runs the credential check as a
// command on submission. On success the session is stored and the admin page
// opens.
type LoginModel struct {
	env *env

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with pre-configured username and password inputs.
// The username field receives focus immediately; the password field uses masked echo.
func NewLoginModel(e *env) *LoginModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "username"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		env:    e,
		inputs: []textinput.Model{loginInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - loginResultMsg  clears submitting state; stores the session or shows the error
//   - esc             navigates back home
//   - tab, shift+tab  move focus between inputs
//   - enter           runs the credential check
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			m.inputs[1].Reset()
			return m, nil
		}

		m.env.store.Dispatch(store.LoggedIn{Session: result.session})
		m.reset()
		return m, navigate(pageAdmin)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.reset()
			return m, navigate(pageHome)
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, cmdLogin(m.env.services.AuthService, m.inputs[0].Value(), m.inputs[1].Value())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Username  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Log in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ADMIN LOGIN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: log in")
}

func (m *LoginModel) reset() {
	m.submitting = false
	m.errMsg = ""
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.setFocus(0)
}

func (m *LoginModel) focusNext() {
	m.setFocus((m.focus + 1) % len(m.inputs))
}

func (m *LoginModel) focusPrev() {
	m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
}

func (m *LoginModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}
