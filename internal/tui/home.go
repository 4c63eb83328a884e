// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/weld-storefront/internal/store"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type homeSection int

const (
	sectionPortfolio homeSection = iota
	sectionServices
)

func (s homeSection) title() string {
	if s == sectionServices {
		return "Services"
	}
	return "Portfolio"
}

// HomeModel is the public storefront: contact card, portfolio and the
// services catalogue. It only reads the store; refreshes are requested from
// [RootModel].
type HomeModel struct {
	env *env

	section homeSection
	cursor  [2]int
	status  string
	errMsg  string
}

// NewHomeModel creates the home page.
func NewHomeModel(e *env) *HomeModel {
	return &HomeModel{env: e}
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model]. Handled keys:
//   - tab, left, right  switch between portfolio and services
//   - up, down          move the cursor
//   - enter, o          open the selected work, or enquire about the selected service
//   - w                 enquire about the selected service over WhatsApp
//   - p, m              call the shop or open its location
//   - r                 refresh
//   - a                 admin area
//   - q                 quit
func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case linkOpenedMsg:
		if msg.err != nil {
			m.env.logger.Warn().Err(msg.err).Str("url", msg.url).Msg("open link failed")
			m.status = ""
			m.errMsg = "Could not open link: " + humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Opened " + msg.url
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *HomeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.env.store.State()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.tab, keys.left, keys.right):
		if m.section == sectionPortfolio {
			m.section = sectionServices
		} else {
			m.section = sectionPortfolio
		}
		return m, nil
	case key.Matches(msg, keys.up):
		if m.cursor[m.section] > 0 {
			m.cursor[m.section]--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.cursor[m.section] < m.length(st)-1 {
			m.cursor[m.section]++
		}
		return m, nil
	case key.Matches(msg, keys.refresh):
		m.errMsg = ""
		return m, requestRefresh
	case key.Matches(msg, keys.admin):
		if st.Session.Authenticated {
			return m, navigate(pageAdmin)
		}
		return m, navigate(pageLogin)
	case key.Matches(msg, keys.call):
		return m, m.openLink(m.env.services.LinkService.PhoneURL(st.Contact))
	case key.Matches(msg, keys.maps):
		return m, m.openLink(m.env.services.LinkService.MapsURL(st.Contact))
	case key.Matches(msg, keys.whatsapp):
		if m.section != sectionServices {
			return m, nil
		}
		return m, m.enquire(st)
	case key.Matches(msg, keys.enter, keys.open):
		if m.section == sectionServices {
			return m, m.enquire(st)
		}
		idx := m.selected(st)
		if idx < 0 {
			return m, nil
		}
		return m, m.openLink(m.env.services.LinkService.MediaURL(st.Portfolio[idx].FileURL), nil)
	}

	return m, nil
}

func (m *HomeModel) enquire(st store.State) tea.Cmd {
	idx := m.selected(st)
	if idx < 0 {
		return nil
	}
	return m.openLink(m.env.services.LinkService.WhatsAppURL(st.Contact, st.Catalogue[idx].Name))
}

func (m *HomeModel) openLink(url string, err error) tea.Cmd {
	if err != nil {
		m.status = ""
		m.errMsg = humanizeError(err)
		return nil
	}
	m.errMsg = ""
	return cmdOpenLink(m.env.opener, url)
}

func (m *HomeModel) length(st store.State) int {
	if m.section == sectionServices {
		return len(st.Catalogue)
	}
	return len(st.Portfolio)
}

// selected returns the cursor position clamped to the current list, or -1
// when the list is empty.
func (m *HomeModel) selected(st store.State) int {
	n := m.length(st)
	if n == 0 {
		return -1
	}
	if m.cursor[m.section] >= n {
		m.cursor[m.section] = n - 1
	}
	return m.cursor[m.section]
}

func (m *HomeModel) View() string {
	st := m.env.store.State()

	var b strings.Builder
	b.WriteString(m.viewContact(st))
	b.WriteString("\n")

	switch {
	case st.Syncing:
		b.WriteString(helpStyle.Render("Refreshing..."))
		b.WriteString("\n")
	case st.SyncNotice != "":
		b.WriteString(errorStyle.Render("Could not refresh: " + st.SyncNotice))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, s := range []homeSection{sectionPortfolio, sectionServices} {
		label := fmt.Sprintf(" %s ", s.title())
		if s == m.section {
			label = selectedStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("  ")
	}
	b.WriteString("\n\n")

	if m.section == sectionServices {
		b.WriteString(m.viewServices(st))
	} else {
		b.WriteString(m.viewPortfolio(st))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "tab: section │ ↑/↓: select │ enter: open │ p: call │ m: map │ r: refresh │ a: admin │ v: about │ q: quit"
	return renderPage(strings.ToUpper(m.env.shopName), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *HomeModel) viewContact(st store.State) string {
	c := st.Contact

	var b strings.Builder
	b.WriteString("Phone     │ ")
	b.WriteString(valueOrDash(c.Phone))
	b.WriteString("\n")
	b.WriteString("WhatsApp  │ ")
	b.WriteString(valueOrDash(c.WhatsApp))
	b.WriteString("\n")
	b.WriteString("Address   │ ")
	b.WriteString(valueOrDash(c.Address))
	b.WriteString("\n")
	if c.Email != "" {
		b.WriteString("Email     │ ")
		b.WriteString(c.Email)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *HomeModel) viewPortfolio(st store.State) string {
	if !st.Loaded {
		return "Loading...\n"
	}
	if len(st.Portfolio) == 0 {
		return "No work uploaded yet.\n"
	}

	cur := m.selected(st)

	var b strings.Builder
	b.WriteString("  Title                     │ Type  │ Description\n")
	b.WriteString("  ──────────────────────────┼───────┼──────────────────────────\n")
	for i, item := range st.Portfolio {
		line := fmt.Sprintf("%s %-26s│ %-6s│ %s",
			cursorMark(i == cur),
			fitText(item.Title, 25),
			valueOrDash(string(item.FileType)),
			fitText(valueOrDash(item.Description), 40),
		)
		if i == cur {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *HomeModel) viewServices(st store.State) string {
	if !st.Loaded {
		return "Loading...\n"
	}
	if len(st.Catalogue) == 0 {
		return "No services listed yet.\n"
	}

	cur := m.selected(st)

	var b strings.Builder
	b.WriteString("  Service                   │ Price        │ Description\n")
	b.WriteString("  ──────────────────────────┼──────────────┼──────────────────────────\n")
	for i, item := range st.Catalogue {
		line := fmt.Sprintf("%s %-26s│ %-13s│ %s",
			cursorMark(i == cur),
			fitText(item.Name, 25),
			fitText(valueOrDash(item.Price), 12),
			fitText(valueOrDash(item.Description), 40),
		)
		if i == cur {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("w: enquire on WhatsApp"))
	b.WriteString("\n")
	return b.String()
}
