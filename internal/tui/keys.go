// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	refresh  key.Binding
	admin    key.Binding
	whatsapp key.Binding
	call     key.Binding
	maps     key.Binding
	open     key.Binding
	submit   key.Binding
	library  key.Binding
	clear    key.Binding
	logout   key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	admin:    key.NewBinding(key.WithKeys("a")),
	whatsapp: key.NewBinding(key.WithKeys("w")),
	call:     key.NewBinding(key.WithKeys("p")),
	maps:     key.NewBinding(key.WithKeys("m")),
	open:     key.NewBinding(key.WithKeys("o")),
	submit:   key.NewBinding(key.WithKeys("ctrl+s")),
	library:  key.NewBinding(key.WithKeys("ctrl+l")),
	clear:    key.NewBinding(key.WithKeys("ctrl+d")),
	logout:   key.NewBinding(key.WithKeys("ctrl+x")),
}
