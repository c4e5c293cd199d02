// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	search    key.Binding
	typeNext  key.Binding
	sortName  key.Binding
	sortBal   key.Binding
	sortMin   key.Binding
	overview  key.Binding
	unlock    key.Binding
	lock      key.Binding
	info      key.Binding
	reveal    key.Binding
	copy      key.Binding
	copyPass  key.Binding
	save      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	search:    key.NewBinding(key.WithKeys("/")),
	typeNext:  key.NewBinding(key.WithKeys("t")),
	sortName:  key.NewBinding(key.WithKeys("1")),
	sortBal:   key.NewBinding(key.WithKeys("2")),
	sortMin:   key.NewBinding(key.WithKeys("3")),
	overview:  key.NewBinding(key.WithKeys("o")),
	unlock:    key.NewBinding(key.WithKeys("u")),
	lock:      key.NewBinding(key.WithKeys("L")),
	info:      key.NewBinding(key.WithKeys("v")),
	reveal:    key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c")),
	copyPass:  key.NewBinding(key.WithKeys("p")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	yes:       key.NewBinding(key.WithKeys("y", "enter")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
