package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	open      key.Binding
	remove    key.Binding
	paste     key.Binding
	reset     key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	open:      key.NewBinding(key.WithKeys("o")),
	remove:    key.NewBinding(key.WithKeys("d", "delete")),
	paste:     key.NewBinding(key.WithKeys("ctrl+v")),
	reset:     key.NewBinding(key.WithKeys("s")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
}
