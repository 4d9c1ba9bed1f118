package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	newline key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	about   key.Binding
	toggle  key.Binding

	calm       key.Binding
	history    key.Binding
	historyAlt key.Binding
	copy       key.Binding
	logout     key.Binding
	info       key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left")),
	right:   key.NewBinding(key.WithKeys("right")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	newline: key.NewBinding(key.WithKeys("alt+enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q")),
	about:   key.NewBinding(key.WithKeys("v")),
	toggle:  key.NewBinding(key.WithKeys(" ", "s")),

	// chat keys stay clear of the textarea defaults (ctrl+a, ctrl+e, ctrl+k...)
	calm:    key.NewBinding(key.WithKeys("ctrl+b")),
	history: key.NewBinding(key.WithKeys("ctrl+o")),
	// ctrl+h is Backspace on terminals that send BS, so it only opens
	// history while the input is empty.
	historyAlt: key.NewBinding(key.WithKeys("ctrl+h")),
	copy:       key.NewBinding(key.WithKeys("ctrl+y")),
	logout:     key.NewBinding(key.WithKeys("ctrl+l")),
	info:       key.NewBinding(key.WithKeys("ctrl+g")),
}
