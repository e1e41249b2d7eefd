package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	signup  key.Binding
	logout  key.Binding
	copyID  key.Binding
	quitKey key.Binding
}

var keys = keyMap{
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	signup:  key.NewBinding(key.WithKeys("ctrl+n")),
	logout:  key.NewBinding(key.WithKeys("l")),
	copyID:  key.NewBinding(key.WithKeys("c")),
	quitKey: key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
