package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	CursorUp   key.Binding
	CursorDown key.Binding
	Select     key.Binding
	Quit       key.Binding
	Help       key.Binding
	CloseHelp  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		CursorUp: key.NewBinding(
			key.WithKeys("up", "k"),
		),
		CursorDown: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
		),
		CloseHelp: key.NewBinding(
			key.WithKeys("esc"),
		),
	}
}
