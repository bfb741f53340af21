package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the browser's keybindings.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Descend     key.Binding
	Ascend      key.Binding
	CycleSort   key.Binding
	ToggleFiles key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Descend: key.NewBinding(
			key.WithKeys("right", "enter"),
			key.WithHelp("→/enter", "open"),
		),
		Ascend: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "up a level"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		ToggleFiles: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle files"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
