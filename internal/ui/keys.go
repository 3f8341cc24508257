package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard shortcuts for the dashboard
type KeyMap struct {
	Down         key.Binding
	FollowUp     key.Binding
	NewRequest   key.Binding
	Preview      key.Binding
	Quit         key.Binding
	ToggleExpand key.Binding
	Up           key.Binding
}

// NewKeyMap creates the default key map
func NewKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		FollowUp: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "follow-up"),
		),
		NewRequest: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new request"),
		),
		Preview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "preview"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleExpand: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "expand"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
	}
}
