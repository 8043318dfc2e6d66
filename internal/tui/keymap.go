package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts for the closet view.
type KeyMap struct {
	// Era timeline
	PrevEra key.Binding
	NextEra key.Binding

	// Look navigation
	Up   key.Binding
	Down key.Binding

	// Actions
	Upload   key.Binding
	Style    key.Binding
	Purchase key.Binding
	Dismiss  key.Binding

	// Application
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevEra: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous era"),
		),
		NextEra: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next era"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous item"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next item"),
		),
		Upload: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "upload wardrobe photo"),
		),
		Style: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "get Hollywood styling"),
		),
		Purchase: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add to look"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
