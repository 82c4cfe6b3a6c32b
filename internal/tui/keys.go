package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the history browser
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	GotoTop       key.Binding
	GotoBottom    key.Binding
	Jump          key.Binding
	ToggleVerbose key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the standard browser bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first entry"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last entry"),
		),
		Jump: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go back to entry"),
		),
		ToggleVerbose: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle verbose"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Jump, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.GotoTop, k.GotoBottom},
		{k.Jump, k.ToggleVerbose},
		{k.Help, k.Quit},
	}
}
