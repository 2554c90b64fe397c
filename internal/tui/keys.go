package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the terminal surface's key bindings.
type KeyMap struct {
	Query      key.Binding
	CycleField key.Binding
	Columns    key.Binding
	Chart      key.Binding
	CopyRow    key.Binding
	Save       key.Binding
	Help       key.Binding
	Quit       key.Binding

	// Picker bindings
	Toggle key.Binding
	Apply  key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Query: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		CycleField: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "search field"),
		),
		Columns: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "columns"),
		),
		Chart: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "chart"),
		),
		CopyRow: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy row"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save prefs"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Query, k.CycleField, k.Columns, k.Chart, k.Save, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Query, k.CycleField, k.Columns, k.Chart},
		{k.CopyRow, k.Save, k.Help, k.Quit},
	}
}
