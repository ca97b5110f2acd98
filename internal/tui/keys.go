package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the screen's key bindings.
type keyMap struct {
	Quit      key.Binding
	Submit    key.Binding
	Open      key.Binding
	Up        key.Binding
	Down      key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view on PyPI"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "switch focus"),
		),
	}
}

// focusKeys adapts the key map to the focused widget for the help footer.
type focusKeys struct {
	keyMap
	tableFocused bool
}

func (k focusKeys) ShortHelp() []key.Binding {
	if k.tableFocused {
		return []key.Binding{k.Open, k.Up, k.Down, k.NextFocus, k.Quit}
	}
	return []key.Binding{k.Submit, k.NextFocus, k.Quit}
}

func (k focusKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Open},
		{k.Up, k.Down},
		{k.NextFocus, k.PrevFocus, k.Quit},
	}
}
