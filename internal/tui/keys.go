package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Spin    key.Binding
	Open    key.Binding
	Dismiss key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Spin: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "spin"),
	),
	Open: key.NewBinding(
		key.WithKeys("o", "enter"),
		key.WithHelp("o", "go to website"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("s", "esc"),
		key.WithHelp("s", "spin again"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Spin, k.Open, k.Dismiss, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Spin, k.Open, k.Dismiss},
		{k.Help, k.Quit},
	}
}
