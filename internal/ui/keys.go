package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Focus    key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Back     key.Binding
	Quit     key.Binding
	Help     key.Binding
	Search   key.Binding
	Copy     key.Binding
	CopyJSON key.Binding
	Save     key.Binding
	Clear    key.Binding
	Delete   key.Binding
	Details  key.Binding
	Faster   key.Binding
	Slower   key.Binding
}

// ShortHelp returns keybindings to show in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Focus, k.Copy, k.Help, k.Quit}
}

// FullHelp returns keybindings to show in the full help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Focus},
		{k.NextTab, k.PrevTab, k.Back, k.Search},
		{k.Copy, k.CopyJSON, k.Save, k.Clear},
		{k.Delete, k.Details, k.Faster, k.Slower},
		{k.Help, k.Quit},
	}
}

var keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("Enter", "toggle"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "editor/options"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("right", "l", "ctrl+n"),
		key.WithHelp("→", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("left", "h", "ctrl+p"),
		key.WithHelp("←", "previous tab"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	CopyJSON: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy as JSON"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save template"),
	),
	Clear: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear all"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Details: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "details"),
	),
	Faster: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "faster"),
	),
	Slower: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "slower"),
	),
}
