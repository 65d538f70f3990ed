package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the portfolio key bindings.
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Home        key.Binding
	Projects    key.Binding
	About       key.Binding
	NextSection key.Binding
	PrevCard    key.Binding
	NextCard    key.Binding
	Toggle      key.Binding
	Copy        key.Binding
	Menu        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "scroll up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "scroll down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("pgdn", "page down")),
		Top:         key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "back to top")),
		Bottom:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Home:        key.NewBinding(key.WithKeys("1", "h"), key.WithHelp("1/h", "home")),
		Projects:    key.NewBinding(key.WithKeys("2", "p"), key.WithHelp("2/p", "projects")),
		About:       key.NewBinding(key.WithKeys("3", "a"), key.WithHelp("3/a", "about")),
		NextSection: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevCard:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev project")),
		NextCard:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next project")),
		Toggle:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show code")),
		Copy:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
		Menu:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Home, k.Projects, k.About, k.Top, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Home, k.Projects, k.About, k.NextSection, k.Menu},
		{k.PrevCard, k.NextCard, k.Toggle, k.Copy},
		{k.Help, k.Quit},
	}
}
