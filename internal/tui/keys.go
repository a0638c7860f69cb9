package tui

import "github.com/charmbracelet/bubbles/key"

// CallsKeyMap is the key bindings of the call list.
type CallsKeyMap struct {
	PrevPage  key.Binding
	NextPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	Bigger    key.Binding
	Smaller   key.Binding
	Open      key.Binding
	Quit      key.Binding
}

// DefaultCallsKeyMap returns the standard call list bindings.
func DefaultCallsKeyMap() CallsKeyMap {
	return CallsKeyMap{
		PrevPage:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		NextPage:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		FirstPage: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "first page")),
		LastPage:  key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last page")),
		Bigger:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more per page")),
		Smaller:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "fewer per page")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open call")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k CallsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.Bigger, k.Smaller, k.Open, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k CallsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevPage, k.NextPage, k.FirstPage, k.LastPage},
		{k.Bigger, k.Smaller, k.Open, k.Quit},
	}
}

// DetailKeyMap is the key bindings of the call detail screen.
type DetailKeyMap struct {
	Back  key.Binding
	Retry key.Binding
	Quit  key.Binding
}

// DefaultDetailKeyMap returns the standard detail bindings.
func DefaultDetailKeyMap() DetailKeyMap {
	return DetailKeyMap{
		Back:  key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Retry: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k DetailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Retry, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k DetailKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
