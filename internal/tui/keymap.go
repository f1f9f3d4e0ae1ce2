package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings shared across screens.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Hint    key.Binding
	Retry   key.Binding
	Menu    key.Binding
	Profile key.Binding
	Quit    key.Binding
}

var Keys = KeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Select:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "slide tile")),
	Hint:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "hint")),
	Retry:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry report")),
	Menu:    key.NewBinding(key.WithKeys("m", "esc"), key.WithHelp("m", "menu")),
	Profile: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
