package components

import "charm.land/bubbles/v2/key"

// KeyMap holds the bindings shared by every pulse screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	Select  key.Binding
	Next    key.Binding
	Back    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// Keys is the default key map.
var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("space", " "),
		key.WithHelp("space", "choose"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Next: key.NewBinding(
		key.WithKeys("enter", "right", "l"),
		key.WithHelp("enter", "next"),
	),
	Back: key.NewBinding(
		key.WithKeys("left", "h", "b"),
		key.WithHelp("←/b", "back"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

// DigitIndex maps "1".."9" to a 0-based option index. Other keys return -1.
func DigitIndex(k string) int {
	if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
		return int(k[0] - '1')
	}
	return -1
}
