package quiz

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/prakriti/internal/ui/layout"
)

// KeyMap defines the quiz screen bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Choose   key.Binding
	Previous key.Binding
	Next     key.Binding
	Submit   key.Binding
	Retake   key.Binding
	History  key.Binding
}

// DefaultKeyMap pairs arrow keys with vim-style letters.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter", "space", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("Enter", "Select"),
	),
	Previous: key.NewBinding(
		key.WithKeys("left", "h", "p"),
		key.WithHelp("←", "Prev"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l", "n", "tab"),
		key.WithHelp("→", "Next"),
	),
	Submit: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "Submit"),
	),
	Retake: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Retake"),
	),
	History: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "History"),
	),
}

func hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}
