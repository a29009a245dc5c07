package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prakriti/internal/ui/theme"
)

// Button is a navigation control with an optional key hint.
type Button struct {
	Label    string
	Key      string
	Active   bool
	Disabled bool
}

// NewButton creates a new button.
func NewButton(label, key string) Button {
	return Button{Label: label, Key: key}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label = "[" + b.Key + "] " + label
	}
	switch {
	case b.Disabled:
		return theme.ButtonDisabled.Render(label)
	case b.Active:
		return theme.ButtonActive.Render(label)
	default:
		return theme.ButtonInactive.Render(label)
	}
}

// ButtonRow lays buttons out left to right with a gap between them.
func ButtonRow(buttons ...Button) string {
	views := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			views = append(views, strings.Repeat(" ", 2))
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
