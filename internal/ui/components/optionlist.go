package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prakriti/internal/ui/theme"
)

// OptionList is a single-choice selector. Cursor moves with the arrow keys;
// Chosen is the recorded choice, or -1.
type OptionList struct {
	Prompt  string
	Options []string
	Cursor  int
	Chosen  int
}

// NewOptionList creates an option list. chosen is the previously recorded
// option or -1; the cursor starts on it.
func NewOptionList(prompt string, options []string, chosen int) OptionList {
	cursor := 0
	if chosen >= 0 && chosen < len(options) {
		cursor = chosen
	} else {
		chosen = -1
	}
	return OptionList{
		Prompt:  prompt,
		Options: options,
		Cursor:  cursor,
		Chosen:  chosen,
	}
}

// Update moves the cursor.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}
	return o, nil
}

// Choose records the option under the cursor.
func (o OptionList) Choose() OptionList {
	if o.Cursor >= 0 && o.Cursor < len(o.Options) {
		o.Chosen = o.Cursor
	}
	return o
}

// View renders the prompt and options. The chosen option carries a filled
// marker; the cursor row is highlighted.
func (o OptionList) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(o.Prompt) + "\n\n"

	for i, opt := range o.Options {
		pointer := "  "
		if i == o.Cursor {
			pointer = "▸ "
		}
		mark := "○"
		if i == o.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %d) %s", pointer, mark, i+1, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == o.Cursor:
			style = style.Foreground(theme.Primary).Bold(true)
		case i == o.Chosen:
			style = style.Foreground(theme.Secondary)
		}
		s += style.Render(line) + "\n"
	}
	return s
}
