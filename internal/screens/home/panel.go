package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prakriti/internal/quiz"
	"github.com/abhisek/prakriti/internal/ui/theme"
)

const titleFull = ` ╔═╗╦═╗╔═╗╦╔═╦═╗╦╔╦╗╦
 ╠═╝╠╦╝╠═╣╠╩╗╠╦╝║ ║ ║
 ╩  ╩╚═╩ ╩╩ ╩╩╚═╩ ╩ ╩`

const titleCompact = "P · R · A · K · R · I · T · I"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar shows the bank and the saved attempt summary.
func renderStatsBar(bankTitle string, questions, attempts int, last quiz.Dominant, cw int, compact bool) string {
	bankStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	countStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	lastText := dimStyle.Render("no result yet")
	if last != "" {
		lastText = lipgloss.NewStyle().
			Foreground(theme.DominantColor(last)).
			Bold(true).
			Render("last: " + last.DisplayName())
	}

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			bankStyle.Render(fmt.Sprintf("%dQ", questions)),
			countStyle.Render(fmt.Sprintf("◆%d", attempts)),
			lastText,
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			bankStyle.Render(fmt.Sprintf("%s · %d QUESTIONS", strings.ToUpper(bankTitle), questions)),
			countStyle.Render(fmt.Sprintf("◆ %d SAVED", attempts)),
			lastText,
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func renderError(msg string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Error).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ " + msg)
}

// renderEmblemBox renders the emblem centered at content width.
func renderEmblemBox(last quiz.Dominant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderEmblem(last))
}
