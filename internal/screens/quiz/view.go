package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prakriti/internal/render"
	"github.com/abhisek/prakriti/internal/ui/components"
	"github.com/abhisek/prakriti/internal/ui/layout"
	"github.com/abhisek/prakriti/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	f := q.Frame()
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderProgress(f, cw))

	if f.ShowResults {
		// height excludes the app header and footer.
		compact := layout.IsCompactWidth(width) ||
			layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight)
		sections = append(sections, q.renderResults(f, cw, compact))
	} else {
		sections = append(sections, q.renderQuestion(f, cw))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderProgress(f render.Frame, cw int) string {
	bar := components.NewProgressBar("", f.Progress, false, cw)
	bar.Caption = fmt.Sprintf("%d of %d", f.Current, f.Total)
	return bar.View()
}

func (q *QuizScreen) renderQuestion(f render.Frame, cw int) string {
	heading := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d", f.Current))

	body := heading + "\n\n" + q.options.View()
	card := components.Card(body, cw)

	prev := components.NewButton("Previous", "←")
	prev.Disabled = f.PreviousDisabled

	var advance components.Button
	if f.ShowSubmit {
		advance = components.NewButton("Submit", "s")
	} else {
		advance = components.NewButton("Next", "→")
	}
	advance.Active = f.HasSelected

	var parts []string
	parts = append(parts, card)
	if f.ShowPrevious {
		parts = append(parts, components.ButtonRow(prev, advance))
	} else {
		parts = append(parts, advance.View())
	}
	if q.prompt != "" {
		parts = append(parts, theme.Warning.Render(q.prompt))
	}
	return strings.Join(parts, "\n\n")
}

// renderResults draws the outcome. Compact mode drops the descriptions so
// the result fits a small terminal.
func (q *QuizScreen) renderResults(f render.Frame, cw int, compact bool) string {
	accent := theme.DominantColor(f.Dominant)

	title := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Your dominant dosha")
	name := lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Render(strings.ToUpper(f.DominantName))

	var meters []string
	for _, m := range f.Meters {
		bar := components.NewProgressBar(fmt.Sprintf("%-6s", m.Label), float64(m.Percent)/100, false, cw-8)
		bar.Color = theme.CategoryColor(m.Category)
		bar.Caption = fmt.Sprintf("%3d%%", m.Percent)
		meters = append(meters, bar.View())
	}

	body := title + "\n" + name + "\n\n" + strings.Join(meters, "\n")
	if !compact {
		body += "\n\n" + lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(cw-8).
			Render(f.Description)
	}
	summary := components.Card(body, cw)

	var recs []string
	recs = append(recs, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Recommended for you"))
	for _, p := range f.Recommendations {
		line := lipgloss.NewStyle().Foreground(accent).Bold(true).Render("• " + p.Name)
		if !compact {
			line += "\n  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Description)
		}
		recs = append(recs, line)
	}
	cards := components.Card(strings.Join(recs, "\n"), cw)

	parts := []string{summary, cards}
	if q.saveStatus != "" {
		style := theme.Hint
		if q.saveErr {
			style = theme.Warning
		}
		parts = append(parts, style.Render(q.saveStatus))
	}
	return strings.Join(parts, "\n")
}
