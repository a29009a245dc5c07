package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prakriti/internal/quiz"
	"github.com/abhisek/prakriti/internal/router"
	"github.com/abhisek/prakriti/internal/screen"
	"github.com/abhisek/prakriti/internal/store"
	"github.com/abhisek/prakriti/internal/ui/layout"
	"github.com/abhisek/prakriti/internal/ui/theme"
)

// pageSize is how many attempts the screen loads.
const pageSize = 50

type historyLoadedMsg struct {
	Attempts []store.AttemptRecord
	Stats    store.AttemptStats
	Err      error
}

// HistoryScreen lists saved quiz attempts, newest first.
type HistoryScreen struct {
	repo     store.AttemptRepo
	keys     KeyMap
	attempts []store.AttemptRecord
	stats    store.AttemptStats
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.AttemptRepo) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		keys:     DefaultKeyMap,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{}
		}
		ctx := context.Background()

		attempts, err := repo.QueryAttempts(ctx, store.QueryOpts{Limit: pageSize})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		stats, err := repo.Stats(ctx)
		if err != nil {
			return historyLoadedMsg{Attempts: attempts}
		}
		return historyLoadedMsg{Attempts: attempts, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		hint(s.keys.Toggle),
		hint(s.keys.Up),
		hint(s.keys.Back),
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, s.keys.Back):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, s.keys.Up):
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case key.Matches(msg, s.keys.Down):
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case key.Matches(msg, s.keys.Toggle):
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Take the quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderSummary()))
	b.WriteString("\n\n")

	for i, a := range s.attempts {
		dateStr := a.Timestamp.Local().Format("Jan 02, 2006 15:04")
		secs := a.DurationMs / 1000
		durationStr := fmt.Sprintf("%d:%02d", secs/60, secs%60)

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		dominant := dominantName(a.Dominant)
		line := fmt.Sprintf("%s%s  %s  %-8s  V %3d%%  P %3d%%  K %3d%%",
			prefix, dateStr, durationStr, dominant, a.VataPct, a.PittaPct, a.KaphaPct)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
					Render("    Answers: "+strings.Join(quiz.Letters(a.Answers), " "))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderSummary() string {
	st := s.stats
	if st.Total == 0 {
		return ""
	}
	parts := []string{fmt.Sprintf("%d attempts", st.Total)}
	for _, d := range []string{"vata", "pitta", "kapha", "balanced"} {
		if n := st.ByDominant[d]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", dominantName(d), n))
		}
	}
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(strings.Join(parts, "  ·  "))
}

func dominantName(s string) string {
	d, err := quiz.ParseDominant(s)
	if err != nil {
		return s
	}
	return d.DisplayName()
}
