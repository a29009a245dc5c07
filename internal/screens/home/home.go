package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/prakriti/internal/attempt"
	"github.com/abhisek/prakriti/internal/logging"
	"github.com/abhisek/prakriti/internal/questionbank"
	"github.com/abhisek/prakriti/internal/quiz"
	"github.com/abhisek/prakriti/internal/router"
	"github.com/abhisek/prakriti/internal/screen"
	"github.com/abhisek/prakriti/internal/screens/history"
	quizscreen "github.com/abhisek/prakriti/internal/screens/quiz"
	"github.com/abhisek/prakriti/internal/store"
	"github.com/abhisek/prakriti/internal/ui/components"
	"github.com/abhisek/prakriti/internal/ui/layout"
)

type statsLoadedMsg struct {
	Stats store.AttemptStats
	Last  quiz.Dominant
	Err   error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	bank   *questionbank.Bank
	repo   store.AttemptRepo
	logger *zap.Logger

	menu     components.Menu
	attempts int
	last     quiz.Dominant
	errMsg   string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. repo may be nil, which disables history
// and saving.
func New(bank *questionbank.Bank, repo store.AttemptRepo, logger *zap.Logger) *HomeScreen {
	h := &HomeScreen{
		bank:   bank,
		repo:   repo,
		logger: logging.OrNop(logger),
	}

	items := []components.MenuItem{
		{Label: "TAKE QUIZ", Action: h.startQuiz},
		{Label: "HISTORY", Action: h.openHistory, Disabled: repo == nil},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	repo := h.repo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := repo.Stats(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		msg := statsLoadedMsg{Stats: stats}
		recent, err := repo.QueryAttempts(ctx, store.QueryOpts{Limit: 1})
		if err == nil && len(recent) > 0 {
			if d, err := quiz.ParseDominant(recent[0].Dominant); err == nil {
				msg.Last = d
			}
		}
		return msg
	}
}

func (h *HomeScreen) startQuiz() tea.Cmd {
	var rec *attempt.Recorder
	var historyFactory func() screen.Screen
	if h.repo != nil {
		rec = attempt.NewRecorder(h.repo, h.bank.ID, h.logger)
		repo := h.repo
		historyFactory = func() screen.Screen { return history.New(repo) }
	}
	s, err := quizscreen.New(h.bank.Questions, rec, historyFactory)
	if err != nil {
		h.errMsg = err.Error()
		h.logger.Error("failed to start quiz", zap.Error(err))
		return nil
	}
	h.logger.Debug("quiz started", zap.String("bank", h.bank.ID), zap.Int("questions", len(h.bank.Questions)))
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) openHistory() tea.Cmd {
	repo := h.repo
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: history.New(repo)}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			h.logger.Warn("failed to load attempt stats", zap.Error(msg.Err))
			return h, nil
		}
		h.attempts = msg.Stats.Total
		h.last = msg.Last
		return h, nil

	case router.ResumedMsg:
		return h, h.loadStats()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer to estimate
	// the terminal height.
	termHeight := height + 8
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderEmblemBox(h.last, cw))
	}
	sections = append(sections, renderStatsBar(h.bank.Title, len(h.bank.Questions), h.attempts, h.last, cw, compact))
	if h.errMsg != "" {
		sections = append(sections, renderError(h.errMsg, cw))
	}

	sections = append(sections, h.menu.View(cw, compact))

	content := strings.Join(sections, "\n\n")
	return components.PanelFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
