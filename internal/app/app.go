package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/prakriti/internal/logging"
	"github.com/abhisek/prakriti/internal/questionbank"
	"github.com/abhisek/prakriti/internal/router"
	"github.com/abhisek/prakriti/internal/screen"
	"github.com/abhisek/prakriti/internal/screens/home"
	"github.com/abhisek/prakriti/internal/screens/welcome"
	"github.com/abhisek/prakriti/internal/store"
	"github.com/abhisek/prakriti/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Bank *questionbank.Bank
	// AttemptRepo stores submitted quizzes; nil disables saving and history.
	AttemptRepo store.AttemptRepo
	Logger      *zap.Logger
	// SkipSplash starts directly on the home screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	status string
	logger *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the splash or home screen.
func newAppModel(opts Options) AppModel {
	logger := logging.OrNop(opts.Logger)
	homeFactory := func() screen.Screen {
		return home.New(opts.Bank, opts.AttemptRepo, logger)
	}

	var initial screen.Screen
	if opts.SkipSplash {
		initial = homeFactory()
	} else {
		initial = welcome.New(homeFactory)
	}

	return AppModel{
		router: router.New(initial),
		status: fmt.Sprintf("%d questions", len(opts.Bank.Questions)),
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Bank == nil {
		return fmt.Errorf("app: no question bank")
	}
	m := newAppModel(opts)
	m.logger.Info("tui started", zap.String("bank", opts.Bank.ID), zap.Bool("saving", opts.AttemptRepo != nil))

	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		m.logger.Error("tui exited with error", zap.Error(err))
		return err
	}
	m.logger.Info("tui exited")
	return nil
}
