package quiz

import (
	"context"
	"errors"
	"strconv"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prakriti/internal/attempt"
	qz "github.com/abhisek/prakriti/internal/quiz"
	"github.com/abhisek/prakriti/internal/render"
	"github.com/abhisek/prakriti/internal/router"
	"github.com/abhisek/prakriti/internal/screen"
	"github.com/abhisek/prakriti/internal/ui/components"
	"github.com/abhisek/prakriti/internal/ui/layout"
)

// saveTimeout bounds a single attempt write.
const saveTimeout = 5 * time.Second

// QuizScreen runs one quiz from the first question through the results
// panel.
type QuizScreen struct {
	session  *qz.Session
	recorder *attempt.Recorder
	history  func() screen.Screen
	keys     KeyMap
	now      func() time.Time

	options components.OptionList
	// chosen remembers the option index picked per ordinal, since two
	// options may share a category.
	chosen map[int]int
	prompt string

	started    time.Time
	generation int
	saveStatus string
	saveErr    bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over questions. recorder may be nil, in which
// case results are not saved. history, when non-nil, builds the screen
// shown from the results panel.
func New(questions []qz.Question, recorder *attempt.Recorder, history func() screen.Screen) (*QuizScreen, error) {
	s, err := qz.NewSession(questions)
	if err != nil {
		return nil, err
	}
	q := &QuizScreen{
		session:  s,
		recorder: recorder,
		history:  history,
		keys:     DefaultKeyMap,
		now:      time.Now,
		chosen:   make(map[int]int),
	}
	q.started = q.now()
	q.syncOptions()
	return q, nil
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return "Dosha Quiz"
}

// Session exposes the underlying quiz session.
func (q *QuizScreen) Session() *qz.Session {
	return q.session
}

// Frame returns the current render projection.
func (q *QuizScreen) Frame() render.Frame {
	return render.Project(q.session.Quiz())
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	f := q.Frame()
	if f.ShowResults {
		hints := []layout.KeyHint{hint(q.keys.Retake)}
		if q.history != nil {
			hints = append(hints, hint(q.keys.History))
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		hint(q.keys.Choose),
	}
	if !f.PreviousDisabled {
		hints = append(hints, hint(q.keys.Previous))
	}
	if f.ShowSubmit {
		hints = append(hints, layout.KeyHint{Key: "→/s", Description: "Submit"})
	} else {
		hints = append(hints, hint(q.keys.Next))
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptSavedMsg:
		if msg.Generation != q.generation {
			return q, nil
		}
		if msg.Err != nil {
			q.saveStatus = "Could not save this result."
			q.saveErr = true
		} else {
			q.saveStatus = "Result saved."
			q.saveErr = false
		}
		return q, nil

	case tea.KeyPressMsg:
		if _, ok := q.session.Result(); ok {
			return q.updateResults(msg)
		}
		return q.updateQuestion(msg)
	}
	return q, nil
}

func (q *QuizScreen) updateQuestion(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, q.keys.Up), key.Matches(msg, q.keys.Down):
		q.options, _ = q.options.Update(msg)

	case key.Matches(msg, q.keys.Choose):
		idx := q.options.Cursor
		if n, err := strconv.Atoi(msg.String()); err == nil {
			idx = n - 1
		}
		q.choose(idx)

	case key.Matches(msg, q.keys.Previous):
		if err := q.session.Previous(); err == nil {
			q.prompt = ""
			q.syncOptions()
		}

	case key.Matches(msg, q.keys.Next):
		if q.session.Quiz().AtLast() {
			return q, q.submit()
		}
		q.handle(q.session.Next())

	case key.Matches(msg, q.keys.Submit):
		if q.session.Quiz().AtLast() {
			return q, q.submit()
		}
	}
	return q, nil
}

func (q *QuizScreen) updateResults(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, q.keys.Retake):
		if err := q.session.Retake(); err == nil {
			q.generation++
			q.chosen = make(map[int]int)
			q.prompt = ""
			q.saveStatus = ""
			q.saveErr = false
			q.started = q.now()
			q.syncOptions()
		}
	case key.Matches(msg, q.keys.History):
		if q.history != nil {
			next := q.history()
			return q, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: next}
			}
		}
	}
	return q, nil
}

func (q *QuizScreen) choose(idx int) {
	cur, ok := q.session.Current()
	if !ok {
		return
	}
	if err := q.session.SelectOption(idx); err != nil {
		return
	}
	q.chosen[cur.Ordinal] = idx
	q.options.Cursor = idx
	q.options = q.options.Choose()
	q.prompt = ""
}

func (q *QuizScreen) submit() tea.Cmd {
	if !q.handle(q.session.Submit()) {
		return nil
	}
	if q.recorder == nil {
		return nil
	}

	snapshot := q.session.Quiz()
	elapsed := q.now().Sub(q.started)
	gen := q.generation
	rec := q.recorder
	q.saveStatus = "Saving..."
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		id, err := rec.Record(ctx, snapshot, elapsed)
		return attemptSavedMsg{Generation: gen, ID: id, Err: err}
	}
}

// handle applies the result of a navigation event and reports whether it
// succeeded.
func (q *QuizScreen) handle(err error) bool {
	switch {
	case err == nil:
		q.prompt = ""
		q.syncOptions()
		return true
	case errors.Is(err, qz.ErrUnanswered):
		q.prompt = render.ValidationPrompt
	}
	return false
}

// syncOptions rebuilds the option list for the visible question.
func (q *QuizScreen) syncOptions() {
	cur, ok := q.session.Current()
	if !ok {
		return
	}
	labels := make([]string, len(cur.Options))
	for i, o := range cur.Options {
		labels[i] = o.Text
	}
	chosen := -1
	if idx, ok := q.chosen[cur.Ordinal]; ok {
		chosen = idx
	} else if c, ok := q.session.Quiz().Answers.Get(cur.Ordinal); ok {
		chosen = cur.OptionFor(c)
	}
	q.options = components.NewOptionList(cur.Prompt, labels, chosen)
}
