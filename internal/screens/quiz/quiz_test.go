package quiz

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prakriti/internal/attempt"
	qz "github.com/abhisek/prakriti/internal/quiz"
	"github.com/abhisek/prakriti/internal/recommend"
	"github.com/abhisek/prakriti/internal/render"
	"github.com/abhisek/prakriti/internal/router"
	"github.com/abhisek/prakriti/internal/screen"
	"github.com/abhisek/prakriti/internal/store"
)

// mockAttemptRepo implements store.AttemptRepo for testing.
type mockAttemptRepo struct {
	store.AttemptRepo
	appended []store.AttemptEventData
	err      error
}

func (m *mockAttemptRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.appended = append(m.appended, data)
	return "attempt-1", nil
}

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return s.title }
func (s *stubScreen) Title() string                          { return s.title }

func testQuestions() []qz.Question {
	opts := func(prefix string) []qz.Option {
		return []qz.Option{
			{Text: prefix + " dry", Category: qz.CategoryVata},
			{Text: prefix + " warm", Category: qz.CategoryPitta},
			{Text: prefix + " steady", Category: qz.CategoryKapha},
		}
	}
	return []qz.Question{
		{ID: "q1", Prompt: "First?", Options: opts("first")},
		{ID: "q2", Prompt: "Second?", Options: opts("second")},
		{ID: "q3", Prompt: "Third?", Options: opts("third")},
	}
}

func newTestScreen(t *testing.T, repo *mockAttemptRepo) *QuizScreen {
	t.Helper()
	var rec *attempt.Recorder
	if repo != nil {
		rec = attempt.NewRecorder(repo, "test-bank", nil)
	}
	s, err := New(testQuestions(), rec, func() screen.Screen { return &stubScreen{title: "History"} })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func press(s *QuizScreen, msgs ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = s.Update(m)
	}
	return cmd
}

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

var (
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyRight = tea.KeyPressMsg{Code: tea.KeyRight}
	keyLeft  = tea.KeyPressMsg{Code: tea.KeyLeft}
)

func TestNextWithoutAnswerShowsPrompt(t *testing.T) {
	s := newTestScreen(t, nil)

	press(s, keyRight)

	if s.Session().Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", s.Session().Cursor())
	}
	if s.prompt != render.ValidationPrompt {
		t.Errorf("prompt = %q, want validation prompt", s.prompt)
	}
	if !strings.Contains(s.View(100, 40), render.ValidationPrompt) {
		t.Error("validation prompt should be rendered")
	}
}

func TestSelectClearsPromptAndAdvances(t *testing.T) {
	s := newTestScreen(t, nil)

	press(s, keyRight, keyDown, keyEnter)
	if s.prompt != "" {
		t.Errorf("prompt should clear after selecting, got %q", s.prompt)
	}
	if c, _ := s.Session().Quiz().Answers.Get(0); c != qz.CategoryPitta {
		t.Errorf("answer = %q, want pitta", c)
	}

	press(s, keyRight)
	if s.Session().Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", s.Session().Cursor())
	}
}

func TestNumberKeySelectsOption(t *testing.T) {
	s := newTestScreen(t, nil)

	press(s, keyRune('3'))

	if c, _ := s.Session().Quiz().Answers.Get(0); c != qz.CategoryKapha {
		t.Errorf("answer = %q, want kapha", c)
	}
	if s.options.Chosen != 2 {
		t.Errorf("chosen = %d, want 2", s.options.Chosen)
	}

	// Out of range digits are ignored.
	press(s, keyRune('9'))
	if c, _ := s.Session().Quiz().Answers.Get(0); c != qz.CategoryKapha {
		t.Errorf("answer changed to %q", c)
	}
}

func TestPreviousRestoresChoice(t *testing.T) {
	s := newTestScreen(t, nil)

	press(s, keyRune('2'), keyRight, keyLeft)

	if s.Session().Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", s.Session().Cursor())
	}
	if s.options.Chosen != 1 || s.options.Cursor != 1 {
		t.Errorf("chosen=%d cursor=%d, want 1/1", s.options.Chosen, s.options.Cursor)
	}

	// Previous at the first question is a no-op.
	press(s, keyLeft)
	if s.Session().Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", s.Session().Cursor())
	}
}

func TestSubmitPersistsAttempt(t *testing.T) {
	repo := &mockAttemptRepo{}
	s := newTestScreen(t, repo)

	press(s, keyRune('1'), keyRight, keyRune('1'), keyRight, keyRune('2'))
	if !s.Frame().ShowSubmit {
		t.Fatal("expected Submit at the last question")
	}

	cmd := press(s, keyRune('s'))
	if cmd == nil {
		t.Fatal("submit should return a save command")
	}
	r, ok := s.Session().Result()
	if !ok {
		t.Fatal("expected results after submit")
	}
	if r.Dominant != qz.DominantOf(qz.CategoryVata) {
		t.Errorf("dominant = %q, want vata", r.Dominant)
	}

	msg := cmd()
	saved, ok := msg.(attemptSavedMsg)
	if !ok {
		t.Fatalf("expected attemptSavedMsg, got %T", msg)
	}
	s.Update(saved)

	if len(repo.appended) != 1 {
		t.Fatalf("appended %d attempts, want 1", len(repo.appended))
	}
	got := repo.appended[0]
	if got.BankID != "test-bank" || got.VataPct != 67 || got.PittaPct != 33 || got.KaphaPct != 0 {
		t.Errorf("unexpected attempt data: %+v", got)
	}
	if s.saveStatus != "Result saved." {
		t.Errorf("saveStatus = %q", s.saveStatus)
	}

	view := s.View(100, 50)
	for _, want := range []string{"VATA", "67%", "33%", "Recommended for you"} {
		if !strings.Contains(view, want) {
			t.Errorf("results view missing %q", want)
		}
	}
}

func TestRightArrowAtLastSubmits(t *testing.T) {
	s := newTestScreen(t, nil)

	press(s, keyRune('1'), keyRight, keyRune('2'), keyRight, keyRune('3'))
	cmd := press(s, keyRight)

	if cmd != nil {
		t.Error("no save command expected without a recorder")
	}
	r, ok := s.Session().Result()
	if !ok {
		t.Fatal("expected results")
	}
	if r.Dominant != qz.Balanced {
		t.Errorf("dominant = %q, want balanced", r.Dominant)
	}
}

func TestSubmitWithoutAnswerBlocked(t *testing.T) {
	s := newTestScreen(t, nil)

	press(s, keyRune('1'), keyRight, keyRune('1'), keyRight, keyRune('s'))

	if _, ok := s.Session().Result(); ok {
		t.Fatal("submit should be blocked on an unanswered question")
	}
	if s.prompt != render.ValidationPrompt {
		t.Errorf("prompt = %q", s.prompt)
	}
}

func TestSaveErrorShown(t *testing.T) {
	s := newTestScreen(t, &mockAttemptRepo{err: errors.New("locked")})

	press(s, keyRune('1'), keyRight, keyRune('1'), keyRight, keyRune('1'))
	cmd := press(s, keyRune('s'))
	s.Update(cmd())

	if !s.saveErr {
		t.Error("expected save error flag")
	}
	if !strings.Contains(s.View(100, 50), "Could not save") {
		t.Error("save error should be rendered")
	}
}

func TestRetakeResets(t *testing.T) {
	s := newTestScreen(t, &mockAttemptRepo{})

	press(s, keyRune('1'), keyRight, keyRune('1'), keyRight, keyRune('1'))
	cmd := press(s, keyRune('s'))
	press(s, keyRune('r'))

	if _, ok := s.Session().Result(); ok {
		t.Fatal("retake should leave the results panel")
	}
	if s.Session().Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", s.Session().Cursor())
	}
	if s.Session().IsAnswered(0) {
		t.Error("answers should be cleared")
	}
	if s.options.Chosen != -1 {
		t.Errorf("chosen = %d, want -1", s.options.Chosen)
	}

	// The save from the previous attempt lands after the retake.
	s.Update(cmd())
	if s.saveStatus != "" {
		t.Errorf("stale save status applied: %q", s.saveStatus)
	}
}

func TestHistoryFromResults(t *testing.T) {
	s := newTestScreen(t, nil)

	press(s, keyRune('1'), keyRight, keyRune('1'), keyRight, keyRune('1'), keyRune('s'))
	cmd := press(s, keyRune('H'))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "History" {
		t.Errorf("replaced with %q", msg.Screen.Title())
	}
}

func TestKeyHints(t *testing.T) {
	s := newTestScreen(t, nil)

	hasHint := func(desc string) bool {
		for _, h := range s.KeyHints() {
			if h.Description == desc {
				return true
			}
		}
		return false
	}

	if hasHint("Prev") {
		t.Error("Prev hint should be hidden on the first question")
	}
	if !hasHint("Next") {
		t.Error("expected Next hint")
	}

	press(s, keyRune('1'), keyRight, keyRune('1'), keyRight)
	if !hasHint("Submit") || hasHint("Next") {
		t.Error("last question should offer Submit instead of Next")
	}

	press(s, keyRune('1'), keyRune('s'))
	if !hasHint("Retake") {
		t.Error("results should offer Retake")
	}
}

func TestNewRejectsEmptyBank(t *testing.T) {
	if _, err := New(nil, nil, nil); !errors.Is(err, qz.ErrNoQuestions) {
		t.Errorf("expected ErrNoQuestions, got %v", err)
	}
}

func TestResultsCompactDropsDescriptions(t *testing.T) {
	s := newTestScreen(t, nil)
	press(s, keyRune('1'), keyRight, keyRune('1'), keyRight, keyRune('1'), keyRune('s'))

	products := recommend.For(qz.DominantOf(qz.CategoryVata))
	name, desc := products[0].Name, products[0].Description

	compact := s.View(80, 20)
	if !strings.Contains(compact, name) {
		t.Errorf("compact view missing product %q", name)
	}
	if strings.Contains(compact, desc) {
		t.Errorf("compact view should omit %q", desc)
	}

	full := s.View(120, 50)
	if !strings.Contains(full, desc) {
		t.Errorf("full view missing %q", desc)
	}
}
