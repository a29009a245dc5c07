package quiz

import (
	"errors"
	"testing"
)

func testQuestions() []Question {
	opts := []Option{
		{Text: "Dry", Category: CategoryVata},
		{Text: "Warm", Category: CategoryPitta},
		{Text: "Oily", Category: CategoryKapha},
	}
	return []Question{
		{ID: "q1", Prompt: "Skin?", Options: opts},
		{ID: "q2", Prompt: "Hair?", Options: opts},
		{ID: "q3", Prompt: "Sleep?", Options: opts},
	}
}

func TestNewSession(t *testing.T) {
	s, err := NewSession(testQuestions())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	for i, q := range s.Questions() {
		if q.Ordinal != i {
			t.Errorf("question %d ordinal = %d", i, q.Ordinal)
		}
	}
	cur, ok := s.Current()
	if !ok || cur.ID != "q1" {
		t.Errorf("current = %v, %v; want q1", cur, ok)
	}

	if _, err := NewSession(nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("NewSession(nil) error = %v, want ErrNoQuestions", err)
	}
}

func TestSession_FullRun(t *testing.T) {
	s, _ := NewSession(testQuestions())

	if err := s.Next(); !errors.Is(err, ErrUnanswered) {
		t.Fatalf("Next without answer: %v", err)
	}
	if s.Cursor() != 0 {
		t.Fatalf("cursor moved after rejected Next: %d", s.Cursor())
	}

	steps := []func() error{
		func() error { return s.SelectOption(0) },
		s.Next,
		func() error { return s.SelectAnswer(1, CategoryVata) },
		s.Next,
		func() error { return s.SelectOption(1) },
		s.Submit,
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	r, ok := s.Result()
	if !ok {
		t.Fatal("expected result")
	}
	if r.Dominant != DominantOf(CategoryVata) {
		t.Errorf("dominant = %q, want vata", r.Dominant)
	}
	if _, ok := s.Current(); ok {
		t.Error("expected no current question on results")
	}
	if s.Cursor() != 3 {
		t.Errorf("cursor = %d, want 3", s.Cursor())
	}

	if err := s.Retake(); err != nil {
		t.Fatalf("Retake: %v", err)
	}
	if s.Cursor() != 0 {
		t.Errorf("cursor after retake = %d", s.Cursor())
	}
	for i := range s.Questions() {
		if s.IsAnswered(i) {
			t.Errorf("question %d still answered after retake", i)
		}
	}
}

func TestSession_PreviousAtFirstIsNoop(t *testing.T) {
	s, _ := NewSession(testQuestions())
	if err := s.Previous(); err != nil {
		t.Fatalf("Previous: %v", err)
	}
	if s.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", s.Cursor())
	}
}

func TestSession_SelectOptionOutOfRange(t *testing.T) {
	s, _ := NewSession(testQuestions())
	if err := s.SelectOption(7); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("error = %v, want ErrUnknownQuestion", err)
	}
	if s.IsAnswered(0) {
		t.Error("rejected option recorded an answer")
	}
}

func TestQuestion_OptionFor(t *testing.T) {
	q := testQuestions()[0]
	if got := q.OptionFor(CategoryKapha); got != 2 {
		t.Errorf("OptionFor(kapha) = %d, want 2", got)
	}
	q.Options = q.Options[:1]
	if got := q.OptionFor(CategoryKapha); got != -1 {
		t.Errorf("OptionFor(kapha) = %d, want -1", got)
	}
}
