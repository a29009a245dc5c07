package quiz

import "fmt"

// Session pairs a question list with a Quiz and exposes the event surface
// used by the UI. It is not safe for concurrent use; all events arrive on
// the UI event loop.
type Session struct {
	questions []Question
	quiz      Quiz
}

// NewSession starts a quiz over questions. Ordinals are reassigned by
// position.
func NewSession(questions []Question) (*Session, error) {
	q, err := New(len(questions))
	if err != nil {
		return nil, err
	}
	return &Session{
		questions: Renumber(questions),
		quiz:      q,
	}, nil
}

// Questions returns the questions in ordinal order.
func (s *Session) Questions() []Question {
	return s.questions
}

// Quiz returns the current state value.
func (s *Session) Quiz() Quiz {
	return s.quiz
}

// Current returns the visible question, or false on the results panel.
func (s *Session) Current() (Question, bool) {
	st, ok := s.quiz.State.(AtQuestion)
	if !ok {
		return Question{}, false
	}
	return s.questions[st.Index], true
}

// Cursor returns the navigation cursor.
func (s *Session) Cursor() int {
	return s.quiz.Cursor()
}

// IsAnswered reports whether ordinal has a recorded answer.
func (s *Session) IsAnswered(ordinal int) bool {
	return s.quiz.Answers.Has(ordinal)
}

// Result returns the scored result; ok is false before submit.
func (s *Session) Result() (Result, bool) {
	return s.quiz.Result()
}

// SelectAnswer records c as the answer to question ordinal.
func (s *Session) SelectAnswer(ordinal int, c Category) error {
	return s.apply(SelectAnswer{Ordinal: ordinal, Category: c})
}

// SelectOption records option idx of the visible question.
func (s *Session) SelectOption(idx int) error {
	q, ok := s.Current()
	if !ok {
		return fmt.Errorf("%w: select option while showing results", ErrInvalidTransition)
	}
	if idx < 0 || idx >= len(q.Options) {
		return fmt.Errorf("%w: option %d of question %d", ErrUnknownQuestion, idx, q.Ordinal)
	}
	return s.SelectAnswer(q.Ordinal, q.Options[idx].Category)
}

// Next advances the cursor. It returns ErrUnanswered when the visible
// question has no answer.
func (s *Session) Next() error {
	return s.apply(Next{})
}

// Previous moves the cursor back; it is a no-op at the first question.
func (s *Session) Previous() error {
	return s.apply(Previous{})
}

// Submit scores the quiz from the last question.
func (s *Session) Submit() error {
	return s.apply(Submit{})
}

// Retake clears all answers and returns to the first question.
func (s *Session) Retake() error {
	return s.apply(Retake{})
}

func (s *Session) apply(ev Event) error {
	q, err := Transition(s.quiz, ev)
	if err != nil {
		return err
	}
	s.quiz = q
	return nil
}
