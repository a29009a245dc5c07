package quiz

import "fmt"

// Quiz is the complete navigation state of one quiz run. Quiz values are
// immutable: Transition returns a new value and leaves its input untouched.
type Quiz struct {
	// Total is the number of questions, fixed when the quiz starts.
	Total int

	// Answers holds at most one selected category per question.
	Answers AnswerSet

	// State is AtQuestion or AtResults.
	State State
}

// New returns a quiz with total questions positioned at the first one.
func New(total int) (Quiz, error) {
	if total < 1 {
		return Quiz{}, ErrNoQuestions
	}
	return Quiz{
		Total: total,
		State: AtQuestion{Index: 0},
	}, nil
}

// Cursor returns the index of the visible question, or Total once the
// results are showing.
func (q Quiz) Cursor() int {
	if s, ok := q.State.(AtQuestion); ok {
		return s.Index
	}
	return q.Total
}

// AtLast reports whether the last question is on screen. Submit replaces
// Next as the forward control there.
func (q Quiz) AtLast() bool {
	s, ok := q.State.(AtQuestion)
	return ok && s.Index == q.Total-1
}

// Result returns the scored result once the quiz has been submitted.
func (q Quiz) Result() (Result, bool) {
	if s, ok := q.State.(AtResults); ok {
		return s.Result, true
	}
	return Result{}, false
}

// Transition applies ev to q. A rejected event returns q unchanged together
// with an error wrapping one of the package's sentinel errors.
func Transition(q Quiz, ev Event) (Quiz, error) {
	switch ev := ev.(type) {
	case SelectAnswer:
		return selectAnswer(q, ev)
	case Next:
		return next(q)
	case Previous:
		return previous(q), nil
	case Submit:
		return submit(q)
	case Retake:
		return retake(q)
	}
	return q, fmt.Errorf("%w: unsupported event %T", ErrInvalidTransition, ev)
}

func selectAnswer(q Quiz, ev SelectAnswer) (Quiz, error) {
	cur, ok := q.State.(AtQuestion)
	if !ok {
		return q, fmt.Errorf("%w: select answer while showing results", ErrInvalidTransition)
	}
	if ev.Ordinal < 0 || ev.Ordinal >= q.Total {
		return q, fmt.Errorf("%w: ordinal %d", ErrUnknownQuestion, ev.Ordinal)
	}
	// Answers grow as the user moves forward; questions beyond the cursor
	// are not reachable yet.
	if ev.Ordinal > cur.Index {
		return q, fmt.Errorf("%w: question %d is ahead of cursor %d", ErrInvalidTransition, ev.Ordinal, cur.Index)
	}
	if !ev.Category.Valid() {
		return q, fmt.Errorf("%w: %q", ErrUnknownCategory, ev.Category)
	}
	q.Answers = q.Answers.with(ev.Ordinal, ev.Category)
	return q, nil
}

func next(q Quiz) (Quiz, error) {
	cur, ok := q.State.(AtQuestion)
	if !ok {
		return q, fmt.Errorf("%w: next while showing results", ErrInvalidTransition)
	}
	if cur.Index == q.Total-1 {
		return q, fmt.Errorf("%w: next at last question, use submit", ErrInvalidTransition)
	}
	if !q.Answers.Has(cur.Index) {
		return q, ErrUnanswered
	}
	q.State = AtQuestion{Index: cur.Index + 1}
	return q, nil
}

// previous is a no-op at the first question and on the results panel.
func previous(q Quiz) Quiz {
	cur, ok := q.State.(AtQuestion)
	if !ok || cur.Index == 0 {
		return q
	}
	q.State = AtQuestion{Index: cur.Index - 1}
	return q
}

func submit(q Quiz) (Quiz, error) {
	if !q.AtLast() {
		return q, fmt.Errorf("%w: submit is only available at the last question", ErrInvalidTransition)
	}
	if !q.Answers.Has(q.Total - 1) {
		return q, ErrUnanswered
	}
	q.State = AtResults{Result: Score(q.Answers)}
	return q, nil
}

func retake(q Quiz) (Quiz, error) {
	if _, ok := q.State.(AtResults); !ok {
		return q, fmt.Errorf("%w: retake before submit", ErrInvalidTransition)
	}
	return Quiz{
		Total: q.Total,
		State: AtQuestion{Index: 0},
	}, nil
}

// Replay answers each question in order with labels and submits, the way a
// user clicking through would. It fails on the first rejected event.
func Replay(labels []Category) (Quiz, error) {
	q, err := New(len(labels))
	if err != nil {
		return Quiz{}, err
	}
	for i, c := range labels {
		if q, err = Transition(q, SelectAnswer{Ordinal: i, Category: c}); err != nil {
			return Quiz{}, err
		}
		ev := Event(Next{})
		if i == len(labels)-1 {
			ev = Submit{}
		}
		if q, err = Transition(q, ev); err != nil {
			return Quiz{}, err
		}
	}
	return q, nil
}
