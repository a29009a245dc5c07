package quiz

import "fmt"

// Option is one mutually exclusive answer to a question.
type Option struct {
	Text     string
	Category Category
}

// Question is an immutable quiz question.
type Question struct {
	// Ordinal is the 0-based position of the question in the quiz.
	Ordinal int

	// ID is a stable identifier from the question bank.
	ID string

	Prompt  string
	Options []Option
}

// OptionFor returns the index of the first option tagged with c, or -1.
func (q Question) OptionFor(c Category) int {
	for i, o := range q.Options {
		if o.Category == c {
			return i
		}
	}
	return -1
}

// Renumber returns copies of qs with ordinals assigned by position.
func Renumber(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		opts := make([]Option, len(q.Options))
		copy(opts, q.Options)
		q.Options = opts
		q.Ordinal = i
		out[i] = q
	}
	return out
}

func (q Question) String() string {
	return fmt.Sprintf("Q%d %s", q.Ordinal+1, q.Prompt)
}
