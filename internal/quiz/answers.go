package quiz

import "sort"

// AnswerSet maps question ordinals to the selected category. The zero value
// is an empty set. An AnswerSet is never mutated in place; updates return a
// new set so Quiz values can be shared freely.
type AnswerSet struct {
	m map[int]Category
}

// AnswersFromLabels builds an answer set where labels[i] answers question i.
func AnswersFromLabels(labels []Category) AnswerSet {
	m := make(map[int]Category, len(labels))
	for i, c := range labels {
		m[i] = c
	}
	return AnswerSet{m: m}
}

// Get returns the category selected for ordinal.
func (a AnswerSet) Get(ordinal int) (Category, bool) {
	c, ok := a.m[ordinal]
	return c, ok
}

// Has reports whether ordinal has a recorded answer.
func (a AnswerSet) Has(ordinal int) bool {
	_, ok := a.m[ordinal]
	return ok
}

// Len returns the number of answered questions.
func (a AnswerSet) Len() int {
	return len(a.m)
}

// Ordinals returns the answered ordinals in ascending order.
func (a AnswerSet) Ordinals() []int {
	out := make([]int, 0, len(a.m))
	for o := range a.m {
		out = append(out, o)
	}
	sort.Ints(out)
	return out
}

// Labels returns the selected categories ordered by question ordinal.
func (a AnswerSet) Labels() []Category {
	ords := a.Ordinals()
	out := make([]Category, len(ords))
	for i, o := range ords {
		out[i] = a.m[o]
	}
	return out
}

// with returns a copy of a with ordinal set to c.
func (a AnswerSet) with(ordinal int, c Category) AnswerSet {
	m := make(map[int]Category, len(a.m)+1)
	for k, v := range a.m {
		m[k] = v
	}
	m[ordinal] = c
	return AnswerSet{m: m}
}
