// Package render projects quiz state onto the fields a view displays. It
// holds no state of its own and has no terminal dependency.
package render

import (
	"github.com/abhisek/prakriti/internal/quiz"
	"github.com/abhisek/prakriti/internal/recommend"
)

// ValidationPrompt is shown when the user tries to move on without
// answering.
const ValidationPrompt = "Please select an answer before proceeding."

// Meter is one per-category result bar.
type Meter struct {
	Category quiz.Category
	Label    string
	Percent  int
}

// Frame is everything a view needs to paint one quiz state.
type Frame struct {
	// ShowResults selects the results panel; otherwise Question is visible.
	ShowResults bool
	Question    int

	ShowPrevious     bool
	PreviousDisabled bool
	ShowNext         bool
	ShowSubmit       bool

	// Progress is cursor/total in [0, 1).
	Progress float64
	Current  int // 1-based, for "current of total"
	Total    int

	// Selected is the recorded answer for the visible question, if any.
	Selected    quiz.Category
	HasSelected bool

	// Results panel only.
	Meters          []Meter
	Dominant        quiz.Dominant
	DominantName    string
	Description     string
	Recommendations []recommend.Product
}

// Project computes the frame for q.
func Project(q quiz.Quiz) Frame {
	f := Frame{Total: q.Total}

	if r, ok := q.Result(); ok {
		// The progress bar and counter keep their last question values
		// while results are showing.
		last := q.Total - 1
		f.ShowResults = true
		f.Question = -1
		f.Progress = progress(last, q.Total)
		f.Current = last + 1
		f.Meters = meters(r.Percentages)
		f.Dominant = r.Dominant
		f.DominantName = r.Dominant.DisplayName()
		f.Description = recommend.Describe(r.Dominant)
		f.Recommendations = recommend.For(r.Dominant)
		return f
	}

	cursor := q.Cursor()
	f.Question = cursor
	f.ShowPrevious = true
	f.PreviousDisabled = cursor == 0
	f.ShowSubmit = q.AtLast()
	f.ShowNext = !f.ShowSubmit
	f.Progress = progress(cursor, q.Total)
	f.Current = cursor + 1
	f.Selected, f.HasSelected = q.Answers.Get(cursor)
	return f
}

func progress(cursor, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(cursor) / float64(total)
}

func meters(p quiz.Percentages) []Meter {
	cats := quiz.AllCategories()
	out := make([]Meter, len(cats))
	for i, c := range cats {
		out[i] = Meter{
			Category: c,
			Label:    c.DisplayName(),
			Percent:  p.Of(c),
		}
	}
	return out
}
