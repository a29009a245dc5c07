package quiz

// Tally counts selections per category.
type Tally struct {
	Vata  int
	Pitta int
	Kapha int
}

// Of returns the count for c.
func (t Tally) Of(c Category) int {
	switch c {
	case CategoryVata:
		return t.Vata
	case CategoryPitta:
		return t.Pitta
	case CategoryKapha:
		return t.Kapha
	}
	return 0
}

// Total returns the number of counted answers.
func (t Tally) Total() int {
	return t.Vata + t.Pitta + t.Kapha
}

func (t *Tally) add(c Category) {
	switch c {
	case CategoryVata:
		t.Vata++
	case CategoryPitta:
		t.Pitta++
	case CategoryKapha:
		t.Kapha++
	}
}

// Percentages holds one rounded percentage per category. Each value is
// rounded on its own, so the three need not add up to 100.
type Percentages struct {
	Vata  int
	Pitta int
	Kapha int
}

// Of returns the percentage for c.
func (p Percentages) Of(c Category) int {
	switch c {
	case CategoryVata:
		return p.Vata
	case CategoryPitta:
		return p.Pitta
	case CategoryKapha:
		return p.Kapha
	}
	return 0
}

// Result is the outcome of scoring an answer set.
type Result struct {
	Dominant    Dominant
	Tally       Tally
	Percentages Percentages
}

// Answered returns the number of answers the result was computed from.
func (r Result) Answered() int {
	return r.Tally.Total()
}

// TallyAnswers counts the answers per category.
func TallyAnswers(a AnswerSet) Tally {
	var t Tally
	for _, c := range a.m {
		t.add(c)
	}
	return t
}

// Score tallies the answers, converts the counts to percentages of the
// answered total and picks the dominant category. An empty answer set
// scores 0/0/0 and Balanced.
func Score(a AnswerSet) Result {
	t := TallyAnswers(a)
	total := t.Total()
	p := Percentages{
		Vata:  roundPercent(t.Vata, total),
		Pitta: roundPercent(t.Pitta, total),
		Kapha: roundPercent(t.Kapha, total),
	}
	return Result{
		Dominant:    dominant(p),
		Tally:       t,
		Percentages: p,
	}
}

// ScoreLabels scores labels as answers to consecutive questions.
func ScoreLabels(labels []Category) Result {
	return Score(AnswersFromLabels(labels))
}

// roundPercent returns 100*count/total rounded half up.
func roundPercent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*count + total) / (2 * total)
}

// dominant walks the categories in evaluation order; a later category takes
// the lead only with a strictly greater percentage, so two-way ties go to
// the earlier one. No lead at all, or a three-way tie, is Balanced.
func dominant(p Percentages) Dominant {
	if p.Vata == p.Pitta && p.Pitta == p.Kapha {
		return Balanced
	}
	leader := Balanced
	best := 0
	for _, c := range AllCategories() {
		if v := p.Of(c); v > best {
			leader = DominantOf(c)
			best = v
		}
	}
	return leader
}
