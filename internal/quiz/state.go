package quiz

// State is the navigation state of a quiz. It is one of AtQuestion or
// AtResults.
type State interface {
	isState()
}

// AtQuestion means question Index is on screen.
type AtQuestion struct {
	Index int
}

// AtResults means the quiz was submitted and Result is on screen.
type AtResults struct {
	Result Result
}

func (AtQuestion) isState() {}
func (AtResults) isState()  {}

// Event is an input to Transition. It is one of SelectAnswer, Next,
// Previous, Submit or Retake.
type Event interface {
	isEvent()
}

// SelectAnswer records Category as the answer to question Ordinal,
// replacing any earlier choice.
type SelectAnswer struct {
	Ordinal  int
	Category Category
}

// Next advances to the following question.
type Next struct{}

// Previous returns to the preceding question.
type Previous struct{}

// Submit scores the quiz from the last question.
type Submit struct{}

// Retake clears all answers and returns to the first question.
type Retake struct{}

func (SelectAnswer) isEvent() {}
func (Next) isEvent()         {}
func (Previous) isEvent()     {}
func (Submit) isEvent()       {}
func (Retake) isEvent()       {}
