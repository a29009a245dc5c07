package quiz

import "errors"

var (
	// ErrUnanswered is returned when Next or Submit is attempted before the
	// current question has an answer. It is the only user-facing validation
	// error; state is left unchanged.
	ErrUnanswered = errors.New("current question has no answer")

	// ErrInvalidTransition is returned for an event the current state does
	// not accept, such as Submit before the last question.
	ErrInvalidTransition = errors.New("invalid transition")

	ErrUnknownQuestion = errors.New("unknown question")
	ErrUnknownCategory = errors.New("unknown category")
	ErrNoQuestions     = errors.New("quiz has no questions")
)
