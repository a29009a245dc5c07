package quiz

// attemptSavedMsg reports the outcome of persisting a submitted quiz.
type attemptSavedMsg struct {
	// Generation ties the message to the attempt that produced it, so a
	// late save does not overwrite the status of a retaken quiz.
	Generation int
	ID         string
	Err        error
}
