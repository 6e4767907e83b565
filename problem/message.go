package problem

// Message is a rendered diagnostic produced by a validation rule
// (spec.md §4.J). Unlike Problem, a Message is not a taxonomy value — it
// is host-facing text a validator collects and reports, optionally
// traced back to the Problem that produced it so a caller can still
// inspect Kind/InvolvedTypes without re-deriving them from the text.
type Message struct {
	Text   string
	Source *Problem
}

// NewMessage wraps plain text with no originating Problem.
func NewMessage(text string) Message {
	return Message{Text: text}
}

// FromProblem renders p through messageFn and traces the result back to
// p, the shape validate.Constraints.EnsureNodeIsAssignable uses to turn
// an AssignabilityProblem into host-facing text.
func FromProblem(p *Problem, messageFn func(*Problem) string) Message {
	return Message{Text: messageFn(p), Source: p}
}
