// Package problem implements the engine's value-returned diagnostics.
//
// Every expected failure in this engine — a denied subtype relation, an
// unregistered conversion, an ambiguous overload — is reported as a
// *Problem value*, never as a Go error or a panic. Panics are reserved for
// programmer mistakes (see the package doc on construction below); anything
// a caller might legitimately trigger through normal use of the engine
// comes back as a Problem, or nil.
//
// Problem is deliberately a much smaller, single-purpose cousin of a
// general diagnostics Issue: it carries only what spec callers need to
// compose their own diagnostics — a [Kind], a message, nested sub-problems,
// and the types involved — with no source spans, severities, or codes,
// because this engine has no notion of a "more severe" type problem and no
// source text of its own to point into.
package problem

// TypeRef is a minimal, host-facing reference to a type involved in a
// Problem. It carries only what a caller needs to mention the type in its
// own diagnostics; it is not the engine's internal type representation.
type TypeRef struct {
	ID   string
	Name string
}

// Problem is an immutable, structured description of an expected failure.
//
// Problem is immutable after construction; all fields are unexported. The
// only valid construction path is [New] followed by the builder's With*
// methods and a final [Builder.Build] call. Constructing a Problem via a
// struct literal bypasses the builder's validity checks.
type Problem struct {
	kind          Kind
	message       string
	nested        []Problem
	involvedTypes []TypeRef
}

// Kind returns the problem's taxonomy kind.
func (p Problem) Kind() Kind {
	return p.kind
}

// Message returns the human-readable description. Messages may name the
// types they concern; [Problem.InvolvedTypes] carries their identifiers in
// structured form.
func (p Problem) Message() string {
	return p.message
}

// Nested returns a defensive copy of the problem's nested sub-problems.
//
// Nested problems are whatever sub-problems the builder attached with
// [Builder.WithNested]; the engine's relation services attach none.
func (p Problem) Nested() []Problem {
	if len(p.nested) == 0 {
		return nil
	}
	cp := make([]Problem, len(p.nested))
	copy(cp, p.nested)
	return cp
}

// InvolvedTypes returns a defensive copy of the types this problem concerns.
func (p Problem) InvolvedTypes() []TypeRef {
	if len(p.involvedTypes) == 0 {
		return nil
	}
	cp := make([]TypeRef, len(p.involvedTypes))
	copy(cp, p.involvedTypes)
	return cp
}

// IsZero reports whether p is the unconstructed zero value.
func (p Problem) IsZero() bool {
	return p.message == "" && len(p.nested) == 0 && len(p.involvedTypes) == 0 && p.kind == KindConflict
}
