package problem

import "fmt"

// Builder provides fluent construction of [Problem] values.
//
// Builder is the only valid construction path for Problem in production
// code; direct struct-literal construction bypasses the validity checks
// below.
//
// Example:
//
//	p := problem.New(problem.SubTypeProblem, "int is not a subtype of string").
//	    WithInvolvedType(TypeRef{ID: intID, Name: "int"}).
//	    WithInvolvedType(TypeRef{ID: stringID, Name: "string"}).
//	    Build()
type Builder struct {
	problem Problem
}

// New starts building a Problem with its required fields.
//
// New panics if message is empty. This catches a programmer mistake (an
// empty Problem message carries no information a host could act on) at
// construction time rather than deferring it to rendering.
func New(kind Kind, message string) *Builder {
	if message == "" {
		panic("problem.New: empty message")
	}
	return &Builder{problem: Problem{kind: kind, message: message}}
}

// Newf is a convenience for New(kind, fmt.Sprintf(format, args...)).
func Newf(kind Kind, format string, args ...any) *Builder {
	return New(kind, fmt.Sprintf(format, args...))
}

// WithInvolvedType appends a type reference to the problem.
func (b *Builder) WithInvolvedType(ref TypeRef) *Builder {
	b.problem.involvedTypes = append(b.problem.involvedTypes, ref)
	return b
}

// WithInvolvedTypes appends multiple type references.
func (b *Builder) WithInvolvedTypes(refs ...TypeRef) *Builder {
	b.problem.involvedTypes = append(b.problem.involvedTypes, refs...)
	return b
}

// WithNested appends one or more sub-problems.
func (b *Builder) WithNested(nested ...Problem) *Builder {
	b.problem.nested = append(b.problem.nested, nested...)
	return b
}

// Build returns the constructed Problem.
//
// Build deep-copies the nested and involvedTypes slices into fresh,
// tight-capacity slices so a reused Builder cannot mutate a previously
// built Problem.
func (b *Builder) Build() Problem {
	result := b.problem
	if len(b.problem.nested) > 0 {
		result.nested = make([]Problem, len(b.problem.nested))
		copy(result.nested, b.problem.nested)
	}
	if len(b.problem.involvedTypes) > 0 {
		result.involvedTypes = make([]TypeRef, len(b.problem.involvedTypes))
		copy(result.involvedTypes, b.problem.involvedTypes)
	}
	return result
}
