package kind

import "github.com/typegraph/typir/problem"

// kindConflict builds the KindConflict problem shared by every concrete
// kind's Equal/Subtype dispatch when the other side fails the type
// assertion to its own concrete type.
func kindConflict(a, b Kind) *problem.Problem {
	p := problem.Newf(problem.KindConflict,
		"cannot compare %s %q with kind %q", a.Name(), a.Identifier(), b.Name()).
		WithInvolvedType(problem.TypeRef{ID: string(a.Identifier()), Name: a.String()}).
		WithInvolvedType(problem.TypeRef{ID: string(b.Identifier()), Name: b.String()}).
		Build()
	return &p
}
