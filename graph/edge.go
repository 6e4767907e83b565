package graph

import "github.com/typegraph/typir/types"

// Label identifies the kind of relationship an Edge expresses.
type Label string

const (
	// SubTypeEdge marks sub as an explicitly declared subtype of sup.
	SubTypeEdge Label = "sub_type"
	// ConversionEdge marks a declared conversion from one type to
	// another, carrying a Mode.
	ConversionEdge Label = "conversion"
	// ParameterEdge is a kind-internal label: a function's parameter
	// binding to its declared type.
	ParameterEdge Label = "parameter"
	// ArgumentEdge is a kind-internal label: a fixed-parameters kind's
	// positional type argument.
	ArgumentEdge Label = "argument"
)

// Mode qualifies a ConversionEdge (spec.md §3).
type Mode uint8

const (
	// ImplicitExplicit means the conversion is usable both as an
	// implicit assignability step and via an explicit host-side cast.
	ImplicitExplicit Mode = iota
	// Explicit means the conversion requires an explicit host-side
	// cast; it is never traversed silently by assignability search.
	Explicit
)

// Edge is a directed, labeled connection between two type nodes. Edges are
// first-class so relation services can return a traversed path to
// callers (spec.md §3, "Edges are first-class so paths can be returned").
type Edge struct {
	From  *types.Type
	To    *types.Type
	Label Label
	Mode  Mode
}
