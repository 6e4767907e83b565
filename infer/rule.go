package infer

import (
	"context"

	"github.com/typegraph/typir/types"
)

// Rule pattern-matches a host node and reports one of four outcomes
// (spec.md §4.H): not applicable, a final type, a two-step child
// request, or a bound-type match. Outcome's constructors enforce exactly
// one of these shapes — Rule never returns a bare union, since Go has
// none.
type Rule func(ctx context.Context, node any) Outcome

// Outcome is the result of applying a Rule to a node.
type Outcome struct {
	applicable bool
	final      *types.Type
	matched    bool
	callName   string
	childNodes []any
}

// NotApplicable reports that the rule does not recognize node; the
// Composite dispatcher moves on to the next rule in registration order.
func NotApplicable() Outcome {
	return Outcome{}
}

// Final reports a one-step conclusive answer: node's type is t.
func Final(t *types.Type) Outcome {
	return Outcome{applicable: true, final: t}
}

// Matched reports that the rule recognizes node and the node's type is
// whatever type the rule was bound to via AddInferenceRule's boundTo
// argument — the boolean "final match with implicit context" case from
// spec.md §4.H. A Rule registered with a nil boundTo must never return
// Matched.
func Matched() Outcome {
	return Outcome{applicable: true, matched: true}
}

// TwoStep requests that the engine first infer the type of each node in
// childNodes, then resolve an overload group named name against those
// inferred argument types (spec.md §4.I), using the winning candidate's
// output type as node's type. This is the shape function- and
// operator-call inference rules return: step one yields the operand
// subnodes, the engine does the recursive inference and overload
// resolution itself.
func TwoStep(name string, childNodes ...any) Outcome {
	return Outcome{applicable: true, callName: name, childNodes: childNodes}
}
