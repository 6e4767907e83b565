// Package factory implements the engine's Factory facet (spec.md §6):
// one creator type per kind — [Primitives], [Classes], [Functions],
// [Operators], [Generics] (fixed-parameters), [Top], and [Bottom] — each
// wiring a [kind.Kind] value through [types.NewInitializer] and adding
// the resulting type to a [graph.Graph].
//
// Grounded on the teacher's schema/build.Builder: a fluent, options-
// struct-driven construction API. Builder's chained TypeBuilder state
// machine has no counterpart here, since a [kind.Kind] value is already
// complete data the moment its fields are known — there is no multi-step
// type body to accumulate the way a schema.Type's properties/relations/
// invariants are accumulated across chained calls.
package factory
