// Package types implements the Type entity (spec.md §3) and the
// invalid → identifiable → completed initialization state machine
// (spec.md §4.C).
//
// A [Type] pairs a [kind.Kind] with a lifecycle state and a listener
// list; it is created only through an [Initializer], which resolves
// precondition identifiers before computing the Kind and publishing the
// canonical, deduplicated node through [Initializer.Produced]. A
// [Registry] owns identifier-based dedup and function-name grouping for
// overload resolution.
//
// This package does not import graph: a *Type is a plain value the type
// graph stores and links by identifier, not a graph-aware node.
package types
