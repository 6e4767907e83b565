// Package infer implements type inference over host-language nodes
// (spec.md §4.H). A [Rule] pattern-matches a node and reports one of
// four outcomes — not applicable, a final type, a two-step child
// request, or a match against the type it was bound to — and [Composite]
// tries registered rules in order, following the first applicable
// outcome to a concrete type.
//
// Two-step outcomes model function- and operator-call inference: the
// rule yields the call's name and operand subnodes, Composite infers
// each operand's type recursively, looks up the named overload group in
// the type registry, and resolves it via the overload package. The
// winning candidate's output type becomes the node's inferred type; a
// tie becomes an AmbiguousOverload problem rather than a silent pick.
//
// Composite also implements graph.Listener so that removing a bound
// rule's type from the graph evicts the rule automatically, in O(k) for
// k rules bound to that type rather than a scan of the full rule list.
package infer
