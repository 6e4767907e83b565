// Package graph implements the type graph (spec.md §4.A): nodes are
// *types.Type values keyed by identifier, edges are directed and labeled
// ([SubTypeEdge], [ConversionEdge], and kind-internal labels). The graph
// is the shared structure relation services (equality, subtype,
// conversion, assignability) traverse and cache against.
//
// Graph is safe for concurrent read access via [Graph.GetType],
// [Graph.Outgoing], [Graph.Incoming], and [Graph.AllTypes]; mutation
// ([Graph.AddNode], [Graph.RemoveNode], [Graph.AddEdge],
// [Graph.RemoveEdge]) serializes through an internal mutex, matching the
// engine's single-logical-thread model (spec.md §5) while still allowing
// read-only introspection from another goroutine.
//
// A duplicate-identifier [Graph.AddNode] never panics; it returns a
// [Conflict] value describing the collision, and the pre-existing node
// is kept. Listener delivery ([Graph.AddListener]) is FIFO and
// re-entrant-safe: a listener that itself mutates the graph has its
// resulting events queued and drained after the current dispatch settles,
// rather than recursing on the call stack.
package graph
