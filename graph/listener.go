package graph

import "github.com/typegraph/typir/types"

// Listener receives synchronous notifications of graph structural
// changes, in registration order (spec.md §4.A).
type Listener interface {
	// OnAddedType is called once a new node is actually added (not for
	// a duplicate-identifier attempt, which produces a Conflict instead).
	OnAddedType(t *types.Type)
	// OnRemovedType is called after all of t's incident edges have
	// already been reported removed via OnRemovedEdge.
	OnRemovedType(t *types.Type)
	// OnAddedEdge is called once a new edge is added.
	OnAddedEdge(e Edge)
	// OnRemovedEdge is called for each incident edge of a node being
	// removed, and for direct RemoveEdge calls.
	OnRemovedEdge(e Edge)
}

// event is a queued structural-change notification, dispatched to every
// listener once the triggering call's own mutation completes. Queuing
// (rather than dispatching inline) lets a listener call back into
// AddNode/RemoveNode without re-entering the dispatch loop on the call
// stack — events it causes are appended to the same queue and drained to
// a fixed point by the outermost call (spec.md §5).
type event struct {
	addedType   *types.Type
	removedType *types.Type
	addedEdge   *Edge
	removedEdge *Edge
}

func (e event) dispatch(l Listener) {
	switch {
	case e.addedType != nil:
		l.OnAddedType(e.addedType)
	case e.removedType != nil:
		l.OnRemovedType(e.removedType)
	case e.addedEdge != nil:
		l.OnAddedEdge(*e.addedEdge)
	case e.removedEdge != nil:
		l.OnRemovedEdge(*e.removedEdge)
	}
}
