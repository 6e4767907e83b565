package graph

import (
	"context"
	"sync"

	"github.com/typegraph/typir/internal/obslog"
	"github.com/typegraph/typir/types"
)

// Graph is the type graph (spec.md §4.A): nodes are *types.Type values
// keyed by identifier, edges are directed and labeled. It is safe for
// concurrent read access; structural mutation serializes through mu.
//
// Graph never panics on a duplicate AddNode; it reports a [Conflict]
// value instead, mirroring the teacher's Duplicate record for
// primary-key collisions rather than its sentinel-error set (see
// DESIGN.md).
type Graph struct {
	config graphConfig
	mu     sync.RWMutex

	nodes map[types.TypeID]*types.Type

	// outgoing/incoming index edges by node identifier, then label, for
	// O(1)-amortized Outgoing/Incoming lookups.
	outgoing map[types.TypeID]map[Label][]Edge
	incoming map[types.TypeID]map[Label][]Edge

	listeners []Listener

	// dispatching guards re-entrant event delivery: a listener callback
	// that itself mutates the graph enqueues new events rather than
	// recursing into dispatch, so delivery always settles to a fixed
	// point in FIFO order (spec.md §5).
	dispatching bool
	queue       []event
}

// New creates an empty Graph.
func New(opts ...GraphOption) *Graph {
	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Graph{
		config:   cfg,
		nodes:    make(map[types.TypeID]*types.Type),
		outgoing: make(map[types.TypeID]map[Label][]Edge),
		incoming: make(map[types.TypeID]map[Label][]Edge),
	}
}

// AddNode adds t to the graph. If a node with the same identifier already
// exists, the existing node is kept, no event is emitted, and ok is false
// with conflict describing the collision.
func (g *Graph) AddNode(ctx context.Context, t *types.Type) (conflict Conflict, ok bool) {
	op := obslog.Begin(ctx, g.config.logger, "typir.graph.AddNode")
	defer func() { op.End(nil) }()

	g.mu.Lock()
	if existing, found := g.nodes[t.ID()]; found {
		g.mu.Unlock()
		return Conflict{Kept: existing, Discarded: t}, false
	}
	g.nodes[t.ID()] = t
	g.mu.Unlock()

	g.emit(event{addedType: t})
	return Conflict{}, true
}

// RemoveNode removes the node identified by id, if present. Every
// incident edge is reported removed via OnRemovedEdge before the node's
// own OnRemovedType event, per spec.md §4.A.
func (g *Graph) RemoveNode(ctx context.Context, id types.TypeID) {
	op := obslog.Begin(ctx, g.config.logger, "typir.graph.RemoveNode")
	defer func() { op.End(nil) }()

	g.mu.Lock()
	t, found := g.nodes[id]
	if !found {
		g.mu.Unlock()
		return
	}
	incident := g.incidentEdgesLocked(id)
	delete(g.nodes, id)
	delete(g.outgoing, id)
	delete(g.incoming, id)
	for _, e := range incident {
		g.detachEdgeLocked(e)
	}
	g.mu.Unlock()

	for _, e := range incident {
		e := e
		g.emit(event{removedEdge: &e})
	}
	g.emit(event{removedType: t})
}

// incidentEdgesLocked returns every edge touching id (as either endpoint),
// without duplicates for self-loops. Caller must hold mu.
func (g *Graph) incidentEdgesLocked(id types.TypeID) []Edge {
	var edges []Edge
	for _, byLabel := range g.outgoing[id] {
		edges = append(edges, byLabel...)
	}
	for _, byLabel := range g.incoming[id] {
		for _, e := range byLabel {
			if e.From.ID() == id {
				continue // already collected via outgoing[id]
			}
			edges = append(edges, e)
		}
	}
	return edges
}

// GetType returns the node with the given identifier, if present.
func (g *Graph) GetType(ctx context.Context, id types.TypeID) (*types.Type, bool) {
	op := obslog.Begin(ctx, g.config.logger, "typir.graph.GetType")
	defer func() { op.End(nil) }()

	g.mu.RLock()
	defer g.mu.RUnlock()
	t, ok := g.nodes[id]
	return t, ok
}

// AddEdge adds e to the graph, indexing it under both endpoints.
func (g *Graph) AddEdge(ctx context.Context, e Edge) {
	op := obslog.Begin(ctx, g.config.logger, "typir.graph.AddEdge")
	defer func() { op.End(nil) }()

	g.mu.Lock()
	g.indexEdgeLocked(e)
	g.mu.Unlock()

	g.emit(event{addedEdge: &e})
}

// RemoveEdge removes e from the graph, if present.
func (g *Graph) RemoveEdge(ctx context.Context, e Edge) {
	op := obslog.Begin(ctx, g.config.logger, "typir.graph.RemoveEdge")
	defer func() { op.End(nil) }()

	g.mu.Lock()
	g.detachEdgeLocked(e)
	g.mu.Unlock()

	g.emit(event{removedEdge: &e})
}

func (g *Graph) indexEdgeLocked(e Edge) {
	fromID, toID := e.From.ID(), e.To.ID()
	if g.outgoing[fromID] == nil {
		g.outgoing[fromID] = make(map[Label][]Edge)
	}
	g.outgoing[fromID][e.Label] = append(g.outgoing[fromID][e.Label], e)
	if g.incoming[toID] == nil {
		g.incoming[toID] = make(map[Label][]Edge)
	}
	g.incoming[toID][e.Label] = append(g.incoming[toID][e.Label], e)
}

func (g *Graph) detachEdgeLocked(e Edge) {
	fromID, toID := e.From.ID(), e.To.ID()
	if out := g.outgoing[fromID]; out != nil {
		out[e.Label] = removeEdge(out[e.Label], e)
	}
	if in := g.incoming[toID]; in != nil {
		in[e.Label] = removeEdge(in[e.Label], e)
	}
}

func removeEdge(edges []Edge, target Edge) []Edge {
	for i, e := range edges {
		if e.From == target.From && e.To == target.To && e.Label == target.Label {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return edges
}

// Outgoing returns every edge with label originating at t, in insertion
// order.
func (g *Graph) Outgoing(ctx context.Context, t *types.Type, label Label) []Edge {
	op := obslog.Begin(ctx, g.config.logger, "typir.graph.Outgoing")
	defer func() { op.End(nil) }()

	g.mu.RLock()
	defer g.mu.RUnlock()
	edges := g.outgoing[t.ID()][label]
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}

// Incoming returns every edge with label terminating at t, in insertion
// order.
func (g *Graph) Incoming(ctx context.Context, t *types.Type, label Label) []Edge {
	op := obslog.Begin(ctx, g.config.logger, "typir.graph.Incoming")
	defer func() { op.End(nil) }()

	g.mu.RLock()
	defer g.mu.RUnlock()
	edges := g.incoming[t.ID()][label]
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}

// AllTypes returns every node currently in the graph.
func (g *Graph) AllTypes(ctx context.Context) []*types.Type {
	op := obslog.Begin(ctx, g.config.logger, "typir.graph.AllTypes")
	defer func() { op.End(nil) }()

	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*types.Type, 0, len(g.nodes))
	for _, t := range g.nodes {
		out = append(out, t)
	}
	return out
}

// AddListener registers l to receive structural change events, in
// registration order.
func (g *Graph) AddListener(l Listener) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, l)
}

// RemoveListener unregisters l. A no-op if l was never registered.
func (g *Graph) RemoveListener(l Listener) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, existing := range g.listeners {
		if existing == l {
			g.listeners = append(g.listeners[:i], g.listeners[i+1:]...)
			return
		}
	}
}

// emit enqueues ev and, if no dispatch is already in progress on this
// graph, drains the queue to a fixed point.
func (g *Graph) emit(ev event) {
	g.mu.Lock()
	g.queue = append(g.queue, ev)
	if g.dispatching {
		g.mu.Unlock()
		return
	}
	g.dispatching = true
	g.mu.Unlock()

	for {
		g.mu.Lock()
		if len(g.queue) == 0 {
			g.dispatching = false
			g.mu.Unlock()
			return
		}
		next := g.queue[0]
		g.queue = g.queue[1:]
		listeners := make([]Listener, len(g.listeners))
		copy(listeners, g.listeners)
		g.mu.Unlock()

		for _, l := range listeners {
			next.dispatch(l)
		}
	}
}
