// Package assignability implements assignability path search (spec.md
// §4.G): a from type is assignable to a to type if a path of subtype and
// (non-EXPLICIT-only) conversion edges connects them. Subtype edges are
// preferred over conversion edges at equal path length, left to right
// (spec.md §9 Open Question (a): EXPLICIT-only conversions never
// participate in assignability search).
package assignability

import (
	"context"

	"github.com/typegraph/typir/graph"
	"github.com/typegraph/typir/internal/obslog"
	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/problem"
	"github.com/typegraph/typir/types"
)

// Result is the outcome of a GetAssignabilityResult call: either a
// successful Path (possibly empty, for reflexive assignability), or a
// Problem describing why no path exists.
type Result struct {
	Path    []graph.Edge
	Problem *problem.Problem
}

// OK reports whether the assignability query succeeded.
func (r Result) OK() bool {
	return r.Problem == nil
}

// Service answers assignability queries over a shared type graph whose
// SubTypeEdge and ConversionEdge edges were populated by the subtype and
// conversion services.
type Service struct {
	g             *graph.Graph
	maxPathLength int
}

// Option configures a Service at construction.
type Option func(*Service)

// WithMaxPathLength overrides the BFS bound (default: the graph's node
// count at call time).
func WithMaxPathLength(n int) Option {
	return func(s *Service) { s.maxPathLength = n }
}

// NewService creates an assignability Service over g.
func NewService(g *graph.Graph, opts ...Option) *Service {
	s := &Service{g: g}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type frontierNode struct {
	t    *types.Type
	path []graph.Edge
}

// GetAssignabilityResult searches for the shortest path of subtype/
// conversion edges from from to to. Reflexive: from == to always
// succeeds with an empty path. Top and Bottom are universal assignability
// targets/sources, matching their intrinsic subtype relationship.
func (s *Service) GetAssignabilityResult(ctx context.Context, from, to *types.Type) Result {
	op := obslog.Begin(ctx, nil, "typir.assignability.GetAssignabilityResult")
	defer func() { op.End(nil) }()

	if from.ID() == to.ID() {
		return Result{Path: []graph.Edge{}}
	}
	if _, ok := to.Kind().(kind.Top); ok {
		return Result{Path: []graph.Edge{}}
	}
	if _, ok := from.Kind().(kind.Bottom); ok {
		return Result{Path: []graph.Edge{}}
	}

	bound := s.maxPathLength
	if bound <= 0 {
		bound = len(s.g.AllTypes(ctx))
		if bound == 0 {
			bound = 1
		}
	}

	visited := map[types.TypeID]bool{from.ID(): true}
	queue := []frontierNode{{t: from, path: nil}}

	for depth := 0; depth < bound && len(queue) > 0; depth++ {
		var nextQueue []frontierNode
		for _, fn := range queue {
			// Subtype edges are enumerated (and thus enqueued) before
			// conversion edges at this node, so they win ties at the
			// next depth per the left-to-right, subtype-before-
			// conversion rule (spec.md §4.G).
			for _, e := range s.g.Outgoing(ctx, fn.t, graph.SubTypeEdge) {
				if found, result := step(e, fn, to, visited, &nextQueue); found {
					return result
				}
			}
			for _, e := range s.g.Outgoing(ctx, fn.t, graph.ConversionEdge) {
				if e.Mode == graph.Explicit {
					continue // EXPLICIT-only conversions never participate (§9 (a))
				}
				if found, result := step(e, fn, to, visited, &nextQueue); found {
					return result
				}
			}
		}
		queue = nextQueue
	}

	p := problem.Newf(problem.AssignabilityProblem,
		"no assignability path from %q to %q", from, to).
		WithInvolvedType(problem.TypeRef{ID: string(from.ID()), Name: from.String()}).
		WithInvolvedType(problem.TypeRef{ID: string(to.ID()), Name: to.String()}).
		Build()
	return Result{Problem: &p}
}

// step extends fn's path across e, returning a successful Result if e
// reaches to, or enqueuing e.To for the next BFS depth otherwise.
func step(e graph.Edge, fn frontierNode, to *types.Type, visited map[types.TypeID]bool, nextQueue *[]frontierNode) (bool, Result) {
	path := append(append([]graph.Edge{}, fn.path...), e)
	if e.To.ID() == to.ID() {
		return true, Result{Path: path}
	}
	if !visited[e.To.ID()] {
		visited[e.To.ID()] = true
		*nextQueue = append(*nextQueue, frontierNode{t: e.To, path: path})
	}
	return false, Result{}
}
