// Package subtype implements subtyping (spec.md §4.E): reflexive,
// transitive across explicit SubTypeEdges, with kind-intrinsic subtype
// rules (fixed-parameters variance, structural classes) applied only as
// the final step into the queried supertype, top/bottom handled as
// universal, and cycle refusal on explicit edges unless exempted. A chain
// that needs an intrinsic step before an explicit edge is not found.
package subtype

import (
	"context"
	"sync"

	"github.com/typegraph/typir/graph"
	"github.com/typegraph/typir/internal/obslog"
	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/problem"
	"github.com/typegraph/typir/types"
)

type pairKey struct {
	sub, sup types.TypeID
}

type memoEntry struct {
	isSub   bool
	problem *problem.Problem
}

// markOptions configures a MarkAsSubType call.
type markOptions struct {
	checkForCycles bool
}

// MarkOption configures [Service.MarkAsSubType].
type MarkOption func(*markOptions)

// WithCycleCheck controls whether MarkAsSubType refuses an edge that
// would close a cycle. Default true; Bottom's intrinsic subtype-of-
// everything relationship is established with WithCycleCheck(false)
// (spec.md §4.B/§8 property 6, S6).
func WithCycleCheck(enabled bool) MarkOption {
	return func(o *markOptions) { o.checkForCycles = enabled }
}

// Service holds the explicit subtype-edge state and answers IsSubType
// queries by combining graph traversal with each kind's intrinsic
// subtype rule.
type Service struct {
	g   *graph.Graph
	cmp kind.Comparator

	maxPathLength int

	mu   sync.Mutex
	memo map[pairKey]memoEntry
}

// Option configures a Service at construction.
type Option func(*Service)

// WithMaxPathLength overrides the BFS bound (default: the graph's node
// count at call time, re-evaluated per search per spec.md §5).
func WithMaxPathLength(n int) Option {
	return func(s *Service) { s.maxPathLength = n }
}

// NewService creates a subtype Service over g, using cmp for kind-
// intrinsic subtype queries that need cross-kind comparison (e.g.
// FixedParameters variance).
func NewService(g *graph.Graph, cmp kind.Comparator, opts ...Option) *Service {
	s := &Service{
		g:    g,
		cmp:  cmp,
		memo: make(map[pairKey]memoEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	g.AddListener(invalidatingListener{s})
	return s
}

// MarkAsSubType records an explicit SubTypeEdge from sub to sup. By
// default, an edge that would close a cycle is refused and a
// SubTypeProblem is returned; pass WithCycleCheck(false) to skip the
// check (used for Bottom's universal-subtype exemption).
func (s *Service) MarkAsSubType(ctx context.Context, sub, sup *types.Type, opts ...MarkOption) *problem.Problem {
	op := obslog.Begin(ctx, nil, "typir.subtype.MarkAsSubType")
	defer func() { op.End(nil) }()

	cfg := markOptions{checkForCycles: true}
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.checkForCycles {
		if isSub, _ := s.IsSubType(ctx, sup, sub); isSub {
			p := problem.Newf(problem.SubTypeProblem,
				"marking %q as a subtype of %q would close a cycle", sub, sup).
				WithInvolvedType(problem.TypeRef{ID: string(sub.ID()), Name: sub.String()}).
				WithInvolvedType(problem.TypeRef{ID: string(sup.ID()), Name: sup.String()}).
				Build()
			return &p
		}
	}

	s.g.AddEdge(ctx, graph.Edge{From: sub, To: sup, Label: graph.SubTypeEdge})
	s.invalidateAll()
	return nil
}

// IsSubType reports whether sub is a subtype of sup: reflexively true for
// identical identifiers, otherwise true if a path of explicit
// SubTypeEdges leads from sub to sup or to a type whose kind is
// intrinsically a subtype of sup's kind. Intrinsic steps are not followed
// further. The first reached target wins (BFS), bounded by maxPathLength.
func (s *Service) IsSubType(ctx context.Context, sub, sup *types.Type) (bool, *problem.Problem) {
	op := obslog.Begin(ctx, nil, "typir.subtype.IsSubType")
	defer func() { op.End(nil) }()

	if sub.ID() == sup.ID() {
		return true, nil
	}
	// Top and Bottom are universal super/subtypes (spec.md §4.B, §8
	// property 6): every type is a subtype of Top, and Bottom is a
	// subtype of every type. Kind.Subtype itself only ever compares
	// Top-to-Top or Bottom-to-Bottom (see kind/topbottom.go); the
	// cross-kind universal relationship is this service's job, not the
	// kind's.
	if _, ok := sup.Kind().(kind.Top); ok {
		return true, nil
	}
	if _, ok := sub.Kind().(kind.Bottom); ok {
		return true, nil
	}

	key := pairKey{sub.ID(), sup.ID()}
	s.mu.Lock()
	if entry, ok := s.memo[key]; ok {
		s.mu.Unlock()
		return entry.isSub, entry.problem
	}
	s.mu.Unlock()

	bound := s.maxPathLength
	if bound <= 0 {
		bound = len(s.g.AllTypes(ctx))
		if bound == 0 {
			bound = 1
		}
	}

	found := s.bfs(ctx, sub, sup, bound)

	var entry memoEntry
	if found {
		entry = memoEntry{isSub: true}
	} else {
		p := problem.Newf(problem.SubTypeProblem,
			"%q is not a subtype of %q", sub, sup).
			WithInvolvedType(problem.TypeRef{ID: string(sub.ID()), Name: sub.String()}).
			WithInvolvedType(problem.TypeRef{ID: string(sup.ID()), Name: sup.String()}).
			Build()
		entry = memoEntry{isSub: false, problem: &p}
	}

	s.mu.Lock()
	s.memo[key] = entry
	s.mu.Unlock()

	return entry.isSub, entry.problem
}

// bfs explores outgoing SubTypeEdges plus each frontier node's
// kind-intrinsic subtype relationship to sup, breadth-first, stopping
// once sup is reached or the path bound is exhausted.
func (s *Service) bfs(ctx context.Context, sub, sup *types.Type, bound int) bool {
	visited := map[types.TypeID]bool{sub.ID(): true}
	frontier := []*types.Type{sub}

	for depth := 0; depth < bound && len(frontier) > 0; depth++ {
		var next []*types.Type
		for _, node := range frontier {
			if ok, _ := node.Kind().Subtype(sup.Kind(), s.cmp); ok {
				return true
			}
			for _, e := range s.g.Outgoing(ctx, node, graph.SubTypeEdge) {
				if e.To.ID() == sup.ID() {
					return true
				}
				if !visited[e.To.ID()] {
					visited[e.To.ID()] = true
					next = append(next, e.To)
				}
			}
		}
		frontier = next
	}
	return false
}

func (s *Service) invalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.memo)
}

func (s *Service) invalidate(id types.TypeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.memo {
		if key.sub == id || key.sup == id {
			delete(s.memo, key)
		}
	}
}

type invalidatingListener struct {
	s *Service
}

func (l invalidatingListener) OnAddedType(t *types.Type)   {}
func (l invalidatingListener) OnRemovedType(t *types.Type) { l.s.invalidate(t.ID()) }
func (l invalidatingListener) OnAddedEdge(e graph.Edge)    { l.s.invalidateAll() }
func (l invalidatingListener) OnRemovedEdge(e graph.Edge)  { l.s.invalidateAll() }
