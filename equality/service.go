// Package equality implements type equality (spec.md §4.D):
// `AreTypesEqual(a, b) → true | problem`, symmetric and reflexive,
// memoized on the unordered identifier pair and invalidated when either
// type is removed from the graph.
package equality

import (
	"context"
	"sync"

	"github.com/typegraph/typir/graph"
	"github.com/typegraph/typir/internal/obslog"
	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/problem"
	"github.com/typegraph/typir/types"
)

// pairKey is an unordered pair of identifiers, normalized so (a, b) and
// (b, a) memoize to the same entry — equality is symmetric by
// construction (spec.md §4.D), so only one direction is ever computed.
type pairKey struct {
	a, b types.TypeID
}

func newPairKey(a, b types.TypeID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

type memoEntry struct {
	equal   bool
	problem *problem.Problem
}

// Service computes and memoizes type equality for one engine instance.
type Service struct {
	mu   sync.Mutex
	memo map[pairKey]memoEntry
	cmp  kind.Comparator
}

// NewService creates an equality Service bound to g (for removal-driven
// cache invalidation) and cmp (the engine-wide [kind.Comparator] used for
// nested-type comparisons inside structural Class/Function/FixedParameters
// equality — see kind package doc).
func NewService(g *graph.Graph, cmp kind.Comparator) *Service {
	s := &Service{
		memo: make(map[pairKey]memoEntry),
		cmp:  cmp,
	}
	g.AddListener(invalidatingListener{s})
	return s
}

// AreTypesEqual reports whether a and b are equal, per spec.md §4.D:
// identical identifiers are trivially equal; otherwise the comparison
// dispatches to a's Kind, which reports KindConflict itself if b's Kind
// differs (kind.Kind.Equal's own type-assertion path — this service never
// type-switches).
func (s *Service) AreTypesEqual(ctx context.Context, a, b *types.Type) (bool, *problem.Problem) {
	op := obslog.Begin(ctx, nil, "typir.equality.AreTypesEqual")
	defer func() { op.End(nil) }()

	if a.ID() == b.ID() {
		return true, nil
	}

	key := newPairKey(a.ID(), b.ID())

	s.mu.Lock()
	if entry, ok := s.memo[key]; ok {
		s.mu.Unlock()
		return entry.equal, entry.problem
	}
	s.mu.Unlock()

	equal, prob := a.Kind().Equal(b.Kind(), s.cmp)

	s.mu.Lock()
	s.memo[key] = memoEntry{equal: equal, problem: prob}
	s.mu.Unlock()

	return equal, prob
}

// invalidate drops every memoized entry that mentions id, called when id
// is removed from the graph.
func (s *Service) invalidate(id types.TypeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.memo {
		if key.a == id || key.b == id {
			delete(s.memo, key)
		}
	}
}

// invalidatingListener adapts Service to [graph.Listener], reacting only
// to node removal.
type invalidatingListener struct {
	s *Service
}

func (l invalidatingListener) OnAddedType(t *types.Type)   {}
func (l invalidatingListener) OnRemovedType(t *types.Type) { l.s.invalidate(t.ID()) }
func (l invalidatingListener) OnAddedEdge(e graph.Edge)    {}
func (l invalidatingListener) OnRemovedEdge(e graph.Edge)  {}
