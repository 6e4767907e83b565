// Package conversion implements declared conversions (spec.md §4.F):
// MarkAsConvertible adds a directed ConversionEdge; IsConvertible reports
// the strongest mode of the direct edge, if any. Conversion is not
// transitive at the edge level — transitivity across a chain of
// conversions (and subtype edges) is realized exclusively by
// [github.com/typegraph/typir/assignability].
package conversion

import (
	"context"

	"github.com/typegraph/typir/graph"
	"github.com/typegraph/typir/internal/obslog"
	"github.com/typegraph/typir/types"
)

// Mode re-exports graph.Mode so callers of this package never need to
// import graph just to name a conversion strength.
type Mode = graph.Mode

const (
	ImplicitExplicit = graph.ImplicitExplicit
	Explicit         = graph.Explicit
)

// None indicates the absence of a direct conversion edge. It is not a
// valid graph.Mode value; callers distinguish it from ImplicitExplicit/
// Explicit via the second IsConvertible return.
const None = Mode(255)

// Service holds declared conversion edges.
type Service struct {
	g *graph.Graph
}

// NewService creates a conversion Service over g.
func NewService(g *graph.Graph) *Service {
	return &Service{g: g}
}

// MarkAsConvertible records a directed conversion edge from from to to,
// with the given mode.
func (s *Service) MarkAsConvertible(ctx context.Context, from, to *types.Type, mode Mode) {
	op := obslog.Begin(ctx, nil, "typir.conversion.MarkAsConvertible")
	defer func() { op.End(nil) }()

	s.g.AddEdge(ctx, graph.Edge{From: from, To: to, Label: graph.ConversionEdge, Mode: mode})
}

// IsConvertible returns the strongest mode among the direct conversion
// edges from from to to (ImplicitExplicit over Explicit), if any, and
// whether one exists.
func (s *Service) IsConvertible(ctx context.Context, from, to *types.Type) (Mode, bool) {
	op := obslog.Begin(ctx, nil, "typir.conversion.IsConvertible")
	defer func() { op.End(nil) }()

	found := false
	for _, e := range s.g.Outgoing(ctx, from, graph.ConversionEdge) {
		if e.To.ID() == to.ID() {
			if e.Mode == ImplicitExplicit {
				return ImplicitExplicit, true
			}
			found = true
		}
	}
	if found {
		return Explicit, true
	}
	return None, false
}
