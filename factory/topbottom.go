package factory

import (
	"context"

	"github.com/typegraph/typir/graph"
	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/problem"
	"github.com/typegraph/typir/subtype"
	"github.com/typegraph/typir/types"
)

// Top creates or retrieves the engine's single Top type (spec.md §6
// `Top.get`). There is exactly one Top per engine instance; Get looks it
// up before creating one (kind/topbottom.go's doc comment on [kind.Top]).
//
// SPEC_FULL.md's facet signature names only a *graph.Graph parameter;
// this adaptation also takes the registry Top shares with every other
// factory facet, since Top must register its singleton the same way any
// other type does. Recorded as an Open Question resolution in DESIGN.md.
type Top struct {
	G *graph.Graph
	R *types.Registry
}

// Get returns the engine's Top type, creating it on first call.
func (f Top) Get() *types.Type {
	if existing, ok := f.R.Lookup(kind.Top{}.Identifier()); ok {
		return existing
	}
	ini := types.NewInitializer(f.R, nil, func() (kind.Kind, *problem.Problem) {
		return kind.Top{}, nil
	})
	ini.Start()
	t := <-ini.Produced()
	if t == nil {
		return nil
	}
	f.G.AddNode(context.Background(), t)
	return t
}

// Bottom creates or retrieves the engine's single Bottom type (spec.md §6
// `Bottom.get`). On first creation, Bottom is marked a subtype of every
// type already in the graph, and a listener is registered so every type
// added afterward receives the same edge — Bottom-subtype-of-everything
// is a permanent, intentional cycle in the subtype partial order, so
// cycle checking is disabled for these edges (spec.md §8 property 6, S6;
// kind/topbottom.go's doc comment on [kind.Bottom]).
type Bottom struct {
	G       *graph.Graph
	R       *types.Registry
	Subtype *subtype.Service
}

// Get returns the engine's Bottom type, creating it (and wiring its
// universal-subtype edges and listener) on first call.
func (f Bottom) Get() *types.Type {
	if existing, ok := f.R.Lookup(kind.Bottom{}.Identifier()); ok {
		return existing
	}
	ini := types.NewInitializer(f.R, nil, func() (kind.Kind, *problem.Problem) {
		return kind.Bottom{}, nil
	})
	ini.Start()
	bottom := <-ini.Produced()
	if bottom == nil {
		return nil
	}

	ctx := context.Background()
	f.G.AddNode(ctx, bottom)

	for _, existing := range f.G.AllTypes(ctx) {
		if existing.ID() == bottom.ID() {
			continue
		}
		f.Subtype.MarkAsSubType(ctx, bottom, existing, subtype.WithCycleCheck(false))
	}

	f.G.AddListener(bottomListener{bottom: bottom, subtype: f.Subtype})
	return bottom
}

// bottomListener adds a SubTypeEdge from Bottom to every type added to
// the graph after Bottom itself was created.
type bottomListener struct {
	bottom  *types.Type
	subtype *subtype.Service
}

func (l bottomListener) OnAddedType(t *types.Type) {
	if t.ID() == l.bottom.ID() {
		return
	}
	l.subtype.MarkAsSubType(context.Background(), l.bottom, t, subtype.WithCycleCheck(false))
}

func (l bottomListener) OnRemovedType(t *types.Type) {}
func (l bottomListener) OnAddedEdge(e graph.Edge)    {}
func (l bottomListener) OnRemovedEdge(e graph.Edge)  {}
