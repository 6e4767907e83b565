package factory

import (
	"context"

	"github.com/typegraph/typir/graph"
	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/problem"
	"github.com/typegraph/typir/types"
)

// Primitives creates Primitive-kinded types and adds them to a graph, per
// spec.md §6's Factory facet (`Primitives.create`). Grounded on the
// teacher's `build.Builder`'s fluent, options-struct creation shape,
// reduced here to single-call construction since a Primitive has no
// nested state to accumulate across chained calls.
type Primitives struct {
	G *graph.Graph
	R *types.Registry
}

// PrimitiveOptions names the primitive to create.
type PrimitiveOptions struct {
	Name string
}

// Create builds and registers a Primitive type, adding it to the graph.
// A Primitive has no preconditions: its identifier is its name alone.
func (p Primitives) Create(opts PrimitiveOptions) *types.Type {
	ini := types.NewInitializer(p.R, nil, func() (kind.Kind, *problem.Problem) {
		return kind.NewPrimitive(opts.Name), nil
	})
	ini.Start()
	t := <-ini.Produced()
	if t == nil {
		return nil
	}
	p.G.AddNode(context.Background(), t)
	return t
}
