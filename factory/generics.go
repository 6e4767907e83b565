package factory

import (
	"context"

	"github.com/typegraph/typir/graph"
	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/problem"
	"github.com/typegraph/typir/types"
)

// Generics creates FixedParameters-kinded types (spec.md §6
// `FixedParameters(baseName, paramNames, variance).create`).
type Generics struct {
	G *graph.Graph
	R *types.Registry
}

// FixedParameters returns a builder for one generic base name, e.g.
// "List", bound to paramNames (used only for arity checking — the
// instantiation itself carries parameter type identifiers, not names)
// and variance (spec.md S4).
func (g Generics) FixedParameters(baseName string, paramNames []string, variance kind.Variance) *FixedParametersBuilder {
	return &FixedParametersBuilder{
		g:          g,
		baseName:   baseName,
		paramNames: paramNames,
		variance:   variance,
	}
}

// FixedParametersBuilder creates instantiations of one generic base name.
type FixedParametersBuilder struct {
	g          Generics
	baseName   string
	paramNames []string
	variance   kind.Variance
}

// Create builds one instantiation, e.g. List<int>, from paramIDs in
// declared-parameter order. Panics if the arity does not match the
// paramNames the builder was bound to — a construction-time mistake, not
// a recoverable condition.
func (b *FixedParametersBuilder) Create(paramIDs []kind.TypeID) *types.Type {
	if len(paramIDs) != len(b.paramNames) {
		panic("factory.FixedParametersBuilder.Create: arity mismatch")
	}

	preconditions := make([]types.TypeID, len(paramIDs))
	copy(preconditions, paramIDs)

	ini := types.NewInitializer(b.g.R, preconditions, func() (kind.Kind, *problem.Problem) {
		return kind.NewFixedParameters(b.baseName, paramIDs, b.variance), nil
	})
	ini.Start()
	t := <-ini.Produced()
	if t == nil {
		return nil
	}
	b.g.G.AddNode(context.Background(), t)
	return t
}
