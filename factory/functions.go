package factory

import (
	"context"

	"github.com/typegraph/typir/graph"
	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/problem"
	"github.com/typegraph/typir/types"
)

// Functions creates Function-kinded types (spec.md §6 `Functions.create`).
// Multiple Functions sharing a name form an overload group — tracked by
// types.Registry.FunctionsNamed, not by any bookkeeping here — so Create
// is safe to call repeatedly with the same name and different parameter
// lists (spec.md S3).
type Functions struct {
	G *graph.Graph
	R *types.Registry
}

// FunctionOptions describes one function signature to create.
type FunctionOptions struct {
	Name   string
	Output kind.TypeID
	Params []kind.Param
}

// Create builds and registers a Function type. Preconditions are the
// output type and every parameter type.
func (f Functions) Create(opts FunctionOptions) *types.Type {
	var preconditions []types.TypeID
	preconditions = append(preconditions, opts.Output)
	for _, p := range opts.Params {
		preconditions = append(preconditions, p.TypeID)
	}

	ini := types.NewInitializer(f.R, preconditions, func() (kind.Kind, *problem.Problem) {
		return kind.NewFunction(opts.Name, opts.Output, opts.Params), nil
	})
	ini.Start()
	t := <-ini.Produced()
	if t == nil {
		return nil
	}
	f.G.AddNode(context.Background(), t)
	return t
}
