// Package engine wires every facet package into a single, ready-to-use
// instance (spec.md §6 Engine facade): the type graph, the registry, the
// four relation services, inference, validation, and the factory
// creators — constructed once by [New] and never reassembled.
//
// New solves the construction-order cycle the rest of this module only
// works around locally (factory's comparator-shell tests): the equality
// and subtype Services each need a [kind.Comparator] for nested-type
// comparisons, but the only Comparator worth giving them is backed by
// those same Services (plus assignability). [comparator] is built first
// with its service fields unset, handed to equality.NewService and
// subtype.NewService as their cmp argument, and backfilled once every
// service exists — see comparator.go.
package engine

import (
	"context"
	"log/slog"

	"github.com/typegraph/typir/assignability"
	"github.com/typegraph/typir/conversion"
	"github.com/typegraph/typir/equality"
	"github.com/typegraph/typir/factory"
	"github.com/typegraph/typir/graph"
	"github.com/typegraph/typir/infer"
	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/problem"
	"github.com/typegraph/typir/subtype"
	"github.com/typegraph/typir/types"
	"github.com/typegraph/typir/validate"
)

// Engine is the fully wired type system instance a host program embeds.
// The graph, registry, relation services, and inference dispatcher guard
// their own state with mutexes; the validation collector does not. Engine
// itself holds no additional state beyond its fields.
type Engine struct {
	Graph    *graph.Graph
	Registry *types.Registry

	Equality      *equality.Service
	Subtype       *subtype.Service
	Conversion    *conversion.Service
	Assignability *assignability.Service

	Infer    *infer.Composite
	Validate *validate.Collector

	Primitives factory.Primitives
	Classes    factory.Classes
	Functions  factory.Functions
	Operators  factory.Operators
	Generics   factory.Generics
	Top        factory.Top
	Bottom     factory.Bottom

	cmp    *comparator
	logger *slog.Logger
}

// New builds a fully wired Engine: an empty graph and registry, the four
// relation services (equality and subtype sharing one [kind.Comparator]), an inference
// dispatcher subscribed to the graph for bound-rule eviction, a
// validation collector, and one factory creator per kind.
func New(opts ...Option) *Engine {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = newCommonLogLogger("typir.engine")
	}

	g := graph.New(graph.WithLogger(cfg.logger))
	r := types.NewRegistry()

	cmp := &comparator{registry: r}
	eq := equality.NewService(g, cmp)
	sub := subtype.NewService(g, cmp, cfg.subtypeOpts...)
	cmp.equality = eq
	cmp.subtype = sub

	conv := conversion.NewService(g)
	asn := assignability.NewService(g, cfg.assignabilityOpts...)
	cmp.assignability = asn

	infr := infer.NewComposite(r, asn)
	g.AddListener(infr)

	e := &Engine{
		Graph:         g,
		Registry:      r,
		Equality:      eq,
		Subtype:       sub,
		Conversion:    conv,
		Assignability: asn,
		Infer:         infr,
		Validate:      validate.NewCollector(),
		Primitives:    factory.Primitives{G: g, R: r},
		Classes:       factory.Classes{G: g, R: r, Subtype: sub},
		Functions:     factory.Functions{G: g, R: r},
		Top:           factory.Top{G: g, R: r},
		Bottom:        factory.Bottom{G: g, R: r, Subtype: sub},
		Generics:      factory.Generics{G: g, R: r},
		cmp:           cmp,
		logger:        cfg.logger,
	}
	e.Operators = factory.Operators{Functions: e.Functions}
	return e
}

// AreTypesEqual is a convenience forwarding to Equality.AreTypesEqual.
func (e *Engine) AreTypesEqual(ctx context.Context, a, b *types.Type) (bool, *problem.Problem) {
	return e.Equality.AreTypesEqual(ctx, a, b)
}

// IsSubType is a convenience forwarding to Subtype.IsSubType.
func (e *Engine) IsSubType(ctx context.Context, sub, sup *types.Type) (bool, *problem.Problem) {
	return e.Subtype.IsSubType(ctx, sub, sup)
}

// GetAssignabilityResult is a convenience forwarding to
// Assignability.GetAssignabilityResult.
func (e *Engine) GetAssignabilityResult(ctx context.Context, from, to *types.Type) assignability.Result {
	return e.Assignability.GetAssignabilityResult(ctx, from, to)
}

// InferType is a convenience forwarding to Infer.InferType.
func (e *Engine) InferType(ctx context.Context, node any) (*types.Type, *problem.Problem) {
	return e.Infer.InferType(ctx, node)
}

// Comparator returns the engine-wide [kind.Comparator] backing every
// relation service, for host code that builds its own Kind values outside
// the factory facet (e.g. tests exercising kind.NewClass directly).
func (e *Engine) Comparator() kind.Comparator {
	return e.cmp
}
