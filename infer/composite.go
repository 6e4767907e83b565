package infer

import (
	"context"
	"sync"

	"github.com/typegraph/typir/assignability"
	"github.com/typegraph/typir/graph"
	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/overload"
	"github.com/typegraph/typir/problem"
	"github.com/typegraph/typir/types"
)

// Handle identifies a registered rule for later removal.
type Handle uint64

type ruleEntry struct {
	handle  Handle
	rule    Rule
	boundTo *types.Type
}

// Composite dispatches InferType to registered rules in registration
// order and returns the first applicable answer (spec.md §4.H). It is
// itself the engine's only built-in Rule-trying mechanism — there is no
// separate dispatcher type layered on top.
type Composite struct {
	registry *types.Registry
	asn      *assignability.Service

	mu     sync.Mutex
	rules  []*ruleEntry
	byType map[types.TypeID][]*ruleEntry
	nextID Handle
}

// NewComposite builds a dispatcher that resolves two-step (function- and
// operator-call) rules against registry's overload groups using asn for
// per-argument cost.
func NewComposite(registry *types.Registry, asn *assignability.Service) *Composite {
	return &Composite{
		registry: registry,
		asn:      asn,
		byType:   make(map[types.TypeID][]*ruleEntry),
	}
}

// AddInferenceRule registers rule at the end of the dispatch order.
// boundTo, if non-nil, is both the type [Matched] outcomes resolve to
// and the eviction key: removing boundTo from the graph (observed via
// [Composite.OnRemovedType]) evicts rule without scanning the full
// registry (spec.md §9 design note).
func (c *Composite) AddInferenceRule(rule Rule, boundTo *types.Type) Handle {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	entry := &ruleEntry{handle: c.nextID, rule: rule, boundTo: boundTo}
	c.rules = append(c.rules, entry)
	if boundTo != nil {
		c.byType[boundTo.ID()] = append(c.byType[boundTo.ID()], entry)
	}
	return entry.handle
}

// RemoveInferenceRule unregisters the rule identified by h. A no-op if h
// is unknown or was already evicted.
func (c *Composite) RemoveInferenceRule(h Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(h)
}

func (c *Composite) removeLocked(h Handle) {
	for i, entry := range c.rules {
		if entry.handle != h {
			continue
		}
		c.rules = append(c.rules[:i], c.rules[i+1:]...)
		if entry.boundTo != nil {
			c.pruneByType(entry.boundTo.ID(), h)
		}
		return
	}
}

func (c *Composite) pruneByType(id types.TypeID, h Handle) {
	bucket := c.byType[id]
	for i, entry := range bucket {
		if entry.handle == h {
			c.byType[id] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(c.byType[id]) == 0 {
		delete(c.byType, id)
	}
}

// OnAddedType is unused; Composite only reacts to removal.
func (c *Composite) OnAddedType(t *types.Type) {}

// OnRemovedType evicts every rule bound to t, in O(k) for k bound rules
// rather than scanning the whole rule list (spec.md §9 design note).
func (c *Composite) OnRemovedType(t *types.Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	bound := c.byType[t.ID()]
	if len(bound) == 0 {
		return
	}
	handles := make([]Handle, len(bound))
	for i, entry := range bound {
		handles[i] = entry.handle
	}
	for _, h := range handles {
		c.removeLocked(h)
	}
}

// OnAddedEdge is unused; Composite only reacts to node removal.
func (c *Composite) OnAddedEdge(e graph.Edge) {}

// OnRemovedEdge is unused; Composite only reacts to node removal.
func (c *Composite) OnRemovedEdge(e graph.Edge) {}

// InferType runs registered rules in order until one is applicable,
// following its outcome to a concrete type (spec.md §4.H). Two-step
// outcomes recurse into InferType for each child node, then resolve the
// named overload group against the inferred argument types.
func (c *Composite) InferType(ctx context.Context, node any) (*types.Type, *problem.Problem) {
	c.mu.Lock()
	snapshot := make([]*ruleEntry, len(c.rules))
	copy(snapshot, c.rules)
	c.mu.Unlock()

	for _, entry := range snapshot {
		outcome := entry.rule(ctx, node)
		if !outcome.applicable {
			continue
		}
		if outcome.matched {
			if entry.boundTo == nil {
				continue
			}
			return entry.boundTo, nil
		}
		if outcome.final != nil {
			return outcome.final, nil
		}
		return c.resolveTwoStep(ctx, outcome)
	}

	p := problem.New(problem.InferenceProblem, "no inference rule applicable to node").Build()
	return nil, &p
}

func (c *Composite) resolveTwoStep(ctx context.Context, outcome Outcome) (*types.Type, *problem.Problem) {
	argTypes := make([]*types.Type, len(outcome.childNodes))
	for i, child := range outcome.childNodes {
		t, prob := c.InferType(ctx, child)
		if prob != nil {
			return nil, prob
		}
		argTypes[i] = t
	}

	candidates := c.registry.FunctionsNamed(outcome.callName)
	if len(candidates) == 0 {
		p := problem.Newf(problem.InferenceProblem, "no overload group named %q", outcome.callName).Build()
		return nil, &p
	}

	decision := overload.Resolve(ctx, c.asn, c.registry, candidates, argTypes)
	if decision.IsAmbiguous() {
		refs := make([]problem.TypeRef, len(decision.Ambiguous))
		for i, t := range decision.Ambiguous {
			refs[i] = problem.TypeRef{ID: string(t.ID()), Name: t.String()}
		}
		p := problem.Newf(problem.AmbiguousOverload, "call to %q is ambiguous among %d candidates", outcome.callName, len(decision.Ambiguous)).
			WithInvolvedTypes(refs...).
			Build()
		return nil, &p
	}
	if decision.Winner == nil {
		refs := make([]problem.TypeRef, len(argTypes))
		for i, t := range argTypes {
			refs[i] = problem.TypeRef{ID: string(t.ID()), Name: t.String()}
		}
		p := problem.Newf(problem.AssignabilityProblem,
			"no overload of %q is assignable from the given argument types", outcome.callName).
			WithInvolvedTypes(refs...).
			Build()
		return nil, &p
	}

	fn, ok := decision.Winner.Kind().(kind.Function)
	if !ok {
		p := problem.Newf(problem.InferenceProblem, "overload winner for %q is not a function kind", outcome.callName).Build()
		return nil, &p
	}
	out, found := c.registry.Lookup(fn.Output())
	if !found {
		p := problem.Newf(problem.InferenceProblem, "output type of %q is not registered", outcome.callName).Build()
		return nil, &p
	}
	return out, nil
}
