package overload

import (
	"context"

	"github.com/typegraph/typir/assignability"
	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/types"
)

// Decision is the outcome of Resolve: exactly one of Winner or Ambiguous
// is set, unless no candidate was applicable at all (both zero) — the
// caller (typically infer.Composite) turns that case into an
// AssignabilityProblem, since Decision itself carries no problem value
// (spec.md §7: the tagged-struct distinguishes only "one winner" from
// "tied", not "why nothing applied").
type Decision struct {
	Winner    *types.Type
	Ambiguous []*types.Type
}

// IsAmbiguous reports whether multiple tied candidates survived.
func (d Decision) IsAmbiguous() bool {
	return len(d.Ambiguous) > 0
}

// IsEmpty reports whether no candidate was applicable.
func (d Decision) IsEmpty() bool {
	return d.Winner == nil && len(d.Ambiguous) == 0
}

// Resolve implements spec.md §4.I's four-step algorithm: applicability
// filter via assignability, per-argument cost (shortest assignability
// path length), dominance, and unique-best-match-or-ambiguous. registry
// resolves each candidate's declared parameter TypeIDs to the concrete
// *types.Type nodes assignability needs.
func Resolve(ctx context.Context, asn *assignability.Service, registry *types.Registry, candidates []*types.Type, args []*types.Type) Decision {
	type scored struct {
		t    *types.Type
		cost []int
	}

	var applicable []scored
	for _, c := range candidates {
		fn, ok := c.Kind().(kind.Function)
		if !ok {
			continue
		}
		params := fn.Params()
		if len(params) != len(args) {
			continue
		}

		cost := make([]int, len(args))
		ok = true
		for i, p := range params {
			paramType, found := registry.Lookup(p.TypeID)
			if !found {
				ok = false
				break
			}
			if args[i].ID() == paramType.ID() {
				cost[i] = 0
				continue
			}
			result := asn.GetAssignabilityResult(ctx, args[i], paramType)
			if !result.OK() {
				ok = false
				break
			}
			cost[i] = len(result.Path)
		}
		if !ok {
			continue
		}
		applicable = append(applicable, scored{t: c, cost: cost})
	}

	if len(applicable) == 0 {
		return Decision{}
	}

	var survivors []scored
	for _, f := range applicable {
		dominated := false
		for _, g := range applicable {
			if f.t == g.t {
				continue
			}
			if dominates(g.cost, f.cost) {
				dominated = true
				break
			}
		}
		if !dominated {
			survivors = append(survivors, f)
		}
	}

	if len(survivors) == 1 {
		return Decision{Winner: survivors[0].t}
	}

	ambiguous := make([]*types.Type, len(survivors))
	for i, s := range survivors {
		ambiguous[i] = s.t
	}
	return Decision{Ambiguous: ambiguous}
}

// dominates reports whether cost vector a dominates b: every position is
// less-or-equal, and some position is strictly less (spec.md §4.I step 3).
func dominates(a, b []int) bool {
	strict := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			strict = true
		}
	}
	return strict
}
