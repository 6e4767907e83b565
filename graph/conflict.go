package graph

import "github.com/typegraph/typir/types"

// Conflict reports that AddNode observed a type whose identifier already
// exists in the graph. It is a value, not an error: a duplicate add is an
// expected, recoverable event (spec.md §4.A — "returns the existing type
// and does not emit an add event"), mirroring the teacher's Duplicate
// record for primary-key collisions rather than its sentinel-error set.
type Conflict struct {
	// Kept is the node already present in the graph, which callers
	// should use going forward.
	Kept *types.Type
	// Discarded is the node the caller attempted to add.
	Discarded *types.Type
}

// IsZero reports whether c represents "no conflict" (the zero value).
func (c Conflict) IsZero() bool {
	return c.Kept == nil && c.Discarded == nil
}
