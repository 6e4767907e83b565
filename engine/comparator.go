package engine

import (
	"context"

	"github.com/typegraph/typir/assignability"
	"github.com/typegraph/typir/equality"
	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/subtype"
	"github.com/typegraph/typir/types"
)

// comparator is the one [kind.Comparator] implementation this module
// ships, and it exists only to break a construction-order cycle: the
// equality and subtype Services need a Comparator to pass down into
// kind-level Equal/Subtype dispatch (for nested-type comparisons), but
// that Comparator's own answers are the equality/subtype Services
// themselves.
//
// [New] resolves the cycle the same way [factory]'s tests do it
// (comparatorShell there, generalized to a real, engine-owned type here):
// construct comparator first with every service field nil, hand it to
// equality.NewService and subtype.NewService as their cmp argument, then
// backfill the three service fields once all of them exist. A Comparator
// method is never called before the corresponding service field is set,
// since nothing can query the engine until [New] returns.
type comparator struct {
	registry      *types.Registry
	equality      *equality.Service
	subtype       *subtype.Service
	assignability *assignability.Service
}

func (c *comparator) TypesEqual(a, b kind.TypeID) bool {
	at, ok1 := c.registry.Lookup(a)
	bt, ok2 := c.registry.Lookup(b)
	if !ok1 || !ok2 {
		return false
	}
	equal, _ := c.equality.AreTypesEqual(context.Background(), at, bt)
	return equal
}

func (c *comparator) IsSubType(a, b kind.TypeID) bool {
	at, ok1 := c.registry.Lookup(a)
	bt, ok2 := c.registry.Lookup(b)
	if !ok1 || !ok2 {
		return false
	}
	isSub, _ := c.subtype.IsSubType(context.Background(), at, bt)
	return isSub
}

func (c *comparator) IsAssignable(a, b kind.TypeID) bool {
	at, ok1 := c.registry.Lookup(a)
	bt, ok2 := c.registry.Lookup(b)
	if !ok1 || !ok2 {
		return false
	}
	return c.assignability.GetAssignabilityResult(context.Background(), at, bt).OK()
}
