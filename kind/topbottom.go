package kind

import "github.com/typegraph/typir/problem"

// topIdentifier and bottomIdentifier are fixed: Top and Bottom are
// singletons per engine instance (spec.md §4.B), so their identifiers never
// vary with creation details the way Primitive's or Class's do.
const (
	topIdentifier    TypeID = "$top"
	bottomIdentifier TypeID = "$bottom"
)

// Top is the supertype of every other type in the graph. There is exactly
// one Top type per engine instance; [factory.Top.Get] enforces that by
// looking it up before creating one.
type Top struct{}

func (Top) Name() string       { return "top" }
func (Top) Identifier() TypeID { return topIdentifier }

func (t Top) Equal(other Kind, _ Comparator) (bool, *problem.Problem) {
	if _, ok := other.(Top); !ok {
		return false, kindConflict(t, other)
	}
	return true, nil
}

// Subtype reports Top's intrinsic relation: Top is a subtype of nothing but
// itself. Every other type being a subtype of Top is the dual statement,
// enforced by [kind.Bottom]'s symmetric counterpart and by the subtype
// service's explicit handling of Top as a universal supertype.
func (t Top) Subtype(other Kind, _ Comparator) (bool, *problem.Problem) {
	if _, ok := other.(Top); !ok {
		return false, kindConflict(t, other)
	}
	return true, nil
}

func (Top) String() string { return "Top" }
func (Top) kind()          {}

// Bottom is the subtype of every other type in the graph. On construction
// the factory marks it as a subtype of every existing type and subscribes a
// graph listener so every newly added type receives the same edge — with
// cycle checking suppressed, since Bottom-subtype-of-everything is an
// intentional, permanent cycle in the subtype partial order (spec.md §8
// property 6, S6).
type Bottom struct{}

func (Bottom) Name() string       { return "bottom" }
func (Bottom) Identifier() TypeID { return bottomIdentifier }

func (b Bottom) Equal(other Kind, _ Comparator) (bool, *problem.Problem) {
	if _, ok := other.(Bottom); !ok {
		return false, kindConflict(b, other)
	}
	return true, nil
}

func (b Bottom) Subtype(other Kind, _ Comparator) (bool, *problem.Problem) {
	if _, ok := other.(Bottom); !ok {
		return false, kindConflict(b, other)
	}
	return true, nil
}

func (Bottom) String() string { return "Bottom" }
func (Bottom) kind()          {}
