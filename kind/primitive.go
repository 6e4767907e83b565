package kind

import "github.com/typegraph/typir/problem"

// Primitive is a built-in scalar kind, e.g. int, string, boolean. Its
// identifier is the primitive's own name; equality is identity (two
// primitives are equal only if they are the same declared primitive), and
// it declares no intrinsic subtype relations of its own — any subtyping
// between primitives must come from explicitly declared graph.SubTypeEdge
// entries.
type Primitive struct {
	name string
}

// NewPrimitive returns the Primitive kind for name.
func NewPrimitive(name string) Primitive {
	return Primitive{name: name}
}

func (p Primitive) Name() string { return "primitive" }

func (p Primitive) Identifier() TypeID { return TypeID(p.name) }

func (p Primitive) Equal(other Kind, _ Comparator) (bool, *problem.Problem) {
	o, ok := other.(Primitive)
	if !ok {
		return false, kindConflict(p, other)
	}
	return p.name == o.name, nil
}

func (p Primitive) Subtype(other Kind, _ Comparator) (bool, *problem.Problem) {
	if _, ok := other.(Primitive); !ok {
		return false, kindConflict(p, other)
	}
	return false, nil
}

func (p Primitive) String() string { return p.name }

func (Primitive) kind() {}
