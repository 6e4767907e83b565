package kind

import (
	"slices"
	"strings"

	"github.com/typegraph/typir/problem"
)

// Param is one named, ordered input parameter of a Function.
type Param struct {
	Name   string
	TypeID TypeID
}

// Function is a named output type plus an ordered sequence of named input
// parameters. Functions sharing a name form an overload group, tracked by
// [types.Registry.FunctionsNamed] rather than by Function itself — Function
// stays a pure value/analyzer, consistent with "Kind owns identity,
// equality, and subtype; it does not keep bookkeeping across instances."
type Function struct {
	name       string
	output     TypeID
	params     []Param
	identifier TypeID
}

// NewFunction constructs a Function kind. params is cloned.
func NewFunction(name string, output TypeID, params []Param) Function {
	f := Function{
		name:   name,
		output: output,
		params: slices.Clone(params),
	}
	f.identifier = deriveFunctionIdentifier(f)
	return f
}

func deriveFunctionIdentifier(f Function) TypeID {
	var b strings.Builder
	b.WriteString(f.name)
	b.WriteByte('(')
	for i, p := range f.params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.Name)
		b.WriteByte(':')
		b.WriteString(string(p.TypeID))
	}
	b.WriteString(")->")
	b.WriteString(string(f.output))
	return TypeID(b.String())
}

func (f Function) Name() string       { return "function" }
func (f Function) Identifier() TypeID { return f.identifier }

// FunctionName returns the function's declared name, shared across its
// overload group.
func (f Function) FunctionName() string { return f.name }

func (f Function) Output() TypeID { return f.output }

// Params returns a defensive copy of the ordered input parameters.
func (f Function) Params() []Param {
	return slices.Clone(f.params)
}

func (f Function) Equal(other Kind, cmp Comparator) (bool, *problem.Problem) {
	o, ok := other.(Function)
	if !ok {
		return false, kindConflict(f, other)
	}
	if f.name != o.name || len(f.params) != len(o.params) {
		return false, nil
	}
	outputEqual := f.output == o.output
	if cmp != nil {
		outputEqual = cmp.TypesEqual(f.output, o.output)
	}
	if !outputEqual {
		return false, nil
	}
	for i, p := range f.params {
		q := o.params[i]
		typeEqual := p.TypeID == q.TypeID
		if cmp != nil {
			typeEqual = cmp.TypesEqual(p.TypeID, q.TypeID)
		}
		if p.Name != q.Name || !typeEqual {
			return false, nil
		}
	}
	return true, nil
}

// Subtype is never defined between two functions in the core: distinct
// function signatures are a kind conflict for subtyping purposes, even when
// one could in principle be a contravariant/covariant refinement of the
// other (spec.md §4.B: "Subtype is not defined between functions in the
// core" unless both sides are identical, in which case the relation is
// equality, not subtyping).
func (f Function) Subtype(other Kind, _ Comparator) (bool, *problem.Problem) {
	o, ok := other.(Function)
	if ok && f.identifier == o.identifier {
		return true, nil
	}
	return false, kindConflict(f, other)
}

func (f Function) String() string {
	var b strings.Builder
	b.WriteString(f.name)
	b.WriteByte('(')
	for i, p := range f.params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(string(p.TypeID))
	}
	b.WriteString(") -> ")
	b.WriteString(string(f.output))
	return b.String()
}

func (Function) kind() {}
