package factory

import (
	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/types"
)

// Operators creates Function-kinded types for unary, binary, ternary, and
// n-ary operators (spec.md §6 `Operators.createUnary/Binary/Ternary/
// Generic`). An operator is a Function whose "declaration" inference rule
// never applies — only its call-inference rule does — so Operators is a
// thin naming convenience over Functions, not a distinct kind.
type Operators struct {
	Functions Functions
}

// CreateUnary creates a one-operand operator, e.g. unary `-`.
func (o Operators) CreateUnary(name string, output, operand kind.TypeID) *types.Type {
	return o.Functions.Create(FunctionOptions{
		Name:   name,
		Output: output,
		Params: []kind.Param{{Name: "operand", TypeID: operand}},
	})
}

// CreateBinary creates a two-operand operator, e.g. binary `+`.
func (o Operators) CreateBinary(name string, output, lhs, rhs kind.TypeID) *types.Type {
	return o.Functions.Create(FunctionOptions{
		Name:   name,
		Output: output,
		Params: []kind.Param{{Name: "lhs", TypeID: lhs}, {Name: "rhs", TypeID: rhs}},
	})
}

// CreateTernary creates a three-operand operator, e.g. `cond ? a : b`.
func (o Operators) CreateTernary(name string, output, first, second, third kind.TypeID) *types.Type {
	return o.Functions.Create(FunctionOptions{
		Name:   name,
		Output: output,
		Params: []kind.Param{
			{Name: "first", TypeID: first},
			{Name: "second", TypeID: second},
			{Name: "third", TypeID: third},
		},
	})
}

// CreateGeneric creates an operator of arbitrary, caller-named arity.
func (o Operators) CreateGeneric(name string, output kind.TypeID, operands []kind.Param) *types.Type {
	return o.Functions.Create(FunctionOptions{Name: name, Output: output, Params: operands})
}
