package kind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeComparator struct {
	subtypes map[[2]TypeID]bool
}

func (f fakeComparator) TypesEqual(a, b TypeID) bool { return a == b }

func (f fakeComparator) IsSubType(sub, sup TypeID) bool {
	return f.subtypes[[2]TypeID{sub, sup}]
}

func (f fakeComparator) IsAssignable(from, to TypeID) bool {
	return f.TypesEqual(from, to) || f.IsSubType(from, to)
}

func TestFixedParameters_Identifier(t *testing.T) {
	fp := NewFixedParameters("List", []TypeID{"int"}, EqualType)
	assert.Equal(t, TypeID("List<int>"), fp.Identifier())
}

func TestFixedParameters_Subtype_EqualTypeVarianceRejectsSubtypeParams(t *testing.T) {
	cmp := fakeComparator{subtypes: map[[2]TypeID]bool{{"int", "double"}: true}}

	narrower := NewFixedParameters("List", []TypeID{"int"}, EqualType)
	wider := NewFixedParameters("List", []TypeID{"double"}, EqualType)

	sub, problem := narrower.Subtype(wider, cmp)
	require.Nil(t, problem)
	assert.False(t, sub, "EqualType variance is invariant: int != double even though int <: double")
}

func TestFixedParameters_Subtype_SubTypeVarianceAcceptsCovariantParams(t *testing.T) {
	cmp := fakeComparator{subtypes: map[[2]TypeID]bool{{"int", "double"}: true}}

	narrower := NewFixedParameters("List", []TypeID{"int"}, SubType)
	wider := NewFixedParameters("List", []TypeID{"double"}, SubType)

	sub, problem := narrower.Subtype(wider, cmp)
	require.Nil(t, problem)
	assert.True(t, sub, "SubType variance is covariant")
}

func TestFixedParameters_Subtype_DifferentBaseNameIsNotSubtype(t *testing.T) {
	list := NewFixedParameters("List", []TypeID{"int"}, EqualType)
	set := NewFixedParameters("Set", []TypeID{"int"}, EqualType)

	sub, problem := list.Subtype(set, nil)
	require.Nil(t, problem)
	assert.False(t, sub)
}
