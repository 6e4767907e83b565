package kind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typegraph/typir/problem"
)

func TestNewClass_NominalIdentifierIsQualifiedName(t *testing.T) {
	c := NewClass("app.Person", NominalIdentity, []Field{{Name: "age", TypeID: "int"}}, nil)
	assert.Equal(t, TypeID("app.Person"), c.Identifier())
}

func TestNewClass_StructuralIdentifierIncludesSortedFields(t *testing.T) {
	a := NewClass("app.Point", StructuralIdentity, []Field{
		{Name: "y", TypeID: "int"},
		{Name: "x", TypeID: "int"},
	}, nil)
	b := NewClass("app.Point", StructuralIdentity, []Field{
		{Name: "x", TypeID: "int"},
		{Name: "y", TypeID: "int"},
	}, nil)

	assert.Equal(t, a.Identifier(), b.Identifier(), "field order must not affect the structural identifier")
}

func TestClass_Equal_NominalComparesNameOnly(t *testing.T) {
	a := NewClass("app.Person", NominalIdentity, []Field{{Name: "age", TypeID: "int"}}, nil)
	b := NewClass("app.Person", NominalIdentity, []Field{{Name: "age", TypeID: "string"}}, nil)

	equal, problem := a.Equal(b, nil)
	require.Nil(t, problem)
	assert.True(t, equal)
}

func TestClass_Equal_AgainstOtherKindIsConflict(t *testing.T) {
	a := NewClass("app.Person", NominalIdentity, nil, nil)
	_, prob := a.Equal(NewPrimitive("int"), nil)
	require.NotNil(t, prob)
	assert.Equal(t, problem.KindConflict, prob.Kind())
}

func TestClass_Subtype_StructuralWidthSubtyping(t *testing.T) {
	base := NewClass("app.Named", StructuralIdentity, []Field{
		{Name: "name", TypeID: "string"},
	}, nil)
	wider := NewClass("app.Person", StructuralIdentity, []Field{
		{Name: "name", TypeID: "string"},
		{Name: "age", TypeID: "int"},
	}, nil)

	sub, problem := wider.Subtype(base, nil)
	require.Nil(t, problem)
	assert.True(t, sub, "a class with every field of base plus more is a structural subtype of base")
}

func TestClass_Subtype_MissingFieldIsNotSubtype(t *testing.T) {
	base := NewClass("app.Named", StructuralIdentity, []Field{
		{Name: "name", TypeID: "string"},
		{Name: "age", TypeID: "int"},
	}, nil)
	narrower := NewClass("app.Unnamed", StructuralIdentity, []Field{
		{Name: "name", TypeID: "string"},
	}, nil)

	sub, problem := narrower.Subtype(base, nil)
	require.Nil(t, problem)
	assert.False(t, sub)
}

func TestClass_Fields_ReturnsDefensiveCopy(t *testing.T) {
	c := NewClass("app.Point", StructuralIdentity, []Field{{Name: "x", TypeID: "int"}}, nil)

	fields := c.Fields()
	fields[0].Name = "mutated"

	assert.Equal(t, "x", c.Fields()[0].Name)
}
