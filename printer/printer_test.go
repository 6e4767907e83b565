package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/problem"
	"github.com/typegraph/typir/types"
)

func buildType(t *testing.T, r *types.Registry, k kind.Kind) *types.Type {
	t.Helper()
	ini := types.NewInitializer(r, nil, func() (kind.Kind, *problem.Problem) { return k, nil })
	ini.Start()
	typ := <-ini.Produced()
	require.NotNil(t, typ)
	return typ
}

func TestPrint_Primitive(t *testing.T) {
	r := types.NewRegistry()
	typ := buildType(t, r, kind.NewPrimitive("int"))
	assert.Equal(t, "int", Print(typ))
}

func TestPrint_Nil(t *testing.T) {
	assert.Equal(t, "<nil>", Print(nil))
}

func TestPrint_ClassOrdersFieldsByCollatedName(t *testing.T) {
	r := types.NewRegistry()
	typ := buildType(t, r, kind.NewClass("app.Point", kind.StructuralIdentity, []kind.Field{
		{Name: "y", TypeID: "int"},
		{Name: "x", TypeID: "int"},
	}, nil))
	assert.Equal(t, "app.Point{x: int, y: int}", Print(typ))
}

func TestPrint_ClassNominalIsJustTheName(t *testing.T) {
	r := types.NewRegistry()
	typ := buildType(t, r, kind.NewClass("app.Person", kind.NominalIdentity, []kind.Field{{Name: "age", TypeID: "int"}}, nil))
	assert.Equal(t, "app.Person", Print(typ))
}

func TestPrint_Function(t *testing.T) {
	r := types.NewRegistry()
	typ := buildType(t, r, kind.NewFunction("f", "string", []kind.Param{{Name: "x", TypeID: "int"}}))
	assert.Equal(t, "f(x: int) -> string", Print(typ))
}

func TestPrintOverloadGroup_SortsByRenderedSignature(t *testing.T) {
	r := types.NewRegistry()
	buildType(t, r, kind.NewFunction("f", "bool", []kind.Param{{Name: "x", TypeID: "string"}}))
	buildType(t, r, kind.NewFunction("f", "string", []kind.Param{{Name: "x", TypeID: "int"}}))

	rendered := PrintOverloadGroup(r, "f")
	require.Len(t, rendered, 2)
	assert.Equal(t, "f(x: int) -> string", rendered[0])
	assert.Equal(t, "f(x: string) -> bool", rendered[1])
}
