package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/problem"
)

func TestInitializer_NoPreconditions_ProceedsImmediately(t *testing.T) {
	r := NewRegistry()
	ini := NewInitializer(r, nil, func() (kind.Kind, *problem.Problem) {
		return kind.NewPrimitive("int"), nil
	})

	ini.Start()

	ty, ok := <-ini.Produced()
	require.True(t, ok)
	assert.Equal(t, Completed, ty.State())
	assert.Nil(t, ini.Err())
}

func TestInitializer_WaitsForPrecondition(t *testing.T) {
	r := NewRegistry()

	dependent := NewInitializer(r, []TypeID{"string"}, func() (kind.Kind, *problem.Problem) {
		return kind.NewClass("app.Wrapper", kind.StructuralIdentity, []kind.Field{{Name: "s", TypeID: "string"}}, nil), nil
	})

	dependent.Start()
	select {
	case <-dependent.Produced():
		t.Fatal("must not produce before its precondition exists")
	default:
	}

	stringIni := NewInitializer(r, nil, func() (kind.Kind, *problem.Problem) {
		return kind.NewPrimitive("string"), nil
	})
	stringIni.Start()
	<-stringIni.Produced()

	ty, ok := <-dependent.Produced()
	require.True(t, ok)
	assert.Equal(t, Completed, ty.State())
}

func TestInitializer_FinalizeFailure_ClosesWithoutValue(t *testing.T) {
	r := NewRegistry()
	wantProblem := problem.New(problem.InitializationError, "boom").Build()
	ini := NewInitializer(r, nil, func() (kind.Kind, *problem.Problem) {
		return nil, &wantProblem
	})

	ini.Start()

	_, ok := <-ini.Produced()
	assert.False(t, ok)
	require.NotNil(t, ini.Err())
	assert.Equal(t, problem.InitializationError, ini.Err().Kind())
}

func TestInitializer_RecursiveClass_SelfReferenceByIdentifier(t *testing.T) {
	r := NewRegistry()
	ini := NewInitializer(r, nil, func() (kind.Kind, *problem.Problem) {
		return kind.NewClass("app.Node", kind.NominalIdentity, []kind.Field{{Name: "next", TypeID: "app.Node"}}, nil), nil
	})

	ini.Start()
	ty, ok := <-ini.Produced()
	require.True(t, ok)

	found, ok := r.Lookup(ty.ID())
	require.True(t, ok)
	assert.Same(t, ty, found, "the node's own identifier resolves to itself once published")
}

func TestInitializer_Invalidate_NotifiesListeners(t *testing.T) {
	r := NewRegistry()
	ini := NewInitializer(r, []TypeID{"string"}, func() (kind.Kind, *problem.Problem) {
		return kind.NewPrimitive("int"), nil
	})
	r.register(newType(kind.NewPrimitive("string")))
	ini.Start()
	ty := <-ini.Produced()

	l := &recordingListener{}
	ty.AddListener(l)

	ini.Invalidate("string")

	assert.Equal(t, Invalid, ty.State())
	assert.Equal(t, []string{"int"}, l.invalidated)
}

func TestInitializer_Invalidate_IgnoresNonPrecondition(t *testing.T) {
	r := NewRegistry()
	ini := NewInitializer(r, []TypeID{"string"}, func() (kind.Kind, *problem.Problem) {
		return kind.NewPrimitive("int"), nil
	})
	r.register(newType(kind.NewPrimitive("string")))
	ini.Start()
	ty := <-ini.Produced()

	ini.Invalidate("double")

	assert.Equal(t, Completed, ty.State())
}
