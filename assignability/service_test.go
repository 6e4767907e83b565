package assignability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/typegraph/typir/graph"
	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/problem"
	"github.com/typegraph/typir/types"
)

func buildType(t *testing.T, k kind.Kind) *types.Type {
	t.Helper()
	r := types.NewRegistry()
	ini := types.NewInitializer(r, nil, func() (kind.Kind, *problem.Problem) { return k, nil })
	ini.Start()
	return <-ini.Produced()
}

func TestGetAssignabilityResult_Reflexive(t *testing.T) {
	g := graph.New()
	s := NewService(g)
	a := buildType(t, kind.NewPrimitive("int"))

	r := s.GetAssignabilityResult(context.Background(), a, a)
	require.True(t, r.OK())
	assert.Empty(t, r.Path)
}

// TestGetAssignabilityResult_ConversionChain reproduces spec.md S1: four
// primitives b, i, d, s with b <:conv i, i <:sub d, d <:conv s.
func TestGetAssignabilityResult_ConversionChain(t *testing.T) {
	g := graph.New()
	s := NewService(g)

	b := buildType(t, kind.NewPrimitive("boolean"))
	i := buildType(t, kind.NewPrimitive("int"))
	d := buildType(t, kind.NewPrimitive("double"))
	str := buildType(t, kind.NewPrimitive("string"))
	for _, ty := range []*types.Type{b, i, d, str} {
		g.AddNode(context.Background(), ty)
	}

	g.AddEdge(context.Background(), graph.Edge{From: b, To: i, Label: graph.ConversionEdge, Mode: graph.ImplicitExplicit})
	g.AddEdge(context.Background(), graph.Edge{From: i, To: d, Label: graph.SubTypeEdge})
	g.AddEdge(context.Background(), graph.Edge{From: d, To: str, Label: graph.ConversionEdge, Mode: graph.ImplicitExplicit})

	r := s.GetAssignabilityResult(context.Background(), i, d)
	require.True(t, r.OK())
	require.Len(t, r.Path, 1)
	assert.Equal(t, graph.SubTypeEdge, r.Path[0].Label)

	r = s.GetAssignabilityResult(context.Background(), b, d)
	require.True(t, r.OK())
	require.Len(t, r.Path, 2)
	assert.Equal(t, graph.ConversionEdge, r.Path[0].Label)
	assert.Equal(t, graph.SubTypeEdge, r.Path[1].Label)

	r = s.GetAssignabilityResult(context.Background(), i, str)
	require.True(t, r.OK())
	require.Len(t, r.Path, 2)
	assert.Equal(t, graph.SubTypeEdge, r.Path[0].Label)
	assert.Equal(t, graph.ConversionEdge, r.Path[1].Label)

	r = s.GetAssignabilityResult(context.Background(), b, str)
	require.True(t, r.OK())
	require.Len(t, r.Path, 3)
	assert.Equal(t, graph.ConversionEdge, r.Path[0].Label)
	assert.Equal(t, graph.SubTypeEdge, r.Path[1].Label)
	assert.Equal(t, graph.ConversionEdge, r.Path[2].Label)

	r = s.GetAssignabilityResult(context.Background(), str, b)
	assert.False(t, r.OK())
	require.NotNil(t, r.Problem)
	assert.Equal(t, problem.AssignabilityProblem, r.Problem.Kind())
}

func TestGetAssignabilityResult_ExplicitOnlyConversionExcluded(t *testing.T) {
	g := graph.New()
	s := NewService(g)
	a := buildType(t, kind.NewPrimitive("int"))
	b := buildType(t, kind.NewPrimitive("string"))
	g.AddNode(context.Background(), a)
	g.AddNode(context.Background(), b)

	g.AddEdge(context.Background(), graph.Edge{From: a, To: b, Label: graph.ConversionEdge, Mode: graph.Explicit})

	r := s.GetAssignabilityResult(context.Background(), a, b)
	assert.False(t, r.OK(), "an EXPLICIT-only conversion must never be a silent assignability path")
}

func TestGetAssignabilityResult_TopIsUniversalTarget(t *testing.T) {
	g := graph.New()
	s := NewService(g)
	top := buildType(t, kind.Top{})
	a := buildType(t, kind.NewPrimitive("int"))

	r := s.GetAssignabilityResult(context.Background(), a, top)
	assert.True(t, r.OK())
}
