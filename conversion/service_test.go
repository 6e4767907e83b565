package conversion

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

func TestIsConvertible_NoEdge(t *testing.T) {
	g := graph.New()
	s := NewService(g)
	a := buildType(t, kind.NewPrimitive("int"))
	b := buildType(t, kind.NewPrimitive("string"))

	mode, ok := s.IsConvertible(context.Background(), a, b)
	assert.False(t, ok)
	assert.Equal(t, None, mode)
}

func TestMarkAsConvertible_DirectEdge(t *testing.T) {
	g := graph.New()
	s := NewService(g)
	a := buildType(t, kind.NewPrimitive("int"))
	b := buildType(t, kind.NewPrimitive("double"))
	g.AddNode(context.Background(), a)
	g.AddNode(context.Background(), b)

	s.MarkAsConvertible(context.Background(), a, b, ImplicitExplicit)

	mode, ok := s.IsConvertible(context.Background(), a, b)
	require.True(t, ok)
	assert.Equal(t, ImplicitExplicit, mode)
}

func TestIsConvertible_NotTransitive(t *testing.T) {
	g := graph.New()
	s := NewService(g)
	a := buildType(t, kind.NewPrimitive("int"))
	b := buildType(t, kind.NewPrimitive("double"))
	c := buildType(t, kind.NewPrimitive("string"))
	for _, ty := range []*types.Type{a, b, c} {
		g.AddNode(context.Background(), ty)
	}

	s.MarkAsConvertible(context.Background(), a, b, ImplicitExplicit)
	s.MarkAsConvertible(context.Background(), b, c, ImplicitExplicit)

	_, ok := s.IsConvertible(context.Background(), a, c)
	assert.False(t, ok, "conversion must not be transitive at the edge level")
}
