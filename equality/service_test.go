package equality

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

func TestAreTypesEqual_SameIdentifierIsReflexivelyEqual(t *testing.T) {
	g := graph.New()
	s := NewService(g, nil)
	a := buildType(t, kind.NewPrimitive("int"))

	equal, prob := s.AreTypesEqual(context.Background(), a, a)
	require.Nil(t, prob)
	assert.True(t, equal)
}

func TestAreTypesEqual_DifferentKindsIsKindConflict(t *testing.T) {
	g := graph.New()
	s := NewService(g, nil)
	a := buildType(t, kind.NewPrimitive("int"))
	b := buildType(t, kind.NewClass("app.Thing", kind.NominalIdentity, nil, nil))

	equal, prob := s.AreTypesEqual(context.Background(), a, b)
	assert.False(t, equal)
	require.NotNil(t, prob)
	assert.Equal(t, problem.KindConflict, prob.Kind())
}

func TestAreTypesEqual_Memoizes(t *testing.T) {
	g := graph.New()
	s := NewService(g, nil)
	a := buildType(t, kind.NewClass("app.P", kind.NominalIdentity, nil, nil))
	b := buildType(t, kind.NewClass("app.Q", kind.NominalIdentity, nil, nil))

	equal1, _ := s.AreTypesEqual(context.Background(), a, b)
	require.False(t, equal1, "different qualified names under nominal identity are never equal")

	s.mu.Lock()
	_, cached := s.memo[newPairKey(a.ID(), b.ID())]
	s.mu.Unlock()
	assert.True(t, cached)
}

func TestAreTypesEqual_InvalidatedOnNodeRemoval(t *testing.T) {
	g := graph.New()
	s := NewService(g, nil)
	a := buildType(t, kind.NewClass("app.P", kind.NominalIdentity, nil, nil))
	b := buildType(t, kind.NewClass("app.Q", kind.NominalIdentity, nil, nil))

	s.AreTypesEqual(context.Background(), a, b)
	g.AddNode(context.Background(), a)
	g.RemoveNode(context.Background(), a.ID())

	s.mu.Lock()
	_, cached := s.memo[newPairKey(a.ID(), b.ID())]
	s.mu.Unlock()
	assert.False(t, cached, "removing a type must drop memo entries mentioning it")
}
