package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/typegraph/typir/kind"
	"github.com/typegraph/typir/problem"
	"github.com/typegraph/typir/types"
)

// buildType synchronously initializes a standalone, completed *types.Type
// for k — each call gets its own Registry so identifiers never collide
// across tests.
func buildType(k kind.Kind) *types.Type {
	r := types.NewRegistry()
	ini := types.NewInitializer(r, nil, func() (kind.Kind, *problem.Problem) { return k, nil })
	ini.Start()
	return <-ini.Produced()
}

func TestGraph_AddNode_AddsNewNode(t *testing.T) {
	g := New()
	ty := buildType(kind.NewPrimitive("int"))

	conflict, ok := g.AddNode(context.Background(), ty)

	assert.True(t, ok)
	assert.True(t, conflict.IsZero())

	found, exists := g.GetType(context.Background(), ty.ID())
	require.True(t, exists)
	assert.Same(t, ty, found)
}

func TestGraph_AddNode_DuplicateReturnsConflict(t *testing.T) {
	g := New()
	ty := buildType(kind.NewPrimitive("int"))
	dup := buildType(kind.NewPrimitive("int"))

	g.AddNode(context.Background(), ty)
	conflict, ok := g.AddNode(context.Background(), dup)

	assert.False(t, ok)
	assert.Same(t, ty, conflict.Kept)
	assert.Same(t, dup, conflict.Discarded)
}

func TestGraph_AddEdge_IndexesBothDirections(t *testing.T) {
	g := New()
	a := buildType(kind.NewPrimitive("int"))
	b := buildType(kind.NewPrimitive("double"))
	g.AddNode(context.Background(), a)
	g.AddNode(context.Background(), b)

	e := Edge{From: a, To: b, Label: SubTypeEdge}
	g.AddEdge(context.Background(), e)

	out := g.Outgoing(context.Background(), a, SubTypeEdge)
	require.Len(t, out, 1)
	assert.Equal(t, e, out[0])

	in := g.Incoming(context.Background(), b, SubTypeEdge)
	require.Len(t, in, 1)
	assert.Equal(t, e, in[0])
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := New()
	a := buildType(kind.NewPrimitive("int"))
	b := buildType(kind.NewPrimitive("double"))
	g.AddNode(context.Background(), a)
	g.AddNode(context.Background(), b)
	e := Edge{From: a, To: b, Label: SubTypeEdge}
	g.AddEdge(context.Background(), e)

	g.RemoveEdge(context.Background(), e)

	assert.Empty(t, g.Outgoing(context.Background(), a, SubTypeEdge))
	assert.Empty(t, g.Incoming(context.Background(), b, SubTypeEdge))
}

func TestGraph_RemoveNode_DetachesIncidentEdgesFirst(t *testing.T) {
	g := New()
	a := buildType(kind.NewPrimitive("int"))
	b := buildType(kind.NewPrimitive("double"))
	g.AddNode(context.Background(), a)
	g.AddNode(context.Background(), b)
	e := Edge{From: a, To: b, Label: SubTypeEdge}
	g.AddEdge(context.Background(), e)

	var events []string
	g.AddListener(&recordingListener{events: &events})

	g.RemoveNode(context.Background(), a.ID())

	require.Len(t, events, 2)
	assert.Equal(t, "edge_removed", events[0])
	assert.Equal(t, "type_removed", events[1])

	_, exists := g.GetType(context.Background(), a.ID())
	assert.False(t, exists)
	assert.Empty(t, g.Incoming(context.Background(), b, SubTypeEdge))
}

func TestGraph_AllTypes(t *testing.T) {
	g := New()
	a := buildType(kind.NewPrimitive("int"))
	b := buildType(kind.NewPrimitive("double"))
	g.AddNode(context.Background(), a)
	g.AddNode(context.Background(), b)

	all := g.AllTypes(context.Background())
	assert.Len(t, all, 2)
}

func TestGraph_Listener_ReentrantAddDuringDispatchIsQueuedNotRecursive(t *testing.T) {
	g := New()
	b := buildType(kind.NewPrimitive("double"))

	l := &reentrantListener{graph: g, toAdd: b}
	g.AddListener(l)

	a := buildType(kind.NewPrimitive("int"))
	g.AddNode(context.Background(), a)

	_, exists := g.GetType(context.Background(), b.ID())
	assert.True(t, exists, "the node added from within a listener callback must still land in the graph")
}

type recordingListener struct {
	events *[]string
}

func (r *recordingListener) OnAddedType(t *types.Type)   { *r.events = append(*r.events, "type_added") }
func (r *recordingListener) OnRemovedType(t *types.Type) { *r.events = append(*r.events, "type_removed") }
func (r *recordingListener) OnAddedEdge(e Edge)          { *r.events = append(*r.events, "edge_added") }
func (r *recordingListener) OnRemovedEdge(e Edge)        { *r.events = append(*r.events, "edge_removed") }

type reentrantListener struct {
	graph *Graph
	toAdd *types.Type
	added bool
}

func (l *reentrantListener) OnAddedType(t *types.Type) {
	if !l.added {
		l.added = true
		l.graph.AddNode(context.Background(), l.toAdd)
	}
}
func (l *reentrantListener) OnRemovedType(t *types.Type) {}
func (l *reentrantListener) OnAddedEdge(e Edge)          {}
func (l *reentrantListener) OnRemovedEdge(e Edge)        {}
