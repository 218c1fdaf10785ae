package core_test

import (
	"testing"

	"github.com/katalvlaran/pathgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleEdges is the seven-edge directed graph used across packages.
//
//	A→B(4) A→C(2) B→C(1) B→D(5) C→D(8) C→E(10) D→E(2)
func sampleEdges() []core.Edge {
	return []core.Edge{
		core.NewEdge("A", "B", 4),
		core.NewEdge("A", "C", 2),
		core.NewEdge("B", "C", 1),
		core.NewEdge("B", "D", 5),
		core.NewEdge("C", "D", 8),
		core.NewEdge("C", "E", 10),
		core.NewEdge("D", "E", 2),
	}
}

func TestBuild_Empty(t *testing.T) {
	g, err := core.Build(nil)
	require.ErrorIs(t, err, core.ErrEmptyGraph)
	assert.Nil(t, g)

	_, err = core.Build([]core.Edge{})
	require.ErrorIs(t, err, core.ErrEmptyGraph)
}

// TestBuild_InvalidPropagated: the validator's error reaches the caller
// unchanged.
func TestBuild_InvalidPropagated(t *testing.T) {
	_, err := core.Build([]core.Edge{core.NewEdge("A", "B", -1)})
	requireReason(t, err, core.ReasonNegativeWeight, 0)
	assert.NotErrorIs(t, err, core.ErrEmptyGraph)
}

func TestBuild_Adjacency(t *testing.T) {
	g, err := core.Build(sampleEdges())
	require.NoError(t, err)

	assert.Equal(t, 5, g.Len())
	assert.Equal(t, 7, g.EdgeCount())
	assert.Equal(t,
		[]core.Node{core.Text("A"), core.Text("B"), core.Text("C"), core.Text("D"), core.Text("E")},
		g.Nodes(), "first-seen order")

	out, ok := g.Neighbors(core.Text("C"))
	require.True(t, ok)
	assert.Equal(t, []core.Edge{core.NewEdge("C", "D", 8), core.NewEdge("C", "E", 10)}, out)

	// Sink node is a key with no outgoing edges.
	out, ok = g.Neighbors(core.Text("E"))
	require.True(t, ok)
	assert.Empty(t, out)
	assert.True(t, g.HasNode(core.Text("E")))
	assert.Equal(t, 0, g.OutDegree(core.Text("E")))

	_, ok = g.Neighbors(core.Text("Z"))
	assert.False(t, ok)
}

// TestBuild_KeySetIsEndpointUnion checks that keys equal the union of
// sources and destinations.
func TestBuild_KeySetIsEndpointUnion(t *testing.T) {
	edges := []core.Edge{
		core.NewEdge(1, 2, 1),
		core.NewEdge("x", 1, 0),
		core.NewEdge(3, 3, 2),
	}
	g, err := core.Build(edges)
	require.NoError(t, err)

	want := map[core.Node]bool{}
	for _, e := range edges {
		want[e.From] = true
		want[e.To] = true
	}
	got := map[core.Node]bool{}
	for _, n := range g.Nodes() {
		got[n] = true
	}
	assert.Equal(t, want, got)
}

// TestBuild_ParallelAndLoops keeps duplicates and self-loops in order.
func TestBuild_ParallelAndLoops(t *testing.T) {
	edges := []core.Edge{
		core.NewEdge("A", "B", 3),
		core.NewEdge("A", "A", 1),
		core.NewEdge("A", "B", 2),
	}
	g, err := core.Build(edges)
	require.NoError(t, err)
	out, _ := g.Neighbors(core.Text("A"))
	assert.Equal(t, edges, out)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, edges, g.Edges())
}

// TestBuild_DestinationDoesNotResetList: a node first seen as destination
// and later as source keeps all its outgoing edges.
func TestBuild_DestinationDoesNotResetList(t *testing.T) {
	g, err := core.Build([]core.Edge{
		core.NewEdge("B", "C", 1),
		core.NewEdge("A", "B", 1),
		core.NewEdge("B", "D", 1),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.OutDegree(core.Text("B")))
}

// TestBuild_CopiesAreIsolated: mutating returned slices never affects the graph.
func TestBuild_CopiesAreIsolated(t *testing.T) {
	in := sampleEdges()
	g, err := core.Build(in)
	require.NoError(t, err)

	in[0].Weight = 99
	out, _ := g.Neighbors(core.Text("A"))
	out[0].Weight = 100
	nodes := g.Nodes()
	nodes[0] = core.Text("Q")

	again, _ := g.Neighbors(core.Text("A"))
	assert.Equal(t, 4.0, again[0].Weight)
	assert.Equal(t, core.Text("A"), g.Nodes()[0])
}

func TestGraph_NilIsEmpty(t *testing.T) {
	var g *core.Graph
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasNode(core.Text("A")))
	assert.Nil(t, g.Nodes())
	assert.Nil(t, g.Edges())
	_, ok := g.Neighbors(core.Text("A"))
	assert.False(t, ok)
	g.Range(core.Text("A"), func(core.Edge) bool { t.Fatal("unexpected edge"); return true })
}

func TestGraph_RangeStops(t *testing.T) {
	g, err := core.Build(sampleEdges())
	require.NoError(t, err)
	var seen int
	g.Range(core.Text("B"), func(core.Edge) bool {
		seen++
		return false
	})
	assert.Equal(t, 1, seen)
}
