package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/core"
)

// collect drains a Neighbors sequence into parallel slices.
func collect(g *core.Graph, u int) ([]int, []int64) {
	var ids []int
	var ws []int64
	for v, w := range g.Neighbors(u) {
		ids = append(ids, v)
		ws = append(ws, w)
	}

	return ids, ws
}

// TestNewGraph_BadNodeCount verifies that a negative size is rejected.
func TestNewGraph_BadNodeCount(t *testing.T) {
	_, err := core.NewGraph(-1)
	require.ErrorIs(t, err, core.ErrBadNodeCount)
}

// TestNewGraph_Empty verifies the zero-node graph is legal and inert.
func TestNewGraph_Empty(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.ErrorIs(t, g.AddEdge(0, 0, 1), core.ErrInvalidNode)
}

// TestAddEdge_Validation verifies endpoint bounds are checked at the call site.
func TestAddEdge_Validation(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	cases := []struct {
		name string
		u, v int
	}{
		{"NegativeU", -1, 0},
		{"NegativeV", 0, -1},
		{"UTooLarge", 3, 0},
		{"VTooLarge", 0, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.AddEdge(tc.u, tc.v, 1), core.ErrInvalidNode)
		})
	}
	// a failed AddEdge must leave the graph untouched
	assert.Equal(t, 0, g.EdgeCount())
}

// TestAddEdge_UndirectedMirrors verifies both adjacency rows gain an entry.
func TestAddEdge_UndirectedMirrors(t *testing.T) {
	g, _ := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1, 7))

	ids0, ws0 := collect(g, 0)
	ids1, _ := collect(g, 1)
	assert.Equal(t, []int{1}, ids0)
	assert.Equal(t, []int64{7}, ws0)
	assert.Equal(t, []int{0}, ids1)

	// recorded once in the flat edge list
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 7}}, g.Edges())
}

// TestAddEdge_DirectedOneWay verifies no mirror entry for directed graphs.
func TestAddEdge_DirectedOneWay(t *testing.T) {
	g, _ := core.NewGraph(2, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 1))

	ids0, _ := collect(g, 0)
	ids1, _ := collect(g, 1)
	assert.Equal(t, []int{1}, ids0)
	assert.Empty(t, ids1)
	assert.True(t, g.Directed())
}

// TestNeighbors_InsertionOrder verifies adjacency preserves AddEdge order,
// including parallel edges, which are kept as distinct entries.
func TestNeighbors_InsertionOrder(t *testing.T) {
	g, _ := core.NewGraph(4, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 3, 1))
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 2, 3))
	require.NoError(t, g.AddEdge(0, 1, 4)) // parallel to the second edge

	ids, ws := collect(g, 0)
	assert.Equal(t, []int{3, 1, 2, 1}, ids)
	assert.Equal(t, []int64{1, 2, 3, 4}, ws)
}

// TestNeighbors_Restartable verifies the sequence can be ranged twice
// and supports early break.
func TestNeighbors_Restartable(t *testing.T) {
	g, _ := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))

	seq := g.Neighbors(0)
	var first []int
	for v := range seq {
		first = append(first, v)
		break // early termination must be safe
	}
	var second []int
	for v := range seq {
		second = append(second, v)
	}
	assert.Equal(t, []int{1}, first)
	assert.Equal(t, []int{1, 2}, second)
}

// TestNeighbors_OutOfRange verifies invalid indices yield an empty sequence.
func TestNeighbors_OutOfRange(t *testing.T) {
	g, _ := core.NewGraph(1)
	for range g.Neighbors(5) {
		t.Fatal("sequence for out-of-range node must be empty")
	}
	for range g.Neighbors(-1) {
		t.Fatal("sequence for negative node must be empty")
	}
}

// TestSelfLoop verifies a self-loop is stored once even when undirected.
func TestSelfLoop(t *testing.T) {
	g, _ := core.NewGraph(1)
	require.NoError(t, g.AddEdge(0, 0, 2))

	ids, _ := collect(g, 0)
	assert.Equal(t, []int{0}, ids)

	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 1, d)
}

// TestDegreeAndEdgesCopy verifies Degree bounds and that Edges returns a copy.
func TestDegreeAndEdgesCopy(t *testing.T) {
	g, _ := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1, 5))

	_, err := g.Degree(9)
	assert.ErrorIs(t, err, core.ErrInvalidNode)

	edges := g.Edges()
	edges[0].Weight = 99
	assert.Equal(t, int64(5), g.Edges()[0].Weight, "Edges must return a defensive copy")
}
