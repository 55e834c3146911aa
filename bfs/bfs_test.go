package bfs_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/bfs"
	"github.com/katalvlaran/shortpath/graph"
)

// treeNetwork builds the undirected 10-vertex tree used by several tests:
//
//	      1
//	    / | \
//	   2  6  3
//	  /\  /\  /\
//	 4 5 9 10 7 8
func treeNetwork() *graph.Graph[int] {
	g := graph.New[int](graph.WithUndirected())
	for _, e := range [][2]int{
		{1, 2}, {2, 4}, {2, 5}, {1, 6}, {6, 9}, {6, 10}, {1, 3}, {3, 7}, {3, 8},
	} {
		g.AddEdge(e[0], e[1])
	}

	return g
}

func TestShortestPath_TreeNetwork(t *testing.T) {
	g := treeNetwork()
	cases := []struct {
		from, to int
		want     []int
	}{
		{4, 2, []int{4, 2}},
		{6, 9, []int{6, 9}},
		{10, 2, []int{10, 6, 1, 2}},
		{5, 1, []int{5, 2, 1}},
		{4, 8, []int{4, 2, 1, 3, 8}},
	}
	for _, tc := range cases {
		got, err := bfs.ShortestPath(g, tc.from, tc.to)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%d→%d", tc.from, tc.to)
	}
}

func TestShortestPath_Letters(t *testing.T) {
	g := graph.FromAdjacency(map[string][]string{
		"A": {"B", "E", "C"},
		"B": {"A", "D", "E"},
		"C": {"A", "F", "G"},
		"D": {"B", "E"},
		"E": {"A", "B", "D"},
		"F": {"C"},
		"G": {"C"},
	}, nil)

	got, err := bfs.ShortestPath(g, "D", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "B", "A"}, got, "tie broken by adjacency order")

	got, err = bfs.ShortestPath(g, "G", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"G", "C", "A", "B", "D"}, got)
}

func TestShortestPath_SameVertex(t *testing.T) {
	g := graph.New[string]()
	got, err := bfs.ShortestPath(g, "X", "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, got)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("A", "B")
	g.AddEdge("C", "A")

	got, err := bfs.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestShortestPath_CycleBackToStart(t *testing.T) {
	g := graph.New[int]()
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(1, 2)

	got, err := bfs.ShortestPath(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestShortestPath_InvalidVertex(t *testing.T) {
	g := treeNetwork()

	_, err := bfs.ShortestPath(g, 1, 42)
	assert.True(t, errors.Is(err, graph.ErrInvalidVertex))
	_, err = bfs.ShortestPath(g, 42, 1)
	assert.True(t, errors.Is(err, graph.ErrInvalidVertex))
}

func TestTree(t *testing.T) {
	g := treeNetwork()
	g.AddVertex(99)

	tr, err := bfs.Tree(g, 1)
	require.NoError(t, err)

	assert.Equal(t, 0.0, tr.Dist[1])
	assert.Equal(t, 1.0, tr.Dist[6])
	assert.Equal(t, 2.0, tr.Dist[10])
	assert.True(t, math.IsInf(tr.Dist[99], 1))
	assert.Equal(t, []int{1, 3, 7}, tr.PathTo(7))
	_, hasParent := tr.Parent[1]
	assert.False(t, hasParent)

	_, err = bfs.Tree(g, -1)
	assert.True(t, errors.Is(err, graph.ErrInvalidVertex))
}
