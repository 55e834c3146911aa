package bfs

import (
	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/route"
)

// queueItem pairs a vertex with its hop depth from the start.
type queueItem[V comparable] struct {
	id    V
	depth int
}

// walker encapsulates mutable BFS state for one call.
type walker[V comparable] struct {
	graph *graph.Graph[V]
	queue []queueItem[V]
	seen  map[V]bool
	tree  *route.Tree[V]
}
