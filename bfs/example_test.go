package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/shortpath/bfs"
	"github.com/katalvlaran/shortpath/graph"
)

// ExampleShortestPath finds the fewest-hop route when two routes compete:
// A–B–C–D–K (4 hops) and A–E–F–K (3 hops).
func ExampleShortestPath() {
	g := graph.New[string](graph.WithUndirected())
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "D")
	g.AddEdge("D", "K")
	g.AddEdge("A", "E")
	g.AddEdge("E", "F")
	g.AddEdge("F", "K")

	path, err := bfs.ShortestPath(g, "A", "K")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output: [A E F K]
}
