package shortest_test

import (
	"testing"

	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/shortest"
)

// BenchmarkPath_Dijkstra routes a weighted chain with skip edges through the selector.
func BenchmarkPath_Dijkstra(b *testing.B) {
	const n = 500
	g := graph.New[int](graph.WithWeighted())
	for i := 0; i < n-1; i++ {
		g.AddEdge(i, i+1, 1)
		if i+7 < n {
			g.AddEdge(i, i+7, 5)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = shortest.Path(g, 0, n-1)
	}
}
