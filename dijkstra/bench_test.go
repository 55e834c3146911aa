package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graph"
)

// BenchmarkDijkstra_Grid runs a full solve on a 64×64 directed grid.
func BenchmarkDijkstra_Grid(b *testing.B) {
	const side = 64
	g := graph.New[int]()
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			v := r*side + c
			if c+1 < side {
				g.AddEdge(v, v+1, float64(1+(v%7)))
			}
			if r+1 < side {
				g.AddEdge(v, v+side, float64(1+(v%5)))
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, 0)
	}
}
