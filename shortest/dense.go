package shortest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shortpath/graph"
)

// Arc is one outgoing edge in the dense form: {destination, weight}.
// Weights must lie within ±MaxArcWeight.
type Arc [2]int64

// MaxArcWeight is the largest arc weight, and the largest distance, the dense
// form accepts. Distances are computed in float64, which represents every
// integer up to 2^53 exactly.
const MaxArcWeight int64 = 1 << 53

// DenseDistances is the convenience form for graphs whose vertices are
// 0..len(edges)-1: edges[u] lists u's outgoing arcs. It returns the distance
// from start to every vertex, indexed by vertex, with Unreachable (-1) for
// vertices start cannot reach.
//
// The graph is always treated as weighted, so Dijkstra runs unless a weight
// is negative, in which case Bellman-Ford runs and may return ErrNegativeCycle.
//
// Errors:
//   - ErrInvalidVertex if start or an arc destination is out of range.
//   - ErrWeightRange if an arc weight, or a resulting distance, is beyond ±MaxArcWeight.
func DenseDistances(start int, edges [][]Arc, opts ...Option) ([]int64, error) {
	n := len(edges)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start %d outside [0,%d)", ErrInvalidVertex, start, n)
	}

	g := graph.New[int](graph.WithWeighted())
	for u := 0; u < n; u++ {
		g.AddVertex(u)
	}
	for u, arcs := range edges {
		for _, a := range arcs {
			v := int(a[0])
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: arc %d→%d outside [0,%d)", ErrInvalidVertex, u, v, n)
			}
			if w := a[1]; w > MaxArcWeight || w < -MaxArcWeight {
				return nil, fmt.Errorf("%w: arc %d→%d weight %d", ErrWeightRange, u, v, w)
			}
			g.AddEdge(u, v, float64(a[1]))
		}
	}

	tree, _, err := Tree(g, start, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]int64, n)
	for v := range out {
		d := tree.Dist[v]
		if math.IsInf(d, 1) {
			out[v] = Unreachable
			continue
		}
		if math.Abs(d) > float64(MaxArcWeight) {
			return nil, fmt.Errorf("%w: distance to %d is %g", ErrWeightRange, v, d)
		}
		out[v] = int64(d)
	}

	return out, nil
}
