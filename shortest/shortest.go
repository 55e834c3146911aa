package shortest

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/bfs"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/route"
)

// Select picks the solver for g from its weight state:
//
//	no weights recorded        → BFS
//	weights, negative flag set → BellmanFord
//	weights, no negatives      → Dijkstra
func Select[V comparable](g *graph.Graph[V]) Algorithm {
	switch {
	case !g.Weighted():
		return BFS
	case g.HasNegativeWeight():
		return BellmanFord
	default:
		return Dijkstra
	}
}

// Path answers a start→end query.
//
// start == end returns {Path: [start], Distance: 0} before anything else runs,
// whatever the graph holds. Otherwise start must be part of g
// (ErrInvalidVertex) and the query is delegated to the solver chosen by Select.
//
// Missing end:
//   - BFS, Dijkstra: ErrInvalidVertex.
//   - BellmanFord: ErrInvalidEndNode, which also matches ErrInvalidVertex.
//
// Unreachable end:
//   - BFS, Dijkstra: empty Path, Distance +Inf, nil error.
//   - BellmanFord: ErrInvalidEndNode.
//
// A reachable negative cycle fails with ErrNegativeCycle.
func Path[V comparable](g *graph.Graph[V], start, end V, opts ...Option) (Result[V], error) {
	o := buildOptions(opts)
	algo := Select(g)
	if start == end {
		return Result[V]{Path: []V{start}, Distance: 0, Algorithm: algo}, nil
	}
	if err := g.Validate(start); err != nil {
		return Result[V]{}, err
	}
	// bellmanford.ShortestPath reports a missing end as ErrInvalidEndNode
	if algo != BellmanFord {
		if err := g.Validate(end); err != nil {
			return Result[V]{}, err
		}
	}

	log := o.Logger.WithFields(logrus.Fields{
		"algorithm": algo.String(),
		"start":     fmt.Sprint(start),
		"end":       fmt.Sprint(end),
	})
	log.Debug("solving shortest path")

	res := Result[V]{Algorithm: algo}
	switch algo {
	case BFS:
		p, err := bfs.ShortestPath(g, start, end)
		if err != nil {
			return Result[V]{}, err
		}
		res.Path = p
		res.Distance = hops(p)
	case Dijkstra:
		p, d, err := dijkstra.ShortestPath(g, start, end)
		if err != nil {
			return Result[V]{}, err
		}
		res.Path, res.Distance = p, d
	case BellmanFord:
		p, d, err := bellmanford.ShortestPath(g, start, end)
		if err != nil {
			log.WithError(err).Debug("bellman-ford failed")
			return Result[V]{}, err
		}
		res.Path, res.Distance = p, d
	}
	log.WithField("length", len(res.Path)).Debug("solved")

	return res, nil
}

// FindPath is a synonym for Path.
func FindPath[V comparable](g *graph.Graph[V], start, end V, opts ...Option) (Result[V], error) {
	return Path(g, start, end, opts...)
}

// Tree answers a query without an end vertex: distances and parents from
// start to every vertex of g, computed by the solver chosen by Select.
// Unreachable vertices keep +Inf and have no parent.
func Tree[V comparable](g *graph.Graph[V], start V, opts ...Option) (*route.Tree[V], Algorithm, error) {
	o := buildOptions(opts)
	algo := Select(g)
	o.Logger.WithFields(logrus.Fields{
		"algorithm": algo.String(),
		"start":     fmt.Sprint(start),
	}).Debug("solving single-source distances")

	var (
		tree *route.Tree[V]
		err  error
	)
	switch algo {
	case BFS:
		tree, err = bfs.Tree(g, start)
	case Dijkstra:
		tree, err = dijkstra.Dijkstra(g, start)
	case BellmanFord:
		tree, err = bellmanford.BellmanFord(g, start)
	}
	if err != nil {
		return nil, algo, err
	}

	return tree, algo, nil
}

// AllPaths lists every simple path start→end; see graph.Graph.AllPaths.
func AllPaths[V comparable](g *graph.Graph[V], start, end V) ([][]V, error) {
	return g.AllPaths(start, end)
}

// hops is the BFS distance of a path: edges walked, +Inf for an empty path.
func hops[V comparable](p []V) float64 {
	if len(p) == 0 {
		return math.Inf(1)
	}

	return float64(len(p) - 1)
}
