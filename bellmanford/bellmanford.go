// Package bellmanford implements the Bellman-Ford single-source shortest-path
// algorithm over a graph.Graph, tolerating negative edge weights and
// detecting negative cycles.
//
// Algorithm:
//
//  1. dist[source] = 0, every other vertex +Inf, no parents.
//  2. Up to V-1 passes over every edge: if dist[u] + w < dist[v], set
//     dist[v] and parent[v] = u. A pass without any update ends the loop early.
//  3. One more full pass. Any edge that still relaxes proves a negative cycle
//     reachable from the source; the call fails with ErrNegativeCycle. This
//     pass always runs, including after an early exit.
//
// Edges leaving a vertex that is still at +Inf are never relaxed, so a
// negative cycle the source cannot reach does not fail the call.
//
// Complexity: O(V·E) time, O(V) space.
package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/route"
)

// BellmanFord computes shortest distances and parents from source.
//
// Errors:
//   - graph.ErrInvalidVertex if source is not part of g.
//   - *CycleError (unwraps to ErrNegativeCycle) if a negative cycle is reachable.
func BellmanFord[V comparable](g *graph.Graph[V], source V) (*route.Tree[V], error) {
	if err := g.Validate(source); err != nil {
		return nil, err
	}

	tree := route.NewTree(source, g.Vertices())
	edges := g.Edges()
	for pass := 1; pass < g.VertexCount(); pass++ {
		if !relaxAll(tree, edges) {
			break
		}
	}

	// mandatory detection pass
	for _, e := range edges {
		if relaxable(tree, e) {
			return nil, &CycleError[V]{From: e.From, To: e.To, Weight: e.Weight}
		}
	}

	return tree, nil
}

// ShortestPath returns the cheapest path start→end (inclusive) and its cost.
// start == end yields [start] at cost 0 without running the solver.
//
// Errors:
//   - graph.ErrInvalidVertex if start is not part of g.
//   - ErrInvalidEndNode joined with graph.ErrInvalidVertex if end is not part of g.
//   - ErrNegativeCycle (via *CycleError) as for BellmanFord.
//   - ErrInvalidEndNode if end != start and end was never reached.
func ShortestPath[V comparable](g *graph.Graph[V], start, end V) ([]V, float64, error) {
	if start == end {
		return []V{start}, 0, nil
	}
	if err := g.Validate(end); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidEndNode, err)
	}
	tree, err := BellmanFord(g, start)
	if err != nil {
		return nil, 0, err
	}
	if _, ok := tree.Parent[end]; !ok {
		return nil, 0, fmt.Errorf("%w: %v is not reachable from %v", ErrInvalidEndNode, end, start)
	}

	return tree.PathTo(end), tree.Dist[end], nil
}

// relaxAll runs one pass over edges and reports whether anything changed.
func relaxAll[V comparable](tree *route.Tree[V], edges []graph.Edge[V]) bool {
	changed := false
	for _, e := range edges {
		if !relaxable(tree, e) {
			continue
		}
		tree.Dist[e.To] = tree.Dist[e.From] + e.Weight
		tree.Parent[e.To] = e.From
		changed = true
	}

	return changed
}

func relaxable[V comparable](tree *route.Tree[V], e graph.Edge[V]) bool {
	du := tree.Dist[e.From]
	if math.IsInf(du, 1) {
		return false
	}

	return du+e.Weight < tree.Dist[e.To]
}
