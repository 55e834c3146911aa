// File: graph.go
// Role: Edge insertion and read-only queries over the adjacency model.
//
// Insertion is permissive: AddEdge and AddVertex never fail. Vertex checks
// happen at query time (Validate, solvers).
package graph

import "slices"

// AddVertex registers v without any edges. Idempotent.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) {
	g.touch(v)
}

// AddEdge appends to onto from's adjacency sequence.
//
// Weight handling:
//   - weight given: it is recorded for (from,to) and the graph becomes weighted;
//     a negative value sets the negative-weight flag for good.
//   - no weight on a weighted graph: DefaultWeight is recorded.
//   - no weight on an unweighted graph: nothing is recorded.
//
// Only the first value of weight is used. On an undirected graph the reverse
// pair is stored the same way.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(from, to V, weight ...float64) {
	g.touch(from)
	g.touch(to)
	g.insert(from, to, weight)
	if g.undirected && from != to {
		g.insert(to, from, weight)
	}
}

func (g *Graph[V]) insert(from, to V, weight []float64) {
	g.appendEdge(from, to)
	switch {
	case len(weight) > 0:
		g.setWeight(from, to, weight[0])
	case g.weighted:
		g.setWeight(from, to, DefaultWeight)
	}
}

func (g *Graph[V]) appendEdge(from, to V) {
	g.touch(to)
	g.adjacency[from] = append(g.adjacency[from], to)
	g.edges++
}

// setWeight records w for the ordered pair. The negative flag is only ever raised here.
func (g *Graph[V]) setWeight(from, to V, w float64) {
	g.weights[edgeKey[V]{from: from, to: to}] = w
	g.weighted = true
	if w < 0 {
		g.negative = true
	}
}

// touch records v in first-seen order.
func (g *Graph[V]) touch(v V) {
	if _, ok := g.seen[v]; ok {
		return
	}
	g.seen[v] = struct{}{}
	g.order = append(g.order, v)
}

// Neighbors returns a copy of v's adjacency sequence in insertion order.
// Unknown vertices and vertices without outgoing edges yield an empty slice.
// Complexity: O(deg(v)).
func (g *Graph[V]) Neighbors(v V) []V {
	out := slices.Clone(g.adjacency[v])
	if out == nil {
		return []V{}
	}

	return out
}

// Weight returns the recorded weight of (from,to), or DefaultWeight when none was recorded.
// Complexity: O(1).
func (g *Graph[V]) Weight(from, to V) float64 {
	if w, ok := g.weights[edgeKey[V]{from: from, to: to}]; ok {
		return w
	}

	return DefaultWeight
}

// HasVertex reports whether v was seen as an edge endpoint or added with AddVertex.
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.seen[v]

	return ok
}

// HasEdge reports whether to appears in from's adjacency sequence.
func (g *Graph[V]) HasEdge(from, to V) bool {
	return slices.Contains(g.adjacency[from], to)
}

// Vertices returns every known vertex in first-seen order.
func (g *Graph[V]) Vertices() []V {
	return slices.Clone(g.order)
}

// Edges returns every adjacency entry as an Edge, grouped by source in
// first-seen vertex order, each group in insertion order. Parallel edges are
// repeated. Complexity: O(V+E).
func (g *Graph[V]) Edges() []Edge[V] {
	out := make([]Edge[V], 0, g.edges)
	for _, from := range g.order {
		for _, to := range g.adjacency[from] {
			out = append(out, Edge[V]{From: from, To: to, Weight: g.Weight(from, to)})
		}
	}

	return out
}

// VertexCount returns the number of known vertices.
func (g *Graph[V]) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of stored adjacency entries (mirrors included).
func (g *Graph[V]) EdgeCount() int { return g.edges }

// Weighted reports whether any weight has been recorded, or the graph was built WithWeighted.
func (g *Graph[V]) Weighted() bool { return g.weighted }

// HasNegativeWeight reports whether a negative weight was ever recorded.
// The flag is never cleared, even if the pair is later re-weighted.
func (g *Graph[V]) HasNegativeWeight() bool { return g.negative }

// Undirected reports whether AddEdge mirrors edges.
func (g *Graph[V]) Undirected() bool { return g.undirected }
