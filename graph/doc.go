// Package graph provides the adjacency model every shortpath solver reads from.
//
// A Graph[V] maps each vertex to an ordered sequence of destination vertices.
// Order is insertion order and it matters: breadth-first search breaks ties
// by it. Vertices are any comparable Go value (int, string, small structs).
//
// Weights:
//
//   - A Graph starts unweighted. The first AddEdge that passes a weight, or a
//     FromAdjacency call with weighted pairs, makes it weighted for good.
//   - Edges that never received a weight read as DefaultWeight (1).
//   - Weights are keyed by the ordered pair (from,to). Parallel edges are
//     allowed and share the most recent weight of their pair.
//   - HasNegativeWeight() is monotonic: once a weight < 0 has been stored it
//     stays true, even if that pair is later overwritten.
//
// The two flags drive algorithm selection in package shortest:
//
//	Weighted() == false              → breadth-first search (hop count)
//	Weighted() && !HasNegativeWeight → Dijkstra
//	Weighted() && HasNegativeWeight  → Bellman-Ford
//
// Errors:
//
//	ErrInvalidVertex - a query referenced a vertex the graph has never seen.
//
// Insertion never fails; validation is left to queries.
//
// Example:
//
//	g := graph.New[string]()
//	g.AddEdge("A", "B", 4)
//	g.AddEdge("B", "C")     // weighted graph, reads as 1
//	g.Neighbors("A")        // [B]
//	g.Weight("B", "C")      // 1
package graph
