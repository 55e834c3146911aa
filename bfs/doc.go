// Package bfs finds fewest-hop paths over a graph.Graph with breadth-first search.
//
// What
//
//   - ShortestPath(g, start, end): the path with the fewest edges, start and
//     end inclusive. start == end returns [start]; an unreachable end returns
//     an empty, non-nil path.
//   - Tree(g, start): hop distance and BFS parent for every vertex, as a
//     route.Tree (unreached vertices keep +Inf).
//
// Weights are ignored: every edge counts as one hop. Package shortest only
// routes here when the graph carries no weights at all.
//
// Determinism
//
//	Neighbours are expanded in adjacency insertion order, and a vertex keeps
//	the parent that discovered it first, so equal-length paths resolve to the
//	one whose edges were inserted earliest.
//
// Target detection
//
//	ShortestPath stops as soon as end is first enqueued. Because the queue is
//	FIFO and every vertex is enqueued once, the first discovery is at minimal
//	depth.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//	graph.ErrInvalidVertex - start or end is not part of the graph.
package bfs
