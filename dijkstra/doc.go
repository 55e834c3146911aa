// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// over a graph.Graph with non-negative weights, on top of an indexed
// decrease-key heap (package indexheap).
//
// Overview:
//
//   - Every vertex is queued up front: the source at 0, everything else at +Inf.
//   - The minimum is popped; a popped +Inf means the rest is unreachable and the
//     loop ends early.
//   - Each outgoing edge is relaxed with a strict "<"; on improvement the
//     distance and parent are updated and the heap entry is lowered in place
//     with DecreaseKey. No stale duplicates are ever pushed.
//   - WithTarget(v) stops as soon as v has been popped: its distance is final.
//
// Precondition:
//
//	The graph must not contain negative weights. This package does not check it;
//	package shortest routes negative-weight graphs to Bellman-Ford instead.
//	DecreaseKey only ever lowers a key because relaxation never raises a
//	tentative distance, which is what keeps the sift-up-only heap correct.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Unreachable vertices:
//
//	Tree.Dist[v] == +Inf and no Parent entry. ShortestPath returns an empty path
//	and +Inf rather than an error.
//
// Errors (sentinel):
//
//	graph.ErrInvalidVertex - source or target is not part of the graph.
//	indexheap.ErrNotQueued - a negative edge led back into a finalised vertex
//	                         (the precondition above was violated).
package dijkstra
