// Package shortpath answers single-source shortest-path queries over
// in-memory graphs, picking the right solver from the graph's weights.
//
// 🚀 What is shortpath?
//
//	A small, generic library plus a CLI that brings together:
//		• Graph model: insertion-ordered adjacency, weights per ordered pair
//		• Indexed min-heap with decrease-key
//		• Solvers: BFS (hop count), Dijkstra, Bellman-Ford
//		• Negative-cycle detection and path reconstruction
//		• Graph documents in YAML, TOML and JSON
//
// Selection rule, applied on every query:
//
//	no weights recorded      → BFS
//	some weight < 0 recorded → Bellman-Ford
//	otherwise                → Dijkstra
//
// Packages, leaves first:
//
//	graph/       — Graph[V], edges, weights, all simple paths
//	indexheap/   — Heap[V], binary min-heap with a vertex→slot index
//	route/       — Tree[V] (distances + parents) and path reconstruction
//	bfs/         — hop-count shortest path and hop-distance tree
//	dijkstra/    — non-negative weighted shortest paths
//	bellmanford/ — arbitrary weights, negative-cycle detection
//	shortest/    — the selector: Path, Tree, DenseDistances
//	graphfile/   — load and write graph documents
//	examples/    — runnable walkthroughs
//
// Quick ASCII example:
//
//	    A──4──B
//	    │     │
//	    2    -1
//	    │     │
//	    C──5──D
//
//	with a negative weight recorded, shortest.Path(g, "A", "D") runs Bellman-Ford.
//
// Command line:
//
//	go install github.com/katalvlaran/shortpath/cmd/shortpath@latest
//	shortpath path -g roads.yaml --from A --to D
package shortpath
