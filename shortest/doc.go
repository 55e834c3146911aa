// Package shortest is the query entry point: it inspects a graph's weight
// state, picks breadth-first search, Dijkstra or Bellman-Ford, and returns
// paths or distance trees.
//
// Selection (evaluated once per call):
//
//	g.Weighted() == false                      → BFS (hop count)
//	g.Weighted() && g.HasNegativeWeight()      → Bellman-Ford
//	g.Weighted() && !g.HasNegativeWeight()     → Dijkstra
//
// Queries:
//
//	Path(g, start, end)        Result{Path, Distance, Algorithm}
//	Tree(g, start)             *route.Tree (Dist + Parent for every vertex)
//	DenseDistances(start, e)   []int64, -1 for unreachable
//	AllPaths(g, start, end)    every simple path
//
// Representation of "unreachable", per surface:
//
//	Path            empty Path, Distance +Inf (BFS, Dijkstra)
//	                ErrInvalidEndNode (Bellman-Ford)
//	Tree            Dist[v] == +Inf, no Parent entry
//	DenseDistances  Unreachable (-1)
//
// Errors:
//
//	ErrInvalidVertex  - a queried vertex is not part of the graph.
//	ErrInvalidEndNode - Bellman-Ford could not reach the requested end.
//	ErrNegativeCycle  - a negative cycle is reachable from start.
//
// Logging: pass WithLogger(logrus.FieldLogger) to get debug entries about the
// chosen solver. By default nothing is logged.
package shortest
