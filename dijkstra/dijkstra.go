package dijkstra

import (
	"math"

	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/indexheap"
	"github.com/katalvlaran/shortpath/route"
)

// Dijkstra computes shortest distances from source to every vertex of g and
// returns them with the parent links as a route.Tree.
//
// Preconditions and validation (in order):
//  1. source must be part of g (graph.ErrInvalidVertex).
//  2. If WithTarget is given, the target must be part of g (graph.ErrInvalidVertex).
//  3. g must not hold negative weights (not checked, see package doc).
func Dijkstra[V comparable](g *graph.Graph[V], source V, opts ...Option[V]) (*route.Tree[V], error) {
	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := g.Validate(source); err != nil {
		return nil, err
	}
	if cfg.HasTarget {
		if err := g.Validate(cfg.Target); err != nil {
			return nil, err
		}
	}

	r := &runner[V]{
		g:       g,
		options: cfg,
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.tree, nil
}

// ShortestPath returns the cheapest path start→end (inclusive) and its cost.
// start == end yields [start] at cost 0. An unreachable end yields an empty
// path and +Inf with a nil error.
func ShortestPath[V comparable](g *graph.Graph[V], start, end V) ([]V, float64, error) {
	if start == end {
		return []V{start}, 0, nil
	}
	tree, err := Dijkstra(g, start, WithTarget(end))
	if err != nil {
		return nil, 0, err
	}
	if !tree.Reachable(end) {
		return []V{}, math.Inf(1), nil
	}

	return tree.PathTo(end), tree.Dist[end], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable] struct {
	g       *graph.Graph[V]    // input graph; read-only here
	options Options[V]         // target, if any
	tree    *route.Tree[V]     // distances and parents
	pq      *indexheap.Heap[V] // every not-yet-finalised vertex
}

// init sets every distance to +Inf except the source and queues all vertices.
func (r *runner[V]) init(source V) {
	vertices := r.g.Vertices()
	r.tree = route.NewTree(source, vertices)

	entries := make([]indexheap.Entry[V], len(vertices))
	for i, v := range vertices {
		entries[i] = indexheap.Entry[V]{Vertex: v, Key: r.tree.Dist[v]}
	}
	r.pq = indexheap.New(entries)
}

// process pops vertices in distance order until the heap is empty, the
// smallest remaining distance is +Inf, or the target has been finalised.
func (r *runner[V]) process() error {
	for {
		item, ok := r.pq.Pop()
		if !ok || math.IsInf(item.Key, 1) {
			return nil
		}
		if err := r.relax(item.Vertex, item.Key); err != nil {
			return err
		}
		if r.options.HasTarget && item.Vertex == r.options.Target {
			return nil
		}
	}
}

// relax tries every outgoing edge of u, whose distance d is final.
func (r *runner[V]) relax(u V, d float64) error {
	for _, v := range r.g.Neighbors(u) {
		newDist := d + r.g.Weight(u, v)
		// strict: equal-cost alternatives keep the first parent found
		if newDist >= r.tree.Dist[v] {
			continue
		}
		r.tree.Dist[v] = newDist
		r.tree.Parent[v] = u
		if err := r.pq.DecreaseKey(v, newDist); err != nil {
			return err
		}
	}

	return nil
}
