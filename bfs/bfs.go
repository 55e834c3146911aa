package bfs

import (
	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/route"
)

func newWalker[V comparable](g *graph.Graph[V], start V) *walker[V] {
	n := g.VertexCount()
	w := &walker[V]{
		graph: g,
		queue: make([]queueItem[V], 0, n),
		seen:  make(map[V]bool, n),
		tree:  route.NewTree(start, g.Vertices()),
	}
	w.seen[start] = true
	w.queue = append(w.queue, queueItem[V]{id: start})

	return w
}

// ShortestPath returns the fewest-hop path from start to end.
// An unreachable end yields an empty path and a nil error.
func ShortestPath[V comparable](g *graph.Graph[V], start, end V) ([]V, error) {
	if start == end {
		return []V{start}, nil
	}
	if err := g.Validate(start, end); err != nil {
		return nil, err
	}

	w := newWalker(g, start)
	if w.run(end, true) {
		return w.tree.PathTo(end), nil
	}

	return []V{}, nil
}

// Tree runs a full breadth-first search from start and returns hop distances
// and parents for every vertex of g.
func Tree[V comparable](g *graph.Graph[V], start V) (*route.Tree[V], error) {
	if err := g.Validate(start); err != nil {
		return nil, err
	}

	w := newWalker(g, start)
	w.run(start, false)

	return w.tree, nil
}

// run drains the queue. With stopAtTarget it returns true as soon as target
// is discovered; otherwise it explores the whole component.
func (w *walker[V]) run(target V, stopAtTarget bool) bool {
	for len(w.queue) > 0 {
		item := w.dequeue()
		for _, nbr := range w.graph.Neighbors(item.id) {
			if w.seen[nbr] {
				continue
			}
			w.enqueue(nbr, item)
			if stopAtTarget && nbr == target {
				return true
			}
		}
	}

	return false
}

// enqueue marks id discovered, records its parent and depth, and queues it.
func (w *walker[V]) enqueue(id V, parent queueItem[V]) {
	d := parent.depth + 1
	w.seen[id] = true
	w.tree.Dist[id] = float64(d)
	w.tree.Parent[id] = parent.id
	w.queue = append(w.queue, queueItem[V]{id: id, depth: d})
}

func (w *walker[V]) dequeue() queueItem[V] {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}
