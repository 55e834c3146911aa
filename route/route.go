// Package route holds the per-call result of a single-source solve and turns
// its parent links into ordered paths.
//
// A Tree is the distance record every solver returns:
//
//	Dist[v]   best known distance from Source, math.Inf(1) when unreached.
//	Parent[v] predecessor of v on one shortest path; absent for the source
//	          and for unreached vertices (tell them apart with Dist).
package route

import (
	"math"
	"slices"
)

// Tree is the distance and parent record produced by one solve from Source.
type Tree[V comparable] struct {
	Source V
	Dist   map[V]float64
	Parent map[V]V
}

// NewTree returns a Tree with every vertex unreached except source, at distance 0.
func NewTree[V comparable](source V, vertices []V) *Tree[V] {
	t := &Tree[V]{
		Source: source,
		Dist:   make(map[V]float64, len(vertices)),
		Parent: make(map[V]V, len(vertices)),
	}
	for _, v := range vertices {
		t.Dist[v] = math.Inf(1)
	}
	t.Dist[source] = 0

	return t
}

// Reachable reports whether v has a finite distance.
func (t *Tree[V]) Reachable(v V) bool {
	d, ok := t.Dist[v]

	return ok && !math.IsInf(d, 1)
}

// Distance returns Dist[v], or +Inf for vertices the tree does not know.
func (t *Tree[V]) Distance(v V) float64 {
	if d, ok := t.Dist[v]; ok {
		return d
	}

	return math.Inf(1)
}

// PathTo reconstructs Source→end from the parent links; nil if end is not reachable.
func (t *Tree[V]) PathTo(end V) []V {
	return Reconstruct(t.Parent, t.Source, end)
}

// Reconstruct follows parent links from end back to start and returns the
// path in start→end order, both inclusive. start == end yields [start].
//
// It returns nil when the chain breaks before reaching start, or when it
// runs longer than the parent map allows (a loop in the links).
func Reconstruct[V comparable](parent map[V]V, start, end V) []V {
	path := []V{end}
	for cur := end; cur != start; {
		prev, ok := parent[cur]
		if !ok || len(path) > len(parent) {
			return nil
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path
}
