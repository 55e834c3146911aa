// File: types.go
// Role: Graph, Edge and WeightedPair types, construction options, sentinel errors.
//
// Determinism:
//   - Adjacency sequences keep insertion order; traversal tie-breaking depends on it.
//   - Vertices() follows first-seen order.
//
// Concurrency:
//   - None. A Graph is written by one goroutine and may be read concurrently only
//     once every AddEdge/AddVertex call has returned.
package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph queries.
var (
	// ErrInvalidVertex indicates a query referenced a vertex that is not part of the graph.
	ErrInvalidVertex = errors.New("graph: invalid vertex")
)

// DefaultWeight is the weight read for an edge that has no recorded weight.
const DefaultWeight = 1.0

// Edge is one stored adjacency entry together with the weight it reads as.
type Edge[V comparable] struct {
	From   V
	To     V
	Weight float64
}

// WeightedPair attaches a weight to an ordered (From, To) pair.
// It is the input shape of FromAdjacency.
type WeightedPair[V comparable] struct {
	From   V
	To     V
	Weight float64
}

// edgeKey is the ordered pair used to key recorded weights.
type edgeKey[V comparable] struct {
	from V
	to   V
}

// Option configures a Graph at construction time.
type Option func(*config)

type config struct {
	weighted   bool
	undirected bool
}

// WithWeighted starts the graph in weighted mode, so every edge records a
// weight (DefaultWeight when none is given) from the first AddEdge on.
func WithWeighted() Option {
	return func(c *config) { c.weighted = true }
}

// WithUndirected makes AddEdge store the reverse pair as well, with the same weight.
func WithUndirected() Option {
	return func(c *config) { c.undirected = true }
}

// Graph is an insertion-ordered adjacency multigraph with optional weights.
//
// A Graph becomes weighted as soon as one edge carries an explicit weight.
// Weights are keyed by the ordered pair, so parallel edges share the most
// recently recorded weight. The negative-weight flag is monotonic: once a
// negative weight has been stored it stays set for the lifetime of the Graph.
type Graph[V comparable] struct {
	undirected bool
	weighted   bool
	negative   bool

	adjacency map[V][]V
	weights   map[edgeKey[V]]float64

	order []V // first-seen vertex order
	seen  map[V]struct{}
	edges int
}

// New creates an empty, unweighted, directed Graph.
// Complexity: O(1).
func New[V comparable](opts ...Option) *Graph[V] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return &Graph[V]{
		undirected: c.undirected,
		weighted:   c.weighted,
		adjacency:  make(map[V][]V),
		weights:    make(map[edgeKey[V]]float64),
		seen:       make(map[V]struct{}),
	}
}

// FromAdjacency builds a Graph from a prebuilt adjacency mapping plus a list of
// weighted pairs. Adjacency entries are inserted first (unweighted unless a
// weighted option was given); the pairs are then recorded as weights, which
// turns the graph weighted when the list is non-empty.
//
// Vertex order follows Go map iteration for adjacency keys; the order of each
// adjacency sequence is preserved exactly.
func FromAdjacency[V comparable](adj map[V][]V, weights []WeightedPair[V], opts ...Option) *Graph[V] {
	g := New[V](opts...)
	for from, tos := range adj {
		g.touch(from)
		for _, to := range tos {
			g.appendEdge(from, to)
		}
	}
	for _, p := range weights {
		g.touch(p.From)
		g.touch(p.To)
		g.setWeight(p.From, p.To, p.Weight)
	}

	return g
}

// Validate returns nil when every given vertex is part of g, otherwise an
// error wrapping ErrInvalidVertex that names the first missing one.
func (g *Graph[V]) Validate(vertices ...V) error {
	for _, v := range vertices {
		if !g.HasVertex(v) {
			return fmt.Errorf("%w: %v", ErrInvalidVertex, v)
		}
	}

	return nil
}
