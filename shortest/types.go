package shortest

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/graph"
)

// Error kinds surfaced by this package, re-exported from the solver packages
// so callers can match them without importing each one.
var (
	ErrInvalidVertex  = graph.ErrInvalidVertex
	ErrInvalidEndNode = bellmanford.ErrInvalidEndNode
	ErrNegativeCycle  = bellmanford.ErrNegativeCycle
)

// ErrWeightRange is returned by DenseDistances when a weight or distance
// cannot be carried exactly through float64.
var ErrWeightRange = errors.New("shortest: weight out of range")

// Unreachable is the DenseDistances value for a vertex the start cannot reach.
const Unreachable int64 = -1

// Algorithm names the solver chosen for a graph.
type Algorithm int

const (
	// BFS counts hops; chosen when the graph carries no weights.
	BFS Algorithm = iota
	// Dijkstra is chosen for weighted graphs without negative weights.
	Dijkstra
	// BellmanFord is chosen once any negative weight was recorded.
	BellmanFord
)

func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case Dijkstra:
		return "dijkstra"
	case BellmanFord:
		return "bellman-ford"
	default:
		return "unknown"
	}
}

// Result is the answer to a start→end query.
//
// Path      – start→end inclusive; empty when end is unreachable (BFS, Dijkstra).
// Distance  – total weight (hop count under BFS); +Inf when unreachable.
// Algorithm – the solver that produced the answer.
type Result[V comparable] struct {
	Path      []V
	Distance  float64
	Algorithm Algorithm
}

// Options configures a query.
type Options struct {
	Logger logrus.FieldLogger
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// WithLogger routes debug output about solver selection to l.
// A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options whose logger discards everything.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
