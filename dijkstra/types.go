package dijkstra

// Options configures one Dijkstra run.
//
// Target    – optional vertex; the run stops once it has been popped.
// HasTarget – reports whether Target was set.
type Options[V comparable] struct {
	Target    V
	HasTarget bool
}

// Option represents a functional option for configuring Dijkstra.
type Option[V comparable] func(*Options[V])

// WithTarget stops the run as soon as target's distance is final.
// Distances of vertices not yet popped at that moment are upper bounds only.
func WithTarget[V comparable](target V) Option[V] {
	return func(o *Options[V]) {
		o.Target = target
		o.HasTarget = true
	}
}

// DefaultOptions returns Options for a full single-source run.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{}
}
