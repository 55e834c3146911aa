package bellmanford

import (
	"errors"
	"fmt"
)

// Sentinel errors for Bellman-Ford.
var (
	// ErrNegativeCycle indicates that a cycle of negative total weight is
	// reachable from the source, so shortest distances are undefined.
	ErrNegativeCycle = errors.New("bellmanford: negative weight cycle")

	// ErrInvalidEndNode indicates that the requested end vertex has no path from the start.
	ErrInvalidEndNode = errors.New("bellmanford: invalid end node")
)

// CycleError reports the edge that could still be relaxed after the
// stabilisation passes. It unwraps to ErrNegativeCycle.
type CycleError[V comparable] struct {
	From, To V
	Weight   float64
}

func (e *CycleError[V]) Error() string {
	return fmt.Sprintf("%v: edge %v→%v (weight %g) still relaxes", ErrNegativeCycle, e.From, e.To, e.Weight)
}

func (e *CycleError[V]) Unwrap() error { return ErrNegativeCycle }
