package graph

import "slices"

// pathFrame is one pending branch of the all-paths walk.
type pathFrame[V comparable] struct {
	at      V
	path    []V
	visited map[V]struct{}
}

// AllPaths returns every simple path from start to end, following adjacency
// order. Each path lists start and end inclusively; start == end yields [[start]].
//
// The walk is iterative: an explicit stack holds (vertex, partial path,
// visited set) frames and every branch owns its own copies, so deep or cyclic
// graphs cannot blow the call stack and siblings never share state.
//
// Errors: ErrInvalidVertex if start or end is unknown.
// Complexity: exponential in the worst case (the number of simple paths).
func (g *Graph[V]) AllPaths(start, end V) ([][]V, error) {
	if err := g.Validate(start, end); err != nil {
		return nil, err
	}

	var out [][]V
	stack := []pathFrame[V]{{
		at:      start,
		path:    []V{start},
		visited: map[V]struct{}{start: {}},
	}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.at == end {
			out = append(out, top.path)
			continue
		}

		next := g.adjacency[top.at]
		// push in reverse so the first neighbour is expanded first
		for i := len(next) - 1; i >= 0; i-- {
			nb := next[i]
			if _, ok := top.visited[nb]; ok {
				continue
			}
			visited := make(map[V]struct{}, len(top.visited)+1)
			for v := range top.visited {
				visited[v] = struct{}{}
			}
			visited[nb] = struct{}{}

			path := append(slices.Clip(top.path), nb)
			stack = append(stack, pathFrame[V]{at: nb, path: path, visited: visited})
		}
	}

	return out, nil
}
