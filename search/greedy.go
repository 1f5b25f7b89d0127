package search

import (
	"time"

	"github.com/katalvlaran/skyroute/terrain"
)

// Greedy runs greedy best-first search from m's start to m's goal.
//
// Priority key is the Manhattan distance alone. A neighbour is parented
// and pushed only the first time it is discovered; later routes to it are
// ignored, so every cell enters the frontier at most once and the search
// pops at most W×H cells. The path is valid but not cost-minimal.
//
// Returns the zero Result if m is nil or start/goal are unset.
func Greedy(m *terrain.Map, opts ...Option) Result {
	r, ok := newRunner(m, opts)
	if !ok {
		return Result{}
	}

	begin := time.Now()
	r.push(r.start, Manhattan(r.start, r.goal))

	path := r.run(func(cur, next terrain.Cell) {
		if _, seen := r.parent[next]; seen {
			return
		}
		r.parent[next] = cur
		r.push(next, Manhattan(next, r.goal))
	})

	return r.result(path, time.Since(begin))
}
