package search

import (
	"time"

	"github.com/katalvlaran/skyroute/terrain"
)

// AStar runs cost-aware informed search from m's start to m's goal.
//
// Priority key is g + Manhattan, where g is the accumulated terrain cost.
// A neighbour is (re)parented and pushed whenever its tentative g is
// strictly lower than the best recorded one.
//
// Returns the zero Result if m is nil or start/goal are unset.
// Complexity: O(N log N) time, O(N) space for N cells.
func AStar(m *terrain.Map, opts ...Option) Result {
	return costAware(m, Manhattan, opts)
}

// Dijkstra runs uniform-cost search: AStar with a zero heuristic. It pops
// more cells than AStar but returns a path of the same cost.
func Dijkstra(m *terrain.Map, opts ...Option) Result {
	return costAware(m, zeroHeuristic, opts)
}

// costAware is the shared g-score loop behind AStar and Dijkstra.
func costAware(m *terrain.Map, h Heuristic, opts []Option) Result {
	r, ok := newRunner(m, opts)
	if !ok {
		return Result{}
	}

	begin := time.Now()
	// 1) g-scores; the start costs nothing to reach.
	g := make(map[terrain.Cell]float64, cap(r.pq))
	g[r.start] = 0

	// 2) Seed the frontier with the start keyed by its estimate alone.
	r.push(r.start, h(r.start, r.goal))

	// 3) Relax: keep a route only when strictly cheaper than the best known,
	//    then push again; the older entry turns stale.
	path := r.run(func(cur, next terrain.Cell) {
		tentative := g[cur] + r.m.Cost(cur, next)
		if best, seen := g[next]; seen && tentative >= best {
			return
		}
		r.parent[next] = cur
		g[next] = tentative
		r.push(next, tentative+h(next, r.goal))
	})

	return r.result(path, time.Since(begin))
}
