package search

import (
	"container/heap"
	"time"

	"github.com/katalvlaran/skyroute/terrain"
)

// runner holds the mutable state for a single search execution.
type runner struct {
	m       *terrain.Map                  // read-only during the search
	options Options                       // observation hooks
	start   terrain.Cell                  // source of the parent forest
	goal    terrain.Cell                  // target; popping it ends the search
	parent  map[terrain.Cell]terrain.Cell // predecessor for path reconstruction
	closed  map[terrain.Cell]struct{}     // cells already expanded
	pq      frontier                      // min-heap with lazy decrease-key
	visited int                           // frontier pops, stale included
}

// newRunner snapshots start and goal and allocates fresh search state.
// ok is false when m is nil or either endpoint is unset.
func newRunner(m *terrain.Map, opts []Option) (r *runner, ok bool) {
	if m == nil {
		return nil, false
	}
	start, hasStart := m.Start()
	goal, hasGoal := m.Goal()
	if !hasStart || !hasGoal {
		return nil, false
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := m.Width() * m.Height()
	r = &runner{
		m:       m,
		options: cfg,
		start:   start,
		goal:    goal,
		parent:  make(map[terrain.Cell]terrain.Cell, n),
		closed:  make(map[terrain.Cell]struct{}, n),
		pq:      make(frontier, 0, n),
	}
	heap.Init(&r.pq)

	return r, true
}

// push adds c to the frontier with the given priority key.
func (r *runner) push(c terrain.Cell, key float64) {
	r.options.OnEnqueue(c, key)
	heap.Push(&r.pq, entry{cell: c, key: key})
}

// run pops cells in priority order until the goal is popped or the frontier
// is empty. Each non-closed valid neighbour of an expanded cell is handed
// to expand, which decides whether to record a parent and push.
// Returns the start→goal path, or nil when the frontier is exhausted.
func (r *runner) run(expand func(cur, next terrain.Cell)) []terrain.Cell {
	for r.pq.Len() > 0 {
		// 1) Pop the lowest-key entry. Every pop is a visit, stale or not.
		cur := heap.Pop(&r.pq).(entry).cell
		r.visited++
		r.options.OnDequeue(cur, r.visited)

		// 2) The goal ends the search as soon as it leaves the frontier.
		if cur == r.goal {
			return r.path(cur)
		}

		// 3) Stale duplicate of an already expanded cell: counted, not expanded.
		if _, done := r.closed[cur]; done {
			continue
		}
		r.closed[cur] = struct{}{}

		// 4) Offer each open neighbour, west, south, east, north, to expand.
		for _, next := range r.m.Neighbors(cur) {
			if _, done := r.closed[next]; done {
				continue
			}
			expand(cur, next)
		}
	}

	return nil
}

// path follows parent links back from at and returns them start-first.
func (r *runner) path(at terrain.Cell) []terrain.Cell {
	out := []terrain.Cell{at}
	for {
		p, ok := r.parent[at]
		if !ok {
			break
		}
		out = append(out, p)
		at = p
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// result packages the outcome of run.
func (r *runner) result(path []terrain.Cell, elapsed time.Duration) Result {
	res := Result{Path: path, Visited: r.visited, Elapsed: elapsed}
	if path != nil {
		res.Cost = r.m.PathCost(path)
	}

	return res
}
