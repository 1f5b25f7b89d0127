// Package search finds drone flight paths over a terrain.Map.
//
// Three strategies share one frontier-expansion loop:
//
//   - AStar:    cost-aware informed search; priority = g(cell) + h(cell).
//   - Greedy:   greedy best-first search; priority = h(cell), first
//     discovery wins, accumulated cost is never tracked.
//   - Dijkstra: uniform-cost search; priority = g(cell). Same result cost as
//     AStar without the heuristic's guidance.
//
// h is the Manhattan distance to the goal. Every step costs at least 1
// (terrain.BaseCost), so h never overestimates and AStar returns
// cost-optimal paths. Greedy does not; it usually pops fewer cells and may
// return a costlier route.
//
// Expansion order:
//
//   - Neighbours are examined west, south, east, north.
//   - Frontier ties on the priority key are broken by X, then by Y
//     (lexicographic on the cell). Together these fix which of several
//     equal-cost paths is returned.
//
// Frontier:
//
//   - Binary min-heap with lazy decrease-key: an improved cell is pushed
//     again and its stale entry is discarded when popped, after it has been
//     counted as a visit.
//
// Result:
//
//   - Path from start to goal inclusive, nil when the goal is unreachable.
//   - Visited counts every frontier pop, stale duplicates included.
//   - Elapsed covers the search loop only.
//   - With start or goal unset the zero Result is returned immediately;
//     an unreachable goal yields a nil Path with Visited > 0.
//
// Complexity:
//
//   - Time:  O(N log N) for N = W×H cells (each cell pushes at most 4 entries).
//   - Space: O(N).
//
// Thread safety:
//
//   - Each call owns its state. Any number of searches may run
//     concurrently on the same terrain.Map.
package search
