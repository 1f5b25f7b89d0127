// Package terrain models a 2D elevation grid over which a drone plans a flight.
//
// What:
//
//   - Map stores width×height cells row-major; each cell is either an
//     elevation (1..9 by convention, any non-negative int accepted) or a
//     no-fly obstacle.
//   - Start and Goal are optional cells, settable only on valid cells.
//   - Cost derives the energy spent moving between two adjacent cells from
//     their elevation difference; climbing costs three times as much as
//     descending per unit of height.
//   - Reachable collects the 4-connected region of valid cells around a cell.
//
// Why:
//
//   - Search strategies query validity and cost at every expansion, so all
//     lookups are O(1) on a flat slice.
//   - Mutators report failure with a boolean instead of an error: an
//     out-of-bounds write is an expected outcome for callers sweeping
//     coordinates, not an exceptional one.
//
// Complexity:
//
//   - New:        O(W×H) time and memory.
//   - Set*/Is*:   O(1).
//   - Cost:       O(1).
//   - Reachable:  O(W×H) time and memory (BFS over 4 neighbours).
//
// Thread safety:
//
//   - Map guards its cells with a sync.RWMutex. Queries take the read lock,
//     mutators the write lock, so any number of searches may share one Map.
package terrain
