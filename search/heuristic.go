package search

import "github.com/katalvlaran/skyroute/terrain"

// Heuristic estimates the remaining cost from c to goal.
type Heuristic func(c, goal terrain.Cell) float64

// Manhattan returns |goal.X-c.X| + |goal.Y-c.Y|. With every step costing
// at least terrain.BaseCost it never overestimates, and it is consistent.
func Manhattan(c, goal terrain.Cell) float64 {
	dx, dy := goal.X-c.X, goal.Y-c.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

func zeroHeuristic(terrain.Cell, terrain.Cell) float64 { return 0 }
