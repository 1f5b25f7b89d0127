package terrain

import (
	"fmt"
	"sync"
)

// Default elevation assigned to every cell of a fresh Map.
const DefaultElevation = 1

// Climb and descent rates per unit of elevation difference, on top of the
// base cost of one step.
const (
	BaseCost    = 1.0
	ClimbRate   = 1.5
	DescentRate = 0.5
)

// Cell is a grid position. Cells are plain values; two cells with equal
// coordinates are the same cell.
type Cell struct {
	X, Y int
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction offsets in expansion order: west, south, east, north.
// Searches rely on this order for deterministic tie-breaking.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Map holds per-cell elevation and obstacle flags plus the optional start
// and goal cells. The zero value is an empty 0×0 map.
type Map struct {
	mu sync.RWMutex

	width, height int
	elevation     []int  // row-major, index y*width + x
	obstacle      []bool // row-major, true marks a no-fly cell

	start, goal       Cell
	hasStart, hasGoal bool
}
