package terrain

import "fmt"

// New returns a width×height Map with every cell at DefaultElevation,
// no obstacles and neither start nor goal set.
// Non-positive dimensions yield an empty map where nothing is in bounds.
// Complexity: O(W×H) time and memory.
func New(width, height int) *Map {
	if width <= 0 || height <= 0 {
		return &Map{}
	}
	n := width * height
	m := &Map{
		width:     width,
		height:    height,
		elevation: make([]int, n),
		obstacle:  make([]bool, n),
	}
	for i := range m.elevation {
		m.elevation[i] = DefaultElevation
	}

	return m
}

// FromElevations builds a Map from a non-empty, rectangular grid indexed
// rows[y][x]. The input is copied.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNegativeElevation on bad input.
func FromElevations(rows [][]int) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
	}
	m := New(w, h)
	for y, row := range rows {
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("cell (%d,%d)=%d: %w", x, y, v, ErrNegativeElevation)
			}
			m.elevation[m.index(x, y)] = v
		}
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Map) Width() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.width
}

// Height returns the number of rows.
func (m *Map) Height() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.height
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (m *Map) InBounds(x, y int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inBounds(x, y)
}

// SetElevation overwrites the elevation at (x,y), clearing any obstacle
// there. It reports false, leaving the grid untouched, when (x,y) is out
// of bounds.
func (m *Map) SetElevation(x, y, value int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.inBounds(x, y) {
		return false
	}
	i := m.index(x, y)
	m.elevation[i] = value
	m.obstacle[i] = false

	return true
}

// AddObstacle marks (x,y) as a no-fly cell. It reports false when (x,y)
// is out of bounds.
// Start and goal are not cleared if they sit on the new obstacle.
func (m *Map) AddObstacle(x, y int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.inBounds(x, y) {
		return false
	}
	m.obstacle[m.index(x, y)] = true

	return true
}

// SetStart records (x,y) as the start cell. It reports false, leaving the
// previous start in place, when the cell is out of bounds or an obstacle.
func (m *Map) SetStart(x, y int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.isValid(x, y) {
		return false
	}
	m.start, m.hasStart = Cell{X: x, Y: y}, true

	return true
}

// SetGoal records (x,y) as the goal cell, with the same rules as SetStart.
func (m *Map) SetGoal(x, y int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.isValid(x, y) {
		return false
	}
	m.goal, m.hasGoal = Cell{X: x, Y: y}, true

	return true
}

// ClearStart unsets the start cell.
func (m *Map) ClearStart() {
	m.mu.Lock()
	m.hasStart = false
	m.mu.Unlock()
}

// ClearGoal unsets the goal cell.
func (m *Map) ClearGoal() {
	m.mu.Lock()
	m.hasGoal = false
	m.mu.Unlock()
}

// Start returns the start cell and whether it is set.
func (m *Map) Start() (Cell, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.start, m.hasStart
}

// Goal returns the goal cell and whether it is set.
func (m *Map) Goal() (Cell, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.goal, m.hasGoal
}

// IsValid reports whether (x,y) is in bounds and not an obstacle.
// Complexity: O(1).
func (m *Map) IsValid(x, y int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.isValid(x, y)
}

// IsObstacle reports whether (x,y) is an in-bounds no-fly cell.
func (m *Map) IsObstacle(x, y int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inBounds(x, y) && m.obstacle[m.index(x, y)]
}

// Elevation returns the elevation at (x,y). ok is false for out-of-bounds
// and obstacle cells, which have no elevation.
func (m *Map) Elevation(x, y int) (value int, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.isValid(x, y) {
		return 0, false
	}
	return m.elevation[m.index(x, y)], true
}

// Neighbors returns the valid orthogonal neighbours of c in expansion
// order: west, south, east, north. Obstacles and out-of-bounds cells are
// omitted.
func (m *Map) Neighbors(c Cell) []Cell {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if m.isValid(nx, ny) {
			out = append(out, Cell{X: nx, Y: ny})
		}
	}

	return out
}

// Clone returns a deep copy of m, including start and goal.
func (m *Map) Clone() *Map {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c := &Map{
		width:     m.width,
		height:    m.height,
		elevation: append([]int(nil), m.elevation...),
		obstacle:  append([]bool(nil), m.obstacle...),
		start:     m.start,
		goal:      m.goal,
		hasStart:  m.hasStart,
		hasGoal:   m.hasGoal,
	}

	return c
}

// index maps (x,y) to a row-major index: y*width + x.
func (m *Map) index(x, y int) int {
	return y*m.width + x
}

func (m *Map) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m *Map) isValid(x, y int) bool {
	return m.inBounds(x, y) && !m.obstacle[m.index(x, y)]
}
