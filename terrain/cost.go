package terrain

import "math"

// Cost returns the energy needed to fly from one cell to an adjacent one.
//
//   - +Inf if either cell is an obstacle or out of bounds.
//   - climbing:        BaseCost + |Δe|·ClimbRate
//   - level/descending: BaseCost + |Δe|·DescentRate
//
// The result is never below BaseCost for traversable cells. Adjacency is
// not checked.
// Complexity: O(1).
func (m *Map) Cost(from, to Cell) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cost(from, to)
}

func (m *Map) cost(from, to Cell) float64 {
	if !m.isValid(from.X, from.Y) || !m.isValid(to.X, to.Y) {
		return math.Inf(1)
	}
	ef := m.elevation[m.index(from.X, from.Y)]
	et := m.elevation[m.index(to.X, to.Y)]
	diff := float64(et - ef)
	if et > ef {
		return BaseCost + diff*ClimbRate
	}

	return BaseCost + -diff*DescentRate
}

// PathCost sums Cost over consecutive cells of path. Paths with fewer than
// two cells cost 0. A path crossing an obstacle costs +Inf.
// Complexity: O(len(path)).
func (m *Map) PathCost(path []Cell) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += m.cost(path[i-1], path[i])
	}

	return total
}

// Adjacent reports whether a and b differ by exactly one orthogonal step.
func Adjacent(a, b Cell) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}
