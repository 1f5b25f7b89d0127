package terrain

import "sort"

// Reachable returns every valid cell 4-connected to c, c included, sorted
// row-major. An invalid c yields nil.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (m *Map) Reachable(c Cell) []Cell {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.isValid(c.X, c.Y) {
		return nil
	}

	seen := make([]bool, m.width*m.height)
	i0 := m.index(c.X, c.Y)
	seen[i0] = true
	queue := []int{i0}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ux, uy := u%m.width, u/m.width
		for _, d := range neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !m.isValid(vx, vy) {
				continue
			}
			vi := m.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	sort.Ints(queue)
	out := make([]Cell, len(queue))
	for k, idx := range queue {
		out[k] = Cell{X: idx % m.width, Y: idx / m.width}
	}

	return out
}

// Connected reports whether a and b lie in the same 4-connected region of
// valid cells.
func (m *Map) Connected(a, b Cell) bool {
	for _, c := range m.Reachable(a) {
		if c == b {
			return true
		}
	}
	return false
}
