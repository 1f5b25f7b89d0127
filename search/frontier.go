package search

import "github.com/katalvlaran/skyroute/terrain"

// entry is a frontier item: a discovered cell and its priority key.
type entry struct {
	cell terrain.Cell
	key  float64
}

// frontier is a min-heap of entries ordered by key, then cell X, then cell
// Y. Duplicates are allowed: a cell whose key improves is pushed again and
// the outdated entry is discarded when popped (checked via the closed set).
type frontier []entry

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by key ascending; equal keys fall back to the cell
// coordinates so the pop order never depends on insertion history.
func (f frontier) Less(i, j int) bool {
	a, b := f[i], f[j]
	if a.key != b.key {
		return a.key < b.key
	}
	if a.cell.X != b.cell.X {
		return a.cell.X < b.cell.X
	}
	return a.cell.Y < b.cell.Y
}

// Swap swaps two entries in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push. x must be an entry.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(entry)) }

// Pop removes and returns the last element; called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
