package terrain_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyroute/search"
	"github.com/katalvlaran/skyroute/terrain"
)

// TestConcurrentReadersAndWriters hammers one Map from several goroutines,
// searches included. Run with -race to check the locking.
func TestConcurrentReadersAndWriters(t *testing.T) {
	m := terrain.New(16, 16)
	require.True(t, m.SetStart(0, 0))
	require.True(t, m.SetGoal(15, 15))
	var wg sync.WaitGroup

	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 256; i++ {
				x, y := i%16, (i/16+w)%16
				if i%7 == 0 {
					m.AddObstacle(x, y)
				} else {
					m.SetElevation(x, y, i%9+1)
				}
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 256; i++ {
				c := terrain.Cell{X: i % 16, Y: i / 16}
				_ = m.IsValid(c.X, c.Y)
				_ = m.Neighbors(c)
				_ = m.Cost(c, terrain.Cell{X: (c.X + 1) % 16, Y: c.Y})
			}
		}()
	}
	for _, strategy := range []search.Strategy{search.AStar, search.Greedy, search.Dijkstra} {
		wg.Add(1)
		go func(run search.Strategy) {
			defer wg.Done()
			for i := 0; i < 8; i++ {
				res := run(m)
				if res.Found() {
					assert.Equal(t, terrain.Cell{}, res.Path[0])
				}
			}
		}(strategy)
	}
	wg.Wait()
}

// TestSearchesShareMap runs every strategy from several goroutines on one
// unchanging Map; each must reproduce the sequential result.
func TestSearchesShareMap(t *testing.T) {
	m := terrain.New(12, 12)
	for i := 0; i < 12; i++ {
		m.SetElevation(i, (i*5)%12, 9)
		m.AddObstacle((i*7)%12, (i*3+1)%12)
	}
	require.True(t, m.SetStart(0, 0))
	require.True(t, m.SetGoal(11, 11))

	strategies := []search.Strategy{search.AStar, search.Greedy, search.Dijkstra}
	want := make([]search.Result, len(strategies))
	for i, run := range strategies {
		want[i] = run(m)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		for i, run := range strategies {
			wg.Add(1)
			go func(i int, run search.Strategy) {
				defer wg.Done()
				got := run(m)
				assert.Equal(t, want[i].Path, got.Path)
				assert.Equal(t, want[i].Visited, got.Visited)
			}(i, run)
		}
	}
	wg.Wait()
}
