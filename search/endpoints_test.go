package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyroute/search"
	"github.com/katalvlaran/skyroute/terrain"
)

// TestObstacleOnEndpoint covers an obstacle added after start or goal was
// set on the flat 3×3 grid from (0,0) to (2,2).
//
// A blocked start is still popped, but every step out of it costs +Inf, so
// cost-aware keys all tie at +Inf and fall back to (x,y) order. A blocked
// goal is never pushed and the frontier drains the other eight cells.
func TestObstacleOnEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		strategy search.Strategy
		block    terrain.Cell
		found    bool
		visited  int
	}{
		{"astar/start", search.AStar, terrain.Cell{}, true, 9},
		{"greedy/start", search.Greedy, terrain.Cell{}, true, 5},
		{"dijkstra/start", search.Dijkstra, terrain.Cell{}, true, 9},
		{"astar/goal", search.AStar, terrain.Cell{X: 2, Y: 2}, false, 8},
		{"greedy/goal", search.Greedy, terrain.Cell{X: 2, Y: 2}, false, 8},
		{"dijkstra/goal", search.Dijkstra, terrain.Cell{X: 2, Y: 2}, false, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := flat(t, 3, 3, terrain.Cell{}, terrain.Cell{X: 2, Y: 2})
			require.True(t, m.AddObstacle(tc.block.X, tc.block.Y))

			_, hasStart := m.Start()
			_, hasGoal := m.Goal()
			require.True(t, hasStart && hasGoal, "endpoints survive the obstacle")

			res := tc.strategy(m)
			assert.Equal(t, tc.found, res.Found())
			assert.Equal(t, tc.visited, res.Visited)
			if !tc.found {
				assert.Nil(t, res.Path)
				assert.Zero(t, res.Cost)
				return
			}
			assert.Equal(t, cells(0, 0, 0, 1, 0, 2, 1, 2, 2, 2), res.Path)
			assert.True(t, math.IsInf(res.Cost, 1), "leaving a blocked start costs +Inf, got %v", res.Cost)
		})
	}
}
