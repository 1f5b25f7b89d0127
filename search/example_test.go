// Package search_test provides runnable examples for the search strategies.
package search_test

import (
	"fmt"

	"github.com/katalvlaran/skyroute/search"
	"github.com/katalvlaran/skyroute/terrain"
)

// ExampleAStar plans a flight across a flat 3×3 field.
func ExampleAStar() {
	m := terrain.New(3, 3)
	m.SetStart(0, 0)
	m.SetGoal(2, 2)

	res := search.AStar(m)
	fmt.Println("path:", res.Path)
	fmt.Printf("cost=%.1f visited=%d\n", res.Cost, res.Visited)
	// Output:
	// path: [(0,0) (0,1) (0,2) (1,2) (2,2)]
	// cost=4.0 visited=9
}

// ExampleGreedy contrasts greedy best-first with AStar when a peak stands
// on the straight line to the goal.
func ExampleGreedy() {
	m := terrain.New(3, 3)
	m.SetElevation(1, 0, 9)
	m.SetStart(0, 0)
	m.SetGoal(2, 0)

	g := search.Greedy(m)
	a := search.AStar(m)
	fmt.Printf("greedy: %v cost=%.1f\n", g.Path, g.Cost)
	fmt.Printf("astar:  %v cost=%.1f\n", a.Path, a.Cost)
	// Output:
	// greedy: [(0,0) (1,0) (2,0)] cost=18.0
	// astar:  [(0,0) (0,1) (1,1) (2,1) (2,0)] cost=4.0
}
