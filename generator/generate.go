package generator

import (
	"github.com/katalvlaran/skyroute/terrain"
)

const methodGenerate = "Generate"

// Generate builds a random width×height terrain with start and goal set.
// See the package documentation for the draw order and errors.
// Complexity: O(W×H) time and memory.
func Generate(width, height int, opts ...Option) (*terrain.Map, error) {
	if width < 1 || height < 1 {
		return nil, generatorErrorf(methodGenerate, ErrInvalidSize, "got %dx%d", width, height)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, generatorErrorf(methodGenerate, ErrNeedRandSource, "use WithSeed or WithRand")
	}
	rng := cfg.rng

	m := terrain.New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.SetElevation(x, y, 1+rng.Intn(cfg.maxElevation))
		}
	}
	for i := 0; i < cfg.noFlyZones; i++ {
		x, y := rng.Intn(width), rng.Intn(height)
		m.AddObstacle(x, y)
	}

	free := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if m.IsValid(x, y) {
				free++
			}
		}
	}
	if free < 2 {
		return nil, generatorErrorf(methodGenerate, ErrNoFreeCell, "%d free of %d", free, width*height)
	}

	// Rejection sampling terminates: at least two free cells exist.
	for !m.SetStart(rng.Intn(width), rng.Intn(height)) {
	}
	start, _ := m.Start()

	if cfg.reachableGoal {
		region := m.Reachable(start)
		candidates := make([]terrain.Cell, 0, len(region))
		for _, c := range region {
			if c != start {
				candidates = append(candidates, c)
			}
		}
		if len(candidates) == 0 {
			return nil, generatorErrorf(methodGenerate, ErrNoReachableGoal, "start %v is isolated", start)
		}
		g := candidates[rng.Intn(len(candidates))]
		m.SetGoal(g.X, g.Y)

		return m, nil
	}

	for {
		x, y := rng.Intn(width), rng.Intn(height)
		if (terrain.Cell{X: x, Y: y}) != start && m.SetGoal(x, y) {
			break
		}
	}

	return m, nil
}
