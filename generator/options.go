package generator

import "math/rand"

// Deterministic defaults.
const (
	DefaultMaxElevation = 9
	DefaultNoFlyZones   = 10
)

// config aggregates all generator knobs. It is built fresh per Generate call.
type config struct {
	rng           *rand.Rand // nil means "not supplied"
	maxElevation  int        // ≥ 1
	noFlyZones    int        // ≥ 0
	reachableGoal bool       // draw goal from the start's region only
}

// Option customizes Generate.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		maxElevation: DefaultMaxElevation,
		noFlyZones:   DefaultNoFlyZones,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithMaxElevation sets the upper bound of drawn elevations. Panics if max < 1.
func WithMaxElevation(max int) Option {
	if max < 1 {
		panic("generator: WithMaxElevation(max<1)")
	}
	return func(c *config) {
		c.maxElevation = max
	}
}

// WithNoFlyZones sets how many obstacle placements are drawn. Panics if n < 0.
func WithNoFlyZones(n int) Option {
	if n < 0 {
		panic("generator: WithNoFlyZones(n<0)")
	}
	return func(c *config) {
		c.noFlyZones = n
	}
}

// WithReachableGoal restricts the goal to cells reachable from the start,
// so every generated terrain has a flight path.
func WithReachableGoal() Option {
	return func(c *config) {
		c.reachableGoal = true
	}
}
