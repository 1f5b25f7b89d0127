package generator

import (
	"errors"
	"fmt"
)

// ErrInvalidSize indicates a non-positive width or height.
var ErrInvalidSize = errors.New("generator: width and height must be ≥ 1")

// ErrNeedRandSource indicates Generate was called without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("generator: rng is required")

// ErrNoFreeCell indicates obstacles left fewer than two cells for start and goal.
var ErrNoFreeCell = errors.New("generator: not enough free cells for start and goal")

// ErrNoReachableGoal indicates the start has no reachable neighbour region
// to draw a goal from.
var ErrNoReachableGoal = errors.New("generator: no reachable goal cell")

// generatorErrorf wraps err with the calling method name.
func generatorErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
