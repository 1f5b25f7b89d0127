// Package generator produces random terrains for flight-planning demos and
// fixtures.
//
// Generate(width, height, opts...) draws, in order:
//
//  1. an elevation in [1, MaxElevation] for every cell, row-major;
//  2. NoFlyZones obstacle positions (repeats allowed, so fewer distinct
//     obstacles may result);
//  3. a start on a random free cell;
//  4. a goal on a random free cell different from the start, or, with
//     WithReachableGoal, on a cell of the start's 4-connected region.
//
// Randomness is always injected: WithSeed or WithRand must be supplied, so
// the same seed and options reproduce the same terrain.
//
// Errors:
//
//   - ErrInvalidSize:    width or height below 1.
//   - ErrNeedRandSource: no WithSeed/WithRand option given.
//   - ErrNoFreeCell:     fewer than two free cells remain for start and goal.
//   - ErrNoReachableGoal: WithReachableGoal set and the start is isolated.
//
// Option constructors panic on meaningless values; Generate itself never
// panics.
package generator
