package search

import (
	"errors"
	"time"

	"github.com/katalvlaran/skyroute/terrain"
)

// ErrUnknownStrategy indicates Lookup was given a name that is not registered.
var ErrUnknownStrategy = errors.New("search: unknown strategy")

// Result is the outcome of a single search.
type Result struct {
	Path    []terrain.Cell // start..goal inclusive; nil if no path
	Visited int            // frontier pops, stale entries included
	Elapsed time.Duration  // wall-clock time of the search loop
	Cost    float64        // terrain cost of Path; 0 when Path is nil
}

// Found reports whether a path was produced.
func (r Result) Found() bool { return r.Path != nil }

// Steps returns the number of cells on the path.
func (r Result) Steps() int { return len(r.Path) }

// ElapsedMillis returns Elapsed in milliseconds.
func (r Result) ElapsedMillis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Options configures observation hooks for a search.
type Options struct {
	// OnEnqueue is called for every frontier push with the cell and its key.
	OnEnqueue func(c terrain.Cell, key float64)
	// OnDequeue is called for every frontier pop with the running visit count.
	OnDequeue func(c terrain.Cell, visited int)
}

// Option customizes a search.
type Option func(*Options)

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(terrain.Cell, float64) {},
		OnDequeue: func(terrain.Cell, int) {},
	}
}

// WithOnEnqueue registers a callback invoked on each frontier push.
func WithOnEnqueue(fn func(c terrain.Cell, key float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback invoked on each frontier pop.
func WithOnDequeue(fn func(c terrain.Cell, visited int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Strategy is the common signature of AStar, Greedy and Dijkstra.
type Strategy func(m *terrain.Map, opts ...Option) Result
