package search

import (
	"fmt"
	"sort"
)

// Registered strategy names.
const (
	NameAStar    = "astar"
	NameGreedy   = "greedy"
	NameDijkstra = "dijkstra"
)

var strategies = map[string]Strategy{
	NameAStar:    AStar,
	NameGreedy:   Greedy,
	NameDijkstra: Dijkstra,
}

// Lookup returns the strategy registered under name.
func Lookup(name string) (Strategy, error) {
	s, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// Names lists the registered strategy names in sorted order.
func Names() []string {
	out := make([]string, 0, len(strategies))
	for name := range strategies {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
