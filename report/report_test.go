package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyroute/report"
	"github.com/katalvlaran/skyroute/search"
	"github.com/katalvlaran/skyroute/terrain"
)

func sampleRuns() []report.Run {
	path := []terrain.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	return []report.Run{
		{Name: "astar", Result: search.Result{Path: path, Visited: 9, Cost: 4, Elapsed: 1250 * time.Microsecond}},
		{Name: "greedy", Result: search.Result{Visited: 3}},
	}
}

func TestSummary(t *testing.T) {
	runs := sampleRuns()

	var sb strings.Builder
	require.NoError(t, report.Summary(&sb, runs[0]))
	assert.Equal(t,
		"astar found a path of 3 steps.\nNodes visited: 9\nPath cost: 4.00\nElapsed: 1.25 ms\n",
		sb.String())

	sb.Reset()
	require.NoError(t, report.Summary(&sb, runs[1]))
	assert.Equal(t, "greedy found no path (visited 3 nodes).\n", sb.String())
}

func TestCompare(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, report.Compare(&sb, sampleRuns()...))

	want := "" +
		"metric     astar  greedy\n" +
		"steps      3      -\n" +
		"cost       4.00   -\n" +
		"visited    9      3\n" +
		"time (ms)  1.25   0.00\n"
	assert.Equal(t, want, sb.String())
}
