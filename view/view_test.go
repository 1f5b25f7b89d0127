package view_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyroute/report"
	"github.com/katalvlaran/skyroute/search"
	"github.com/katalvlaran/skyroute/terrain"
	"github.com/katalvlaran/skyroute/view"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 10)
	t.Cleanup(s.Fini)
	return s
}

// line returns screen row y as a string with trailing blanks trimmed.
func line(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Runes[0])
	}
	return strings.TrimRight(sb.String(), " ")
}

func styleAt(s tcell.SimulationScreen, x, y int) tcell.Style {
	cells, w, _ := s.GetContents()
	return cells[y*w+x].Style
}

func mountain(t *testing.T) *terrain.Map {
	m := terrain.New(3, 2)
	m.SetElevation(1, 0, 9)
	m.AddObstacle(1, 1)
	require.True(t, m.SetStart(0, 0))
	require.True(t, m.SetGoal(2, 0))
	return m
}

func TestDraw(t *testing.T) {
	s := newScreen(t)
	m := mountain(t)
	res := search.AStar(m)
	require.True(t, res.Found())

	view.Draw(s, m, res.Path, "status")
	// The wall below forces the path over the peak.
	assert.Equal(t, "S * G", line(s, 0))
	assert.Equal(t, "1 # 1", line(s, 1))
	assert.Equal(t, "status", line(s, 3))

	assert.Equal(t, view.StyleEndpoint, styleAt(s, 0, 0))
	assert.Equal(t, view.StylePath, styleAt(s, 2, 0))
	assert.Equal(t, view.StyleObstacle, styleAt(s, 2, 1))
	assert.Equal(t, view.StyleTerrain, styleAt(s, 0, 1))
	assert.Equal(t, view.StyleStatus, styleAt(s, 0, 3))
}

// TestRun_CyclesAndQuits injects Tab then q; the last frame must show the
// second run.
func TestRun_CyclesAndQuits(t *testing.T) {
	s := newScreen(t)
	m := terrain.New(3, 3)
	m.SetStart(0, 0)
	m.SetGoal(2, 2)
	runs := []report.Run{
		{Name: search.NameAStar, Result: search.AStar(m)},
		{Name: search.NameGreedy, Result: search.Greedy(m)},
	}

	s.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	view.Run(s, m, runs...)

	status := line(s, 4)
	assert.True(t, strings.HasPrefix(status, "[2/2] greedy: 5 steps"), status)
	assert.Equal(t, "S 1 1", line(s, 0))
	assert.Equal(t, "* 1 1", line(s, 1))
	assert.Equal(t, "* * G", line(s, 2))
}

func TestRun_NoRunsEscape(t *testing.T) {
	s := newScreen(t)
	m := terrain.New(2, 1)

	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	view.Run(s, m)
	assert.Equal(t, "no runs  [q] quit", line(s, 2))
}
