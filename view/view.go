// Package view shows terrains and flight paths in an interactive terminal
// screen.
//
// Draw paints one frame; Run loops over key events, cycling between runs
// with Tab and exiting on q, Esc or Ctrl-C. Both accept any tcell.Screen,
// so tests use tcell's simulation screen.
package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/skyroute/render"
	"github.com/katalvlaran/skyroute/report"
	"github.com/katalvlaran/skyroute/terrain"
)

// Styles used for each cell kind.
var (
	StyleTerrain  = tcell.StyleDefault
	StyleObstacle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	StylePath     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	StyleEndpoint = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	StyleStatus   = tcell.StyleDefault.Reverse(true)
)

// cellWidth is the number of screen columns per grid cell.
const cellWidth = 2

// Draw clears s and paints m with path overlaid, followed by a status line.
func Draw(s tcell.Screen, m *terrain.Map, path []terrain.Cell, status string) {
	s.Clear()
	rows := render.Rows(m, path)
	for y, row := range rows {
		for x, mark := range row {
			drawString(s, x*cellWidth, y, mark, styleFor(mark))
		}
	}
	drawString(s, 0, len(rows)+1, status, StyleStatus)
	s.Show()
}

// Run displays m and lets the user cycle through runs until quit.
// The caller owns s: Run neither initializes nor finalizes it.
func Run(s tcell.Screen, m *terrain.Map, runs ...report.Run) {
	current := 0
	redraw := func() {
		if len(runs) == 0 {
			Draw(s, m, nil, "no runs  [q] quit")
			return
		}
		r := runs[current]
		Draw(s, m, r.Result.Path, statusLine(r, current, len(runs)))
	}
	redraw()

	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			s.Sync()
			redraw()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyTab && len(runs) > 0:
				current = (current + 1) % len(runs)
				redraw()
			}
		}
	}
}

func statusLine(r report.Run, i, n int) string {
	if !r.Result.Found() {
		return fmt.Sprintf("[%d/%d] %s: no path, visited %d  [tab] next  [q] quit",
			i+1, n, r.Name, r.Result.Visited)
	}
	return fmt.Sprintf("[%d/%d] %s: %d steps, cost %.2f, visited %d  [tab] next  [q] quit",
		i+1, n, r.Name, r.Result.Steps(), r.Result.Cost, r.Result.Visited)
}

func styleFor(mark string) tcell.Style {
	switch mark {
	case render.MarkStart, render.MarkGoal:
		return StyleEndpoint
	case render.MarkObstacle:
		return StyleObstacle
	case render.MarkPath:
		return StylePath
	default:
		return StyleTerrain
	}
}

func drawString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
