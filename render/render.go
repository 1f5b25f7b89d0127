// Package render draws a terrain.Map and an optional flight path as text.
//
// One line per row, top row first, cells separated by a single space:
//
//	S  start         G  goal
//	*  path cell     #  obstacle
//	n  elevation (decimal)
//
// Start and goal take precedence over the path and obstacle marks.
package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/skyroute/terrain"
)

// Cell marks.
const (
	MarkStart    = "S"
	MarkGoal     = "G"
	MarkPath     = "*"
	MarkObstacle = "#"
)

// Render writes m to w with path overlaid. A nil path draws the bare map.
func Render(w io.Writer, m *terrain.Map, path []terrain.Cell) error {
	bw := bufio.NewWriter(w)
	for _, row := range Rows(m, path) {
		if _, err := bw.WriteString(strings.Join(row, " ")); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// String returns the rendering as a string.
func String(m *terrain.Map, path []terrain.Cell) string {
	var sb strings.Builder
	_ = Render(&sb, m, path)
	return sb.String()
}

// Rows returns the mark of every cell, indexed [y][x].
func Rows(m *terrain.Map, path []terrain.Cell) [][]string {
	onPath := make(map[terrain.Cell]struct{}, len(path))
	for _, c := range path {
		onPath[c] = struct{}{}
	}
	start, hasStart := m.Start()
	goal, hasGoal := m.Goal()

	w, h := m.Width(), m.Height()
	rows := make([][]string, h)
	for y := 0; y < h; y++ {
		rows[y] = make([]string, w)
		for x := 0; x < w; x++ {
			c := terrain.Cell{X: x, Y: y}
			switch {
			case hasStart && c == start:
				rows[y][x] = MarkStart
			case hasGoal && c == goal:
				rows[y][x] = MarkGoal
			case m.IsObstacle(x, y):
				rows[y][x] = MarkObstacle
			default:
				if _, ok := onPath[c]; ok {
					rows[y][x] = MarkPath
					continue
				}
				e, _ := m.Elevation(x, y)
				rows[y][x] = strconv.Itoa(e)
			}
		}
	}

	return rows
}
