package render_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyroute/render"
	"github.com/katalvlaran/skyroute/search"
	"github.com/katalvlaran/skyroute/terrain"
)

func fixture(t *testing.T) *terrain.Map {
	m, err := terrain.FromElevations([][]int{
		{1, 9, 1},
		{2, 3, 4},
		{5, 6, 7},
	})
	require.NoError(t, err)
	m.AddObstacle(2, 2)
	require.True(t, m.SetStart(0, 0))
	require.True(t, m.SetGoal(2, 0))
	return m
}

func TestString_BareMap(t *testing.T) {
	want := "S 9 G\n" +
		"2 3 4\n" +
		"5 6 #\n"
	assert.Equal(t, want, render.String(fixture(t), nil))
}

func TestString_WithPath(t *testing.T) {
	m := fixture(t)
	res := search.AStar(m)
	require.True(t, res.Found())

	want := "S 9 G\n" +
		"* * *\n" +
		"5 6 #\n"
	assert.Equal(t, want, render.String(m, res.Path))
}

func TestRows_MultiDigitAndNoEndpoints(t *testing.T) {
	m := terrain.New(2, 1)
	m.SetElevation(1, 0, 12)
	assert.Equal(t, [][]string{{"1", "12"}}, render.Rows(m, nil))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_WriteError(t *testing.T) {
	err := render.Render(failWriter{}, fixture(t), nil)
	assert.EqualError(t, err, "disk full")
}
