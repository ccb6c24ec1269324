package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
)

//----------------------------------------------------------------------------//
// Parse and option validation
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects empty input and bad options.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		opts []maze.Option
		err  error
	}{
		{"Empty", "", nil, maze.ErrEmptyGrid},
		{"OnlyNewlines", "\n\n\r\n", nil, maze.ErrEmptyGrid},
		{"ZeroStride", "- -", []maze.Option{maze.WithColumnStride(0)}, maze.ErrBadStride},
		{"ShortOrder", "- -", []maze.Option{maze.WithNeighborOrder(maze.Up, maze.Down)}, maze.ErrBadNeighborOrder},
		{"DuplicateOrder", "- -", []maze.Option{maze.WithNeighborOrder(maze.Up, maze.Up, maze.Left, maze.Right)}, maze.ErrBadNeighborOrder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := maze.Parse(tc.text, tc.opts...)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestGrid_IsOpen checks bounds-safe open-cell lookups on a ragged grid.
func TestGrid_IsOpen(t *testing.T) {
	g, err := maze.Parse("- #\r\n-\n")
	require.NoError(t, err)

	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 3, g.Width(0))
	assert.Equal(t, 1, g.Width(1))
	assert.Equal(t, 0, g.Width(7))

	assert.True(t, g.IsOpen(maze.Cell{X: 0, Y: 0}))
	assert.False(t, g.IsOpen(maze.Cell{X: 1, Y: 0}), "separator")
	assert.False(t, g.IsOpen(maze.Cell{X: 2, Y: 0}), "wall")
	assert.True(t, g.IsOpen(maze.Cell{X: 0, Y: 1}))
	for _, c := range []maze.Cell{{X: 2, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 9}} {
		assert.False(t, g.IsOpen(c), "out of bounds %s", c)
	}
}

// TestGrid_CustomMarker verifies WithOpenMarker.
func TestGrid_CustomMarker(t *testing.T) {
	g, err := maze.Parse(". . #\n", maze.WithOpenMarker('.'))
	require.NoError(t, err)
	assert.True(t, g.IsOpen(maze.Cell{X: 2, Y: 0}))
	assert.False(t, g.IsOpen(maze.Cell{X: 4, Y: 0}))
	assert.Equal(t, '.', g.Options().OpenMarker)
}

// TestGrid_Annotate replaces exactly the path cells and keeps everything else.
func TestGrid_Annotate(t *testing.T) {
	g, err := maze.Parse("- - -\n-   -\n#####")
	require.NoError(t, err)

	path := []maze.Cell{{X: 0, Y: 1}, {X: 0, Y: 0}, {X: 2, Y: 0}}
	got := g.Annotate(path, maze.DefaultPathMarker)
	assert.Equal(t, []string{"X X -", "X   -", "#####"}, got)

	// the grid itself is untouched
	assert.Equal(t, []string{"- - -", "-   -", "#####"}, g.Rows())
}

//----------------------------------------------------------------------------//
// Cells and directions
//----------------------------------------------------------------------------//

func TestParseCell(t *testing.T) {
	c, err := maze.ParseCell(" (4, 12) ")
	require.NoError(t, err)
	assert.Equal(t, maze.Cell{X: 4, Y: 12}, c)
	assert.Equal(t, "(4,12)", c.String())

	for _, bad := range []string{"", "1", "1,2,3", "a,2", "1,b"} {
		_, err = maze.ParseCell(bad)
		assert.ErrorIs(t, err, maze.ErrBadCell, "input %q", bad)
	}
}

func TestDefaultNeighborOrder(t *testing.T) {
	assert.Equal(t, []maze.Direction{maze.Up, maze.Right, maze.Left, maze.Down}, maze.DefaultNeighborOrder())
	assert.Equal(t, maze.DefaultNeighborOrder(), maze.DefaultOptions().NeighborOrder)
}

func TestParseDirection(t *testing.T) {
	for _, d := range maze.DefaultNeighborOrder() {
		got, err := maze.ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := maze.ParseDirection(" LEFT ")
	require.NoError(t, err)
	assert.Equal(t, maze.Left, got)

	_, err = maze.ParseDirection("north")
	assert.ErrorIs(t, err, maze.ErrBadNeighborOrder)
}
