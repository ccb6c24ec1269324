package maze

import (
	"strings"
)

// Grid is the parsed maze text. It is immutable once built.
// rows[y][x] holds the rune at column x of row y; rows may differ in length.
type Grid struct {
	rows [][]rune
	opts Options
}

// Parse splits text into rows on '\n' (dropping a trailing '\r' per row) and
// returns a Grid. A trailing newline yields an empty final row, which acts as
// the non-traversable border.
// Returns ErrEmptyGrid if no row has content, ErrBadStride or
// ErrBadNeighborOrder for invalid options.
// Complexity: O(len(text)).
func Parse(text string, opts ...Option) (*Grid, error) {
	return FromLines(strings.Split(text, "\n"), opts...)
}

// FromLines builds a Grid from already-split rows. The input is copied.
func FromLines(lines []string, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	rows := make([][]rune, len(lines))
	nonEmpty := false
	for y, line := range lines {
		rows[y] = []rune(strings.TrimSuffix(line, "\r"))
		if len(rows[y]) > 0 {
			nonEmpty = true
		}
	}
	if !nonEmpty {
		return nil, ErrEmptyGrid
	}

	return &Grid{rows: rows, opts: o}, nil
}

// Height returns the number of rows, including the border row.
func (g *Grid) Height() int {
	return len(g.rows)
}

// Width returns the length of row y, or 0 if y is out of range.
func (g *Grid) Width(y int) int {
	if y < 0 || y >= len(g.rows) {
		return 0
	}

	return len(g.rows[y])
}

// Options returns a copy of the options the grid was built with.
func (g *Grid) Options() Options {
	o := g.opts
	o.NeighborOrder = append([]Direction(nil), g.opts.NeighborOrder...)

	return o
}

// InBounds reports whether c addresses an existing rune of its row.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Y >= 0 && c.Y < len(g.rows) && c.X >= 0 && c.X < len(g.rows[c.Y])
}

// IsOpen reports whether c is in bounds and holds the open marker.
func (g *Grid) IsOpen(c Cell) bool {
	return g.InBounds(c) && g.rows[c.Y][c.X] == g.opts.OpenMarker
}

// Rows returns the grid text, one string per row.
func (g *Grid) Rows() []string {
	out := make([]string, len(g.rows))
	for y, row := range g.rows {
		out[y] = string(row)
	}

	return out
}

// Annotate returns the grid text with every open cell on path replaced by
// marker. Cells off the path, walls and separators are copied verbatim.
// Complexity: O(R×C + len(path)).
func (g *Grid) Annotate(path []Cell, marker rune) []string {
	onPath := make(map[Cell]struct{}, len(path))
	for _, c := range path {
		onPath[c] = struct{}{}
	}

	out := make([]string, len(g.rows))
	var b strings.Builder
	for y, row := range g.rows {
		b.Reset()
		for x, r := range row {
			if r == g.opts.OpenMarker {
				if _, ok := onPath[Cell{X: x, Y: y}]; ok {
					b.WriteRune(marker)
					continue
				}
			}
			b.WriteRune(r)
		}
		out[y] = b.String()
	}

	return out
}
