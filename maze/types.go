// Package maze defines the cell type, directions, grid options and sentinel
// errors shared by the search packages of github.com/katalvlaran/mazepath.
package maze

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for maze parsing, graph construction and lookups.
var (
	// ErrEmptyGrid indicates the maze text has no non-empty row.
	ErrEmptyGrid = errors.New("maze: grid must have at least one non-empty row")
	// ErrBadStride indicates a column stride below 1.
	ErrBadStride = errors.New("maze: column stride must be at least 1")
	// ErrBadNeighborOrder indicates an order that is not a permutation of Up, Down, Left, Right.
	ErrBadNeighborOrder = errors.New("maze: neighbor order must list each direction exactly once")
	// ErrMalformedGrid indicates a neighbour row shorter than the column being checked.
	ErrMalformedGrid = errors.New("maze: malformed grid")
	// ErrUnknownCell indicates a cell that is not a node of the graph.
	ErrUnknownCell = errors.New("maze: unknown cell")
	// ErrBadCell indicates a cell literal that cannot be parsed.
	ErrBadCell = errors.New("maze: cannot parse cell")
)

// Default values used by DefaultOptions.
const (
	DefaultOpenMarker   = '-'
	DefaultPathMarker   = 'X'
	DefaultColumnStride = 2
)

// Cell is a grid coordinate: X is the column (rune index), Y is the row.
type Cell struct {
	X, Y int
}

// NoCell is the predecessor recorded for a search root.
var NoCell = Cell{X: -1, Y: -1}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}

// ParseCell parses "x,y" (optionally wrapped in parentheses) into a Cell.
func ParseCell(s string) (Cell, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")
	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return NoCell, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return NoCell, fmt.Errorf("%w: %q: %v", ErrBadCell, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return NoCell, fmt.Errorf("%w: %q: %v", ErrBadCell, s, err)
	}

	return Cell{X: x, Y: y}, nil
}

// Direction names one of the four orthogonal moves.
type Direction int

const (
	// Up moves one row towards row 0.
	Up Direction = iota
	// Down moves one row away from row 0.
	Down
	// Right moves one stride towards higher columns.
	Right
	// Left moves one stride towards column 0.
	Left
)

var directionNames = [...]string{Up: "up", Down: "down", Right: "right", Left: "left"}

// String returns the lower-case direction name.
func (d Direction) String() string {
	if d < Up || d > Left {
		return "direction(" + strconv.Itoa(int(d)) + ")"
	}

	return directionNames[d]
}

// ParseDirection maps "up", "down", "right" or "left" (any case) to a Direction.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown direction %q", ErrBadNeighborOrder, s)
}

// offset returns the (dx, dy) step for d given the column stride.
func (d Direction) offset(stride int) (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Right:
		return stride, 0
	default:
		return -stride, 0
	}
}

// DefaultNeighborOrder is the neighbour-check order used when none is configured.
// It fixes DFS traversal order, and with it which of several equal-length
// paths is found first.
func DefaultNeighborOrder() []Direction {
	return []Direction{Up, Right, Left, Down}
}

// Option configures grid parsing and graph construction.
type Option func(*Options)

// Options holds tunable parameters for a Grid.
type Options struct {
	// OpenMarker is the rune that marks a walkable cell.
	OpenMarker rune
	// ColumnStride is the horizontal distance between node columns.
	ColumnStride int
	// NeighborOrder fixes the order in which neighbours are checked and listed.
	NeighborOrder []Direction
}

// DefaultOptions returns Options with OpenMarker '-', ColumnStride 2 and the
// default Up, Right, Left, Down neighbour order.
func DefaultOptions() Options {
	return Options{
		OpenMarker:    DefaultOpenMarker,
		ColumnStride:  DefaultColumnStride,
		NeighborOrder: DefaultNeighborOrder(),
	}
}

// WithOpenMarker sets the rune treated as an open cell.
func WithOpenMarker(r rune) Option {
	return func(o *Options) {
		o.OpenMarker = r
	}
}

// WithColumnStride sets the horizontal step between node columns.
func WithColumnStride(n int) Option {
	return func(o *Options) {
		o.ColumnStride = n
	}
}

// WithNeighborOrder sets the neighbour-check order. The slice is copied.
func WithNeighborOrder(order ...Direction) Option {
	return func(o *Options) {
		o.NeighborOrder = append([]Direction(nil), order...)
	}
}

// validate checks stride and neighbour order.
func (o Options) validate() error {
	if o.ColumnStride < 1 {
		return fmt.Errorf("%w: got %d", ErrBadStride, o.ColumnStride)
	}
	if len(o.NeighborOrder) != 4 {
		return fmt.Errorf("%w: got %v", ErrBadNeighborOrder, o.NeighborOrder)
	}
	var seen [4]bool
	for _, d := range o.NeighborOrder {
		if d < Up || d > Left || seen[d] {
			return fmt.Errorf("%w: got %v", ErrBadNeighborOrder, o.NeighborOrder)
		}
		seen[d] = true
	}

	return nil
}
