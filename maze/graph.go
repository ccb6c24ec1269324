package maze

import (
	"fmt"
)

// Graph is the adjacency map of a Grid: every open node cell mapped to its
// open neighbours in the grid's neighbour-check order. It is read-only after
// Build and may be shared by concurrent searches.
type Graph struct {
	adj   map[Cell][]Cell
	order []Cell // keys in row-major build order
	edges int    // directed neighbour entries
}

// Build converts g into a Graph.
//
// Behavior:
//  1. Scan rows top to bottom, columns 0, stride, 2×stride, … left to right.
//  2. Every open cell outside the final row becomes a node.
//  3. Candidate neighbours are checked in the grid's neighbour order:
//     up    (x, y-1)      valid iff y-1 ≥ 0 and open;
//     down  (x, y+1)      valid iff y+1 < last row index and open;
//     right (x+stride, y) valid iff inside row y and open;
//     left  (x-stride, y) valid iff inside row y and open.
//
// Returns ErrMalformedGrid (wrapped with coordinates) when a vertical
// neighbour row is shorter than column x.
// Complexity: O(R×C/stride) time, O(V + E) memory.
func Build(g *Grid) (*Graph, error) {
	last := g.Height() - 1
	stride := g.opts.ColumnStride
	gr := &Graph{adj: make(map[Cell][]Cell)}

	for y := 0; y < last; y++ {
		for x := 0; x < g.Width(y); x += stride {
			c := Cell{X: x, Y: y}
			if !g.IsOpen(c) {
				continue
			}
			nbs, err := g.neighbors(c, last)
			if err != nil {
				return nil, err
			}
			gr.adj[c] = nbs
			gr.order = append(gr.order, c)
			gr.edges += len(nbs)
		}
	}

	return gr, nil
}

// neighbors lists the open neighbours of c in configured order.
func (g *Grid) neighbors(c Cell, last int) ([]Cell, error) {
	out := make([]Cell, 0, 4)
	for _, d := range g.opts.NeighborOrder {
		dx, dy := d.offset(g.opts.ColumnStride)
		n := Cell{X: c.X + dx, Y: c.Y + dy}
		switch d {
		case Up:
			if n.Y < 0 {
				continue
			}
		case Down:
			if n.Y >= last {
				continue
			}
		default:
			if n.X < 0 || n.X >= len(g.rows[n.Y]) {
				continue
			}
		}
		// vertical neighbour rows must reach column x
		if !g.InBounds(n) {
			return nil, fmt.Errorf("%w: row %d has %d columns, %s of %s needs column %d",
				ErrMalformedGrid, n.Y, len(g.rows[n.Y]), d, c, n.X)
		}
		if g.rows[n.Y][n.X] == g.opts.OpenMarker {
			out = append(out, n)
		}
	}

	return out, nil
}

// Len returns the number of nodes.
func (gr *Graph) Len() int {
	return len(gr.order)
}

// Edges returns the number of undirected edges.
func (gr *Graph) Edges() int {
	return gr.edges / 2
}

// Has reports whether c is a node.
func (gr *Graph) Has(c Cell) bool {
	_, ok := gr.adj[c]

	return ok
}

// Neighbors returns the neighbours of c in neighbour-check order.
// The returned slice must not be modified.
// Returns ErrUnknownCell if c is not a node.
func (gr *Graph) Neighbors(c Cell) ([]Cell, error) {
	nbs, ok := gr.adj[c]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCell, c)
	}

	return nbs, nil
}

// Cells returns a copy of the node list in build order.
func (gr *Graph) Cells() []Cell {
	return append([]Cell(nil), gr.order...)
}

// First returns the first node in build order; ok is false for an empty graph.
func (gr *Graph) First() (Cell, bool) {
	if len(gr.order) == 0 {
		return NoCell, false
	}

	return gr.order[0], true
}

// Last returns the last node in build order; ok is false for an empty graph.
func (gr *Graph) Last() (Cell, bool) {
	if len(gr.order) == 0 {
		return NoCell, false
	}

	return gr.order[len(gr.order)-1], true
}
