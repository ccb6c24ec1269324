// Package maze turns a textual maze into a graph of walkable cells.
//
// What:
//
//   - Grid wraps the maze text rows with an open-path marker, a column stride
//     and a neighbour-check order.
//   - Build converts a Grid into a Graph: an adjacency map from every open node
//     cell to its open neighbours (up, down, left, right).
//   - Grid.Annotate renders a solution path back onto the text.
//
// Maze text convention:
//
//	- - - -        '-' marks an open cell; any other rune is a wall or void.
//	-   -   -      Node columns advance in steps of the stride (2 by default):
//	- - - - -      odd columns only separate nodes and are never nodes themselves.
//	#########      The final row is a border and is never traversable.
//
// Complexity:
//
//   - Parse: O(R×C) time and memory (R rows, C runes per row).
//   - Build: O(R×C/stride) time, O(V + E) memory.
//
// Options:
//
//   - WithOpenMarker(r):        rune treated as open (default '-').
//   - WithColumnStride(n):      horizontal step between node columns (default 2).
//   - WithNeighborOrder(d...):  neighbour-check order (default Up, Right, Left, Down).
//
// Errors:
//
//   - ErrEmptyGrid:        input text has no non-empty row.
//   - ErrBadStride:        column stride below 1.
//   - ErrBadNeighborOrder: order is not a permutation of the four directions.
//   - ErrMalformedGrid:    a vertical neighbour row is shorter than the cell's column.
//   - ErrUnknownCell:      a lookup on a cell that is not a node of the Graph.
package maze
