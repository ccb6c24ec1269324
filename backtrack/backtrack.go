// Package backtrack rebuilds search paths from predecessor maps.
//
// A predecessor map records, for each reached cell, the cell that led to it;
// the search root maps to maze.NoCell. Reconstruct walks that chain from the
// goal back to the root.
//
// Complexity: O(L) time and memory, L = path length.
package backtrack

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
)

// ErrBrokenChain indicates a predecessor chain that never reaches the root.
var ErrBrokenChain = errors.New("backtrack: predecessor chain does not reach root")

// Reconstruct returns the path from goal to root, both included, by following
// pred. When root == goal the path is the single cell root.
//
// Returns maze.ErrUnknownCell (wrapped) if a cell on the chain has no entry,
// and ErrBrokenChain if the chain runs into the root's sentinel or loops
// before reaching root. Neither can happen for a successful search result.
func Reconstruct(pred map[maze.Cell]maze.Cell, root, goal maze.Cell) ([]maze.Cell, error) {
	path := []maze.Cell{goal}
	for current := goal; current != root; {
		prev, ok := pred[current]
		if !ok {
			return nil, fmt.Errorf("%w: %s has no predecessor", maze.ErrUnknownCell, current)
		}
		if prev == maze.NoCell || len(path) > len(pred) {
			return nil, fmt.Errorf("%w: stopped at %s after %d cells", ErrBrokenChain, current, len(path))
		}
		path = append(path, prev)
		current = prev
	}

	return path, nil
}

// FromRoot is Reconstruct followed by Reverse: the path runs root → goal.
func FromRoot(pred map[maze.Cell]maze.Cell, root, goal maze.Cell) ([]maze.Cell, error) {
	path, err := Reconstruct(pred, root, goal)
	if err != nil {
		return nil, err
	}

	return Reverse(path), nil
}

// Reverse returns a new slice with the elements of path in reverse order.
func Reverse(path []maze.Cell) []maze.Cell {
	out := make([]maze.Cell, len(path))
	for i := range path {
		out[i] = path[len(path)-1-i]
	}

	return out
}
