// Package dfs defines options, results and sentinel errors for the
// stack-based depth-first maze search.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
)

var (
	// ErrGraphNil is returned when a nil *maze.Graph is passed to Search.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrExploreLimit is returned when MaxExplored pops happen without reaching the goal.
	ErrExploreLimit = errors.New("dfs: explore limit reached")
)

// Option configures optional behavior of Search.
type Option func(*Options)

// Options holds configurable parameters for Search.
type Options struct {
	// Ctx allows cancellation; it is checked once per pop.
	// Defaults to context.Background().
	Ctx context.Context

	// MaxExplored caps the number of pops; 0 means no cap.
	MaxExplored int

	// OnExplore, if non-nil, is called after every pop with the popped cell,
	// the explored count so far and the number of discovered cells.
	OnExplore func(c maze.Cell, explored, discovered int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no cap and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxExplored: 0,
		OnExplore:   nil,
	}
}

// WithContext sets the context used for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExplored caps the number of pops.
//
//	n > 0: stop with ErrExploreLimit after n pops without reaching the goal
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExplored(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExplored cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExplored = n
	}
}

// WithOnExplore installs a progress hook called after every pop.
func WithOnExplore(fn func(c maze.Cell, explored, discovered int)) Option {
	return func(o *Options) {
		o.OnExplore = fn
	}
}

// Result is the outcome of a depth-first search.
type Result struct {
	// Predecessors maps every cell pushed onto the frontier to the cell whose
	// expansion pushed it last; the root maps to maze.NoCell.
	// Nil when the goal was not reached.
	Predecessors map[maze.Cell]maze.Cell

	// Explored counts frontier pops, duplicates and the goal pop included.
	Explored int

	// Found reports whether the goal was popped.
	Found bool
}
