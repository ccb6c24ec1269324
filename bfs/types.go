// Package bfs provides tunable options and error definitions
// for breadth-first search over a maze.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrExploreLimit is returned when MaxExplored dequeues happen without reaching the goal.
	ErrExploreLimit = errors.New("bfs: explore limit reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize Search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnExplore is called after each dequeue with the cell, the explored
	// count and its depth from the root.
	OnExplore func(c maze.Cell, explored, depth int)

	// MaxDepth, if > 0, stops enqueueing beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxExplored, if > 0, caps the number of dequeues.
	MaxExplored int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no explore cap (MaxExplored == 0)
//   - no-op OnExplore hook
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnExplore: func(maze.Cell, int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExplore registers a callback to run after each dequeue.
func WithOnExplore(fn func(c maze.Cell, explored, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExplore = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxExplored caps the number of dequeues; 0 disables the cap.
func WithMaxExplored(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExplored cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExplored = n
	}
}

// Result holds the outcome of a breadth-first search:
//   - Predecessors: first-discovery parent of each reached cell (root → maze.NoCell),
//     nil when the goal was not reached.
//   - Depth: edge count from root to goal (shortest), -1 when not found.
//   - Explored: number of dequeues.
type Result struct {
	Predecessors map[maze.Cell]maze.Cell
	Depth        int
	Explored     int
	Found        bool
}
