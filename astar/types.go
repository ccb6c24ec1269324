// Package astar defines core types and configuration options for the
// weighted best-first (A*-style) maze search.
//
// Options:
//
//	– Weight:      heuristic multiplier, default 0.8. Seeds the root distance and
//	               scales the goal heuristic added to every priority.
//	– StepCost:    cost of one move, default 1.
//	– Heuristic:   distance estimate, default Manhattan.
//	– MaxExplored: optional cap on extractions; 0 means none.
//	– Ctx:         cancellation, checked once per extraction.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrOptionViolation if an option value is out of range.
//	– ErrExploreLimit    if MaxExplored extractions happen without reaching the goal.
package astar

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGraph indicates that a nil *maze.Graph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrOptionViolation indicates an invalid weight, step cost or cap.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExploreLimit indicates that MaxExplored extractions did not reach the goal.
	ErrExploreLimit = errors.New("astar: explore limit reached")
)

// Defaults applied by DefaultOptions.
const (
	// DefaultWeight scales the Manhattan estimate. With the default column
	// stride of 2 one horizontal move is estimated at 1.6 steps, so the
	// estimate may overestimate horizontal moves and the path found is not
	// guaranteed to be the shortest.
	DefaultWeight = 0.8

	// DefaultStepCost is the cost of moving to a neighbour.
	DefaultStepCost = 1.0
)

// Heuristic estimates the remaining cost from a to b, scaled by m.
type Heuristic func(a, b maze.Cell, m float64) float64

// Manhattan returns (|a.X-b.X| + |a.Y-b.Y|) × m.
func Manhattan(a, b maze.Cell, m float64) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}

	return float64(dx+dy) * m
}

// Options configures the behavior of Search.
type Options struct {
	Ctx         context.Context
	Weight      float64   // heuristic multiplier
	StepCost    float64   // cost added per move
	Heuristic   Heuristic // remaining-cost estimate
	MaxExplored int       // extraction cap, 0 = none

	// OnExplore, if non-nil, is called after every extraction with the cell,
	// the explored count and the number of entries left in the queue.
	OnExplore func(c maze.Cell, explored, queued int)

	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with Weight 0.8, StepCost 1, the Manhattan
// heuristic, a background context and no cap.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Weight:    DefaultWeight,
		StepCost:  DefaultStepCost,
		Heuristic: Manhattan,
	}
}

// WithWeight sets the heuristic multiplier. Negative, NaN or infinite
// values cause ErrOptionViolation.
func WithWeight(m float64) Option {
	return func(o *Options) {
		if m < 0 || math.IsNaN(m) || math.IsInf(m, 0) {
			o.err = fmt.Errorf("%w: weight must be finite and non-negative (%v)", ErrOptionViolation, m)
			return
		}
		o.Weight = m
	}
}

// WithStepCost sets the per-move cost. Values ≤ 0, NaN or infinite cause
// ErrOptionViolation.
func WithStepCost(c float64) Option {
	return func(o *Options) {
		if !(c > 0) || math.IsInf(c, 0) {
			o.err = fmt.Errorf("%w: step cost must be finite and positive (%v)", ErrOptionViolation, c)
			return
		}
		o.StepCost = c
	}
}

// WithHeuristic replaces the Manhattan heuristic. A nil fn is ignored.
func WithHeuristic(fn Heuristic) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithContext sets the context used for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExplored caps the number of extractions; 0 disables the cap.
func WithMaxExplored(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExplored cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExplored = n
	}
}

// WithOnExplore installs a progress hook called after every extraction.
func WithOnExplore(fn func(c maze.Cell, explored, queued int)) Option {
	return func(o *Options) {
		o.OnExplore = fn
	}
}

// Result is the outcome of Search.
type Result struct {
	// Predecessors maps each reached cell to the cell that last improved its
	// distance; the root maps to maze.NoCell. Nil when the goal was not reached.
	Predecessors map[maze.Cell]maze.Cell

	// Explored counts queue extractions, stale entries and the goal included.
	Explored int

	// Cost is the accumulated step cost from root to goal (0 when not found).
	Cost float64

	// Found reports whether the goal was extracted.
	Found bool
}
