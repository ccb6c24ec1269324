// Package solver defines the algorithms, options and outcome types of the
// maze-solving boundary layer.
package solver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/maze"
)

var (
	// ErrUnknownAlgorithm is returned for an algorithm name that is not supported.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

	// ErrBadRuns is returned when a benchmark is asked for fewer than one run.
	ErrBadRuns = errors.New("solver: runs must be at least 1")

	// ErrEmptyGraph is returned when default endpoints are requested on a graph without nodes.
	ErrEmptyGraph = errors.New("solver: graph has no open cells")

	// ErrNotOpen is returned when a chosen root or goal is not a node of the graph.
	ErrNotOpen = errors.New("solver: cell is not an open node")
)

// Algorithm names a search strategy.
type Algorithm string

const (
	// DFS is the explicit-stack depth-first search.
	DFS Algorithm = "dfs"
	// AStar is the weighted best-first search.
	AStar Algorithm = "astar"
	// BFS is the breadth-first shortest-path baseline.
	BFS Algorithm = "bfs"
)

// Algorithms lists every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{DFS, AStar, BFS}
}

// ParseAlgorithm maps a case-insensitive name ("dfs", "astar", "a*", "bfs") to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs", "depth-first":
		return DFS, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	case "bfs", "breadth-first":
		return BFS, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Title returns the human-readable algorithm name.
func (a Algorithm) Title() string {
	switch a {
	case DFS:
		return "Depth-First Search"
	case AStar:
		return "A* Search"
	case BFS:
		return "Breadth-First Search"
	}

	return string(a)
}

// DefaultProgressEvery is the number of explored cells between progress log lines.
const DefaultProgressEvery = 1000

// Options tunes the searches run by a Solver.
type Options struct {
	Weight        float64 // A* heuristic multiplier
	StepCost      float64 // A* per-move cost
	Workers       int     // parallel benchmark runs; ≤ 1 runs sequentially
	MaxExplored   int     // per-search explore cap, 0 = none
	ProgressEvery int     // explored cells between debug progress lines, 0 = off
}

// Option configures a Solver.
type Option func(*Options)

// DefaultOptions returns the A* defaults, sequential runs, no cap and
// progress lines every DefaultProgressEvery cells.
func DefaultOptions() Options {
	return Options{
		Weight:        astar.DefaultWeight,
		StepCost:      astar.DefaultStepCost,
		Workers:       1,
		ProgressEvery: DefaultProgressEvery,
	}
}

// WithWeight sets the A* heuristic multiplier.
func WithWeight(m float64) Option {
	return func(o *Options) { o.Weight = m }
}

// WithStepCost sets the A* per-move cost.
func WithStepCost(c float64) Option {
	return func(o *Options) { o.StepCost = c }
}

// WithWorkers sets how many benchmark runs may execute concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithMaxExplored caps every search at n explored cells; 0 disables the cap.
func WithMaxExplored(n int) Option {
	return func(o *Options) { o.MaxExplored = n }
}

// WithProgressEvery sets the progress logging interval; 0 disables it.
func WithProgressEvery(n int) Option {
	return func(o *Options) { o.ProgressEvery = n }
}

// Outcome is the result of one timed search.
type Outcome struct {
	RunID     uuid.UUID
	Algorithm Algorithm
	Root      maze.Cell
	Goal      maze.Cell
	Found     bool
	Path      []maze.Cell // root → goal; nil when not found
	Explored  int
	GraphSize int
	Elapsed   time.Duration
}

// Summary aggregates repeated runs of the same search.
type Summary struct {
	First  *Outcome // the first run, used for path and counts
	Runs   int
	Mean   time.Duration
	StdDev time.Duration
	Median time.Duration
	Min    time.Duration
	Max    time.Duration

	// Deterministic reports whether every run reproduced the first run's
	// outcome, explored count and path length.
	Deterministic bool
}
