// Package solver runs maze searches end to end: it dispatches to the search
// packages, reconstructs the path, times each run and aggregates repeated
// runs into a Summary.
//
// The core search packages never log; the Solver owns an injected
// *zap.Logger and turns search hooks into progress lines. Repeated runs share
// the read-only maze.Graph and each build their own search state, so they may
// run concurrently.
package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/backtrack"
	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/dfs"
	"github.com/katalvlaran/mazepath/maze"
)

// Solver runs searches against one graph.
type Solver struct {
	graph  *maze.Graph
	logger *zap.Logger
	opts   Options
}

// New returns a Solver for g. A nil logger discards all output.
func New(g *maze.Graph, logger *zap.Logger, opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Solver{graph: g, logger: logger, opts: o}
}

// DefaultEndpoints returns the first and last node in build order, the
// root/goal policy used when none is configured.
func DefaultEndpoints(g *maze.Graph) (root, goal maze.Cell, err error) {
	if g == nil {
		return maze.NoCell, maze.NoCell, ErrEmptyGraph
	}
	root, ok := g.First()
	if !ok {
		return maze.NoCell, maze.NoCell, ErrEmptyGraph
	}
	goal, _ = g.Last()

	return root, goal, nil
}

// CheckEndpoints returns ErrNotOpen unless both cells are nodes of g.
// The search packages do not re-validate their endpoints.
func CheckEndpoints(g *maze.Graph, root, goal maze.Cell) error {
	if g == nil {
		return ErrEmptyGraph
	}
	for _, c := range []maze.Cell{root, goal} {
		if !g.Has(c) {
			return fmt.Errorf("%w: %s", ErrNotOpen, c)
		}
	}

	return nil
}

// Run performs one timed search from root to goal and reconstructs the path.
// An unreachable goal is reported as Found=false, not as an error.
func (s *Solver) Run(ctx context.Context, alg Algorithm, root, goal maze.Cell) (*Outcome, error) {
	out, err := s.run(ctx, alg, root, goal, true)
	if err != nil {
		return nil, err
	}
	s.logOutcome(out)

	return out, nil
}

// Benchmark repeats the search runs times and aggregates the timings.
// Runs execute on up to Options.Workers goroutines; each run owns its state.
func (s *Solver) Benchmark(ctx context.Context, alg Algorithm, root, goal maze.Cell, runs int) (*Summary, error) {
	if runs < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRuns, runs)
	}

	outcomes := make([]*Outcome, runs)
	eg, egCtx := errgroup.WithContext(ctx)
	if s.opts.Workers > 1 {
		eg.SetLimit(s.opts.Workers)
	} else {
		eg.SetLimit(1)
	}
	for i := 0; i < runs; i++ {
		i := i
		eg.Go(func() error {
			out, err := s.run(egCtx, alg, root, goal, i == 0)
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sum, err := summarize(outcomes)
	if err != nil {
		return nil, err
	}
	s.logOutcome(sum.First)
	s.logger.Info("benchmark finished",
		zap.String("algorithm", string(alg)),
		zap.Int("runs", sum.Runs),
		zap.Duration("mean", sum.Mean),
		zap.Duration("stddev", sum.StdDev),
		zap.Bool("deterministic", sum.Deterministic),
	)

	return sum, nil
}

// run executes one search; progress enables debug progress lines.
func (s *Solver) run(ctx context.Context, alg Algorithm, root, goal maze.Cell, progress bool) (*Outcome, error) {
	if s.graph == nil {
		return nil, fmt.Errorf("solver: %s: %w", alg, nilGraphErr(alg))
	}
	out := &Outcome{
		RunID:     uuid.New(),
		Algorithm: alg,
		Root:      root,
		Goal:      goal,
		GraphSize: s.graph.Len(),
	}
	var hook func(c maze.Cell, explored int)
	if progress && s.opts.ProgressEvery > 0 {
		hook = s.progressHook(alg, out.RunID)
	}

	start := time.Now()
	pred, explored, found, err := s.search(ctx, alg, root, goal, hook)
	if err != nil {
		return nil, fmt.Errorf("solver: %s run %s: %w", alg, out.RunID, err)
	}
	if found {
		out.Path, err = backtrack.FromRoot(pred, root, goal)
		if err != nil {
			return nil, fmt.Errorf("solver: %s run %s: %w", alg, out.RunID, err)
		}
	}
	out.Elapsed = time.Since(start)
	out.Explored = explored
	out.Found = found

	return out, nil
}

// search dispatches to the selected algorithm and flattens its result.
func (s *Solver) search(ctx context.Context, alg Algorithm, root, goal maze.Cell,
	hook func(c maze.Cell, explored int)) (map[maze.Cell]maze.Cell, int, bool, error) {
	switch alg {
	case DFS:
		opts := []dfs.Option{dfs.WithContext(ctx), dfs.WithMaxExplored(s.opts.MaxExplored)}
		if hook != nil {
			opts = append(opts, dfs.WithOnExplore(func(c maze.Cell, explored, _ int) { hook(c, explored) }))
		}
		res, err := dfs.Search(s.graph, root, goal, opts...)
		if err != nil {
			return nil, 0, false, err
		}
		return res.Predecessors, res.Explored, res.Found, nil

	case AStar:
		opts := []astar.Option{
			astar.WithContext(ctx),
			astar.WithWeight(s.opts.Weight),
			astar.WithStepCost(s.opts.StepCost),
			astar.WithMaxExplored(s.opts.MaxExplored),
		}
		if hook != nil {
			opts = append(opts, astar.WithOnExplore(func(c maze.Cell, explored, _ int) { hook(c, explored) }))
		}
		res, err := astar.Search(s.graph, root, goal, opts...)
		if err != nil {
			return nil, 0, false, err
		}
		return res.Predecessors, res.Explored, res.Found, nil

	case BFS:
		opts := []bfs.Option{bfs.WithContext(ctx), bfs.WithMaxExplored(s.opts.MaxExplored)}
		if hook != nil {
			opts = append(opts, bfs.WithOnExplore(func(c maze.Cell, explored, _ int) { hook(c, explored) }))
		}
		res, err := bfs.Search(s.graph, root, goal, opts...)
		if err != nil {
			return nil, 0, false, err
		}
		return res.Predecessors, res.Explored, res.Found, nil
	}

	return nil, 0, false, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
}

// nilGraphErr returns the nil-graph sentinel of the package behind alg.
func nilGraphErr(alg Algorithm) error {
	switch alg {
	case AStar:
		return astar.ErrNilGraph
	case BFS:
		return bfs.ErrGraphNil
	case DFS:
		return dfs.ErrGraphNil
	}

	return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
}

// progressHook logs the explored share of the maze every ProgressEvery cells.
func (s *Solver) progressHook(alg Algorithm, id uuid.UUID) func(maze.Cell, int) {
	every := s.opts.ProgressEvery
	size := s.graph.Len()

	return func(c maze.Cell, explored int) {
		if explored%every != 0 {
			return
		}
		pct := 0
		if size > 0 {
			pct = explored * 100 / size
		}
		s.logger.Debug("search progress",
			zap.String("algorithm", string(alg)),
			zap.Stringer("run", id),
			zap.Int("explored", explored),
			zap.Int("percent", pct),
			zap.Stringer("cell", c),
		)
	}
}

func (s *Solver) logOutcome(out *Outcome) {
	fields := []zap.Field{
		zap.String("algorithm", string(out.Algorithm)),
		zap.Stringer("run", out.RunID),
		zap.Stringer("root", out.Root),
		zap.Stringer("goal", out.Goal),
		zap.Int("explored", out.Explored),
		zap.Int("graph_size", out.GraphSize),
		zap.Duration("elapsed", out.Elapsed),
	}
	if !out.Found {
		s.logger.Info("no solution possible", fields...)
		return
	}
	s.logger.Info("goal reached", append(fields, zap.Int("path_length", len(out.Path)))...)
}

// summarize aggregates run timings with mean, population standard deviation,
// median, min and max, and checks that every run matched the first.
func summarize(outcomes []*Outcome) (*Summary, error) {
	first := outcomes[0]
	elapsed := make(stats.Float64Data, len(outcomes))
	deterministic := true
	for i, o := range outcomes {
		elapsed[i] = float64(o.Elapsed)
		if o.Found != first.Found || o.Explored != first.Explored || len(o.Path) != len(first.Path) {
			deterministic = false
		}
	}

	mean, err := elapsed.Mean()
	if err != nil {
		return nil, fmt.Errorf("solver: mean: %w", err)
	}
	sd, err := elapsed.StandardDeviation()
	if err != nil {
		return nil, fmt.Errorf("solver: stddev: %w", err)
	}
	median, err := elapsed.Median()
	if err != nil {
		return nil, fmt.Errorf("solver: median: %w", err)
	}
	lo, err := elapsed.Min()
	if err != nil {
		return nil, fmt.Errorf("solver: min: %w", err)
	}
	hi, err := elapsed.Max()
	if err != nil {
		return nil, fmt.Errorf("solver: max: %w", err)
	}

	return &Summary{
		First:         first,
		Runs:          len(outcomes),
		Mean:          time.Duration(mean),
		StdDev:        time.Duration(sd),
		Median:        time.Duration(median),
		Min:           time.Duration(lo),
		Max:           time.Duration(hi),
		Deterministic: deterministic,
	}, nil
}
