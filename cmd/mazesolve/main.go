// Command mazesolve solves text mazes with depth-first, A* or breadth-first
// search, prints timing statistics and writes the solved maze next to the
// input with the path marked.
//
// Usage:
//
//	mazesolve [-config mazepath.yaml] [-maze maze-Large.txt] [-alg dfs,astar] [-runs 5]
//
// Settings come from the YAML file, then .env and MAZEPATH_* variables,
// then flags. Without a maze the files in -dir are listed and one is chosen
// interactively; with -runs 0 the run count is asked for.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/mazeio"
	"github.com/katalvlaran/mazepath/report"
	"github.com/katalvlaran/mazepath/solver"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "mazesolve:", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "YAML settings file")
	mazeFile := flag.String("maze", "", "maze file; empty = choose interactively")
	mazeDir := flag.String("dir", "", "directory listed when choosing a maze")
	algs := flag.String("alg", "", "comma-separated algorithms: dfs, astar, bfs")
	runs := flag.Int("runs", -1, "timed runs per algorithm; 0 = ask")
	workers := flag.Int("workers", 0, "concurrent runs")
	weight := flag.Float64("weight", -1, "A* heuristic weight")
	root := flag.String("root", "", "start cell as x,y; empty = first open cell")
	goal := flag.String("goal", "", "goal cell as x,y; empty = last open cell")
	noWrite := flag.Bool("no-write", false, "do not write solution files")
	level := flag.String("log-level", "", "debug, info, warn or error")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	// flags override only when given
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "maze":
			cfg.Maze = *mazeFile
		case "dir":
			cfg.MazeDir = *mazeDir
		case "alg":
			cfg.Algorithms = strings.Split(*algs, ",")
		case "runs":
			cfg.Runs = *runs
		case "workers":
			cfg.Workers = *workers
		case "weight":
			cfg.Weight = *weight
		case "root":
			cfg.Root = *root
		case "goal":
			cfg.Goal = *goal
		case "no-write":
			cfg.WriteSolution = !*noWrite
		case "log-level":
			cfg.LogLevel = *level
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in := bufio.NewReader(os.Stdin)
	if cfg.Maze == "" {
		mazes, err := mazeio.ListMazes(cfg.MazeDir)
		if err != nil {
			return err
		}
		if cfg.Maze, err = chooseMaze(in, os.Stdout, mazes); err != nil {
			return err
		}
	}
	if cfg.Runs == 0 {
		if cfg.Runs, err = askRuns(in, os.Stdout); err != nil {
			return err
		}
	}

	return solve(ctx, cfg, logger)
}

// newLogger builds a console logger at the configured level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = true

	return zc.Build()
}

// solve loads the maze, benchmarks every configured algorithm, writes the
// solutions and prints the statistics table.
func solve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	log := logger.With(zap.String("maze", cfg.Maze))

	// 1) Read and parse the maze
	lines, err := mazeio.ReadLines(cfg.Maze)
	if err != nil {
		return err
	}
	log.Info("file read into memory", zap.Int("rows", len(lines)))
	mopts, err := cfg.MazeOptions()
	if err != nil {
		return err
	}
	grid, err := maze.FromLines(lines, mopts...)
	if err != nil {
		return err
	}

	// 2) Build the adjacency map
	g, err := maze.Build(grid)
	if err != nil {
		return err
	}
	log.Info("adjacency list built",
		zap.Int("cells", g.Len()),
		zap.Int("passages", g.Edges()),
		zap.Int("regions", len(g.Components())),
	)

	// 3) Resolve endpoints
	rootCell, goalCell, err := solver.DefaultEndpoints(g)
	if err != nil {
		return err
	}
	r, gl, err := cfg.Endpoints()
	if err != nil {
		return err
	}
	if r != nil {
		rootCell = *r
	}
	if gl != nil {
		goalCell = *gl
	}
	if err := solver.CheckEndpoints(g, rootCell, goalCell); err != nil {
		return err
	}

	// 4) Benchmark each algorithm
	algs, err := cfg.ParsedAlgorithms()
	if err != nil {
		return err
	}
	marker, err := cfg.PathRune()
	if err != nil {
		return err
	}
	s := solver.New(g, log, cfg.SolverOptions()...)
	rows := make([]report.Row, 0, len(algs))
	for _, alg := range algs {
		log.Info("solving started", zap.String("algorithm", alg.Title()), zap.Int("runs", cfg.Runs))
		sum, err := s.Benchmark(ctx, alg, rootCell, goalCell, cfg.Runs)
		if err != nil {
			return err
		}
		row, err := report.RowFromSummary(sum)
		if err != nil {
			return err
		}
		rows = append(rows, row)

		if !cfg.WriteSolution || !sum.First.Found {
			continue
		}
		// 5) Write the marked maze
		tag := ""
		if len(algs) > 1 {
			tag = string(alg)
		}
		out := mazeio.SolutionPath(cfg.Maze, tag)
		if err := mazeio.WriteLines(out, grid.Annotate(sum.First.Path, marker)); err != nil {
			return err
		}
		log.Info("file saved", zap.String("algorithm", string(alg)), zap.String("path", out))
	}

	// 6) Print the statistics
	fmt.Println()
	return report.Table{}.Render(os.Stdout, rows)
}
