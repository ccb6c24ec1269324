// Package config loads mazesolve settings.
//
// Settings are layered: built-in defaults, then an optional YAML file, then
// an optional .env file and MAZEPATH_* environment variables. Later layers
// override earlier ones. Validate checks the merged result.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/solver"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "MAZEPATH_"

// DefaultEnvFile is the dotenv file read when Load is given none.
const DefaultEnvFile = ".env"

var (
	// ErrDecode indicates a YAML file that cannot be decoded.
	ErrDecode = errors.New("config: cannot decode file")
	// ErrBadEnv indicates an environment override that cannot be parsed.
	ErrBadEnv = errors.New("config: bad environment value")
	// ErrInvalid indicates a setting outside its allowed range.
	ErrInvalid = errors.New("config: invalid setting")
)

// Config is the merged mazesolve configuration.
type Config struct {
	Maze          string   `yaml:"maze"`           // maze file; empty = choose from MazeDir
	MazeDir       string   `yaml:"maze_dir"`       // directory listed for interactive choice
	Algorithms    []string `yaml:"algorithms"`     // dfs, astar, bfs
	Runs          int      `yaml:"runs"`           // timed runs per algorithm; 0 = ask
	Workers       int      `yaml:"workers"`        // concurrent runs
	Weight        float64  `yaml:"weight"`         // A* heuristic multiplier
	StepCost      float64  `yaml:"step_cost"`      // A* per-move cost
	ColumnStride  int      `yaml:"column_stride"`  // columns between node cells
	NeighborOrder []string `yaml:"neighbor_order"` // e.g. [up, right, left, down]
	OpenMarker    string   `yaml:"open_marker"`
	PathMarker    string   `yaml:"path_marker"`
	Root          string   `yaml:"root"` // "x,y"; empty = first open cell
	Goal          string   `yaml:"goal"` // "x,y"; empty = last open cell
	WriteSolution bool     `yaml:"write_solution"`
	LogLevel      string   `yaml:"log_level"`
	MaxExplored   int      `yaml:"max_explored"`
	ProgressEvery int      `yaml:"progress_every"`
}

// Default returns the built-in settings: DFS on a maze chosen interactively,
// a prompted run count and the default A* and grid parameters.
func Default() *Config {
	return &Config{
		MazeDir:       ".",
		Algorithms:    []string{string(solver.DFS)},
		Workers:       1,
		Weight:        astar.DefaultWeight,
		StepCost:      astar.DefaultStepCost,
		ColumnStride:  maze.DefaultColumnStride,
		NeighborOrder: []string{"up", "right", "left", "down"},
		OpenMarker:    string(maze.DefaultOpenMarker),
		PathMarker:    string(maze.DefaultPathMarker),
		WriteSolution: true,
		LogLevel:      "info",
		ProgressEvery: solver.DefaultProgressEvery,
	}
}

// Load merges the defaults, the YAML file at path (skipped when path is
// empty) and the environment, then validates the result. envFiles are
// dotenv files loaded into the environment first; with none given,
// DefaultEnvFile is tried. Missing dotenv files are ignored.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables that are already set
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// readFile decodes the YAML file at path over c. Unknown keys are rejected.
func (c *Config) readFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	d.KnownFields(true)
	// an empty file keeps the defaults
	if err := d.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return nil
}

// Validate checks every setting and returns the first violation wrapped in
// ErrInvalid.
func (c *Config) Validate() error {
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms", ErrInvalid)
	}
	if _, err := c.ParsedAlgorithms(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Runs < 0 {
		return fmt.Errorf("%w: runs %d < 0", ErrInvalid, c.Runs)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d < 1", ErrInvalid, c.Workers)
	}
	if c.MaxExplored < 0 || c.ProgressEvery < 0 {
		return fmt.Errorf("%w: max_explored and progress_every must be ≥ 0", ErrInvalid)
	}
	if _, err := c.MazeOptions(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.PathRune(); err != nil {
		return err
	}
	if _, _, err := c.Endpoints(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	// the search packages re-check these; fail early with the setting name
	if c.Weight < 0 {
		return fmt.Errorf("%w: weight %g < 0", ErrInvalid, c.Weight)
	}
	if c.StepCost <= 0 {
		return fmt.Errorf("%w: step_cost %g ≤ 0", ErrInvalid, c.StepCost)
	}

	return nil
}

// ParsedAlgorithms returns the configured algorithms in order, without duplicates.
func (c *Config) ParsedAlgorithms() ([]solver.Algorithm, error) {
	seen := make(map[solver.Algorithm]bool, len(c.Algorithms))
	out := make([]solver.Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		alg, err := solver.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		if !seen[alg] {
			seen[alg] = true
			out = append(out, alg)
		}
	}

	return out, nil
}

// MazeOptions converts the grid settings into maze options.
func (c *Config) MazeOptions() ([]maze.Option, error) {
	open, err := singleRune("open_marker", c.OpenMarker)
	if err != nil {
		return nil, err
	}
	if c.ColumnStride < 1 {
		return nil, fmt.Errorf("column_stride %d < 1", c.ColumnStride)
	}
	order := make([]maze.Direction, 0, len(c.NeighborOrder))
	seen := make(map[maze.Direction]bool, 4)
	for _, name := range c.NeighborOrder {
		d, err := maze.ParseDirection(name)
		if err != nil {
			return nil, err
		}
		if seen[d] {
			return nil, fmt.Errorf("%w: %s listed twice", maze.ErrBadNeighborOrder, d)
		}
		seen[d] = true
		order = append(order, d)
	}
	if len(order) != 4 {
		return nil, fmt.Errorf("%w: need all four directions, got %d", maze.ErrBadNeighborOrder, len(order))
	}

	return []maze.Option{
		maze.WithOpenMarker(open),
		maze.WithColumnStride(c.ColumnStride),
		maze.WithNeighborOrder(order...),
	}, nil
}

// PathRune returns the marker written over solution cells.
func (c *Config) PathRune() (rune, error) {
	r, err := singleRune("path_marker", c.PathMarker)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return r, nil
}

// Endpoints returns the configured root and goal; nil means "use the default".
func (c *Config) Endpoints() (root, goal *maze.Cell, err error) {
	parse := func(s string) (*maze.Cell, error) {
		if strings.TrimSpace(s) == "" {
			return nil, nil
		}
		cell, err := maze.ParseCell(s)
		if err != nil {
			return nil, err
		}
		return &cell, nil
	}
	if root, err = parse(c.Root); err != nil {
		return nil, nil, err
	}
	if goal, err = parse(c.Goal); err != nil {
		return nil, nil, err
	}

	return root, goal, nil
}

// Level returns the configured log level.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}

	return lvl, nil
}

// SolverOptions converts the search settings into solver options.
func (c *Config) SolverOptions() []solver.Option {
	return []solver.Option{
		solver.WithWeight(c.Weight),
		solver.WithStepCost(c.StepCost),
		solver.WithWorkers(c.Workers),
		solver.WithMaxExplored(c.MaxExplored),
		solver.WithProgressEvery(c.ProgressEvery),
	}
}

func singleRune(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s must be a single character, got %q", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}
