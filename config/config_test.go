package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/solver"
)

// noEnvFile points Load at a dotenv file that does not exist.
func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// unsetLater clears key for the test and restores it afterwards.
func unsetLater(t *testing.T, key string) {
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	algs, err := cfg.ParsedAlgorithms()
	require.NoError(t, err)
	assert.Equal(t, []solver.Algorithm{solver.DFS}, algs)
	assert.Equal(t, []string{"up", "right", "left", "down"}, cfg.NeighborOrder)
	r, err := cfg.PathRune()
	require.NoError(t, err)
	assert.Equal(t, 'X', r)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := config.Load("", noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "mazepath.yaml", `
maze: mazes/maze-Large.txt
algorithms: [dfs, astar, bfs]
runs: 5
workers: 4
weight: 0.5
neighbor_order: [left, right, down, up]
root: "0,0"
goal: "(10,4)"
write_solution: false
log_level: debug
`)
	cfg, err := config.Load(path, noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "mazes/maze-Large.txt", cfg.Maze)
	assert.Equal(t, []string{"dfs", "astar", "bfs"}, cfg.Algorithms)
	assert.Equal(t, 5, cfg.Runs)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 0.5, cfg.Weight)
	assert.False(t, cfg.WriteSolution)
	assert.Equal(t, 1.0, cfg.StepCost, "unset keys keep defaults")

	root, goal, err := cfg.Endpoints()
	require.NoError(t, err)
	assert.Equal(t, &maze.Cell{X: 0, Y: 0}, root)
	assert.Equal(t, &maze.Cell{X: 10, Y: 4}, goal)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), noEnvFile(t))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "bad.yaml", "mazes: typo\n"), noEnvFile(t))
	assert.ErrorIs(t, err, config.ErrDecode)

	cfg, err := config.Load(writeFile(t, "empty.yaml", ""), noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_EnvBeatsYAML(t *testing.T) {
	path := writeFile(t, "mazepath.yaml", "runs: 3\nalgorithms: [dfs]\n")
	t.Setenv("MAZEPATH_RUNS", "9")
	t.Setenv("MAZEPATH_ALGORITHMS", "astar, bfs,")
	t.Setenv("MAZEPATH_WRITE_SOLUTION", "false")

	cfg, err := config.Load(path, noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Runs)
	assert.Equal(t, []string{"astar", "bfs"}, cfg.Algorithms)
	assert.False(t, cfg.WriteSolution)
}

func TestLoad_DotEnv(t *testing.T) {
	unsetLater(t, "MAZEPATH_WEIGHT")
	unsetLater(t, "MAZEPATH_MAZE")
	t.Setenv("MAZEPATH_MAZE", "from-shell.txt")
	env := writeFile(t, ".env", "MAZEPATH_WEIGHT=1.5\nMAZEPATH_MAZE=from-dotenv.txt\n")

	cfg, err := config.Load("", env)
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.Weight)
	assert.Equal(t, "from-shell.txt", cfg.Maze, "shell variables win over the dotenv file")
}

func TestLoad_BadEnv(t *testing.T) {
	for _, key := range []string{"MAZEPATH_WEIGHT", "MAZEPATH_RUNS", "MAZEPATH_WRITE_SOLUTION"} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "heavy")
			_, err := config.Load("", noEnvFile(t))
			assert.ErrorIs(t, err, config.ErrBadEnv)
		})
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"NoAlgorithms", func(c *config.Config) { c.Algorithms = nil }},
		{"UnknownAlgorithm", func(c *config.Config) { c.Algorithms = []string{"dijkstra"} }},
		{"NegativeRuns", func(c *config.Config) { c.Runs = -1 }},
		{"ZeroWorkers", func(c *config.Config) { c.Workers = 0 }},
		{"NegativeWeight", func(c *config.Config) { c.Weight = -0.1 }},
		{"ZeroStepCost", func(c *config.Config) { c.StepCost = 0 }},
		{"ZeroStride", func(c *config.Config) { c.ColumnStride = 0 }},
		{"ShortOrder", func(c *config.Config) { c.NeighborOrder = []string{"up", "down"} }},
		{"RepeatedOrder", func(c *config.Config) { c.NeighborOrder = []string{"up", "up", "left", "right"} }},
		{"UnknownDirection", func(c *config.Config) { c.NeighborOrder = []string{"up", "down", "right", "north"} }},
		{"WideOpenMarker", func(c *config.Config) { c.OpenMarker = "--" }},
		{"EmptyPathMarker", func(c *config.Config) { c.PathMarker = "" }},
		{"BadRoot", func(c *config.Config) { c.Root = "1;2" }},
		{"BadLevel", func(c *config.Config) { c.LogLevel = "loud" }},
		{"NegativeCap", func(c *config.Config) { c.MaxExplored = -5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestParsedAlgorithms_Dedup(t *testing.T) {
	cfg := config.Default()
	cfg.Algorithms = []string{"A*", "dfs", "astar"}
	algs, err := cfg.ParsedAlgorithms()
	require.NoError(t, err)
	assert.Equal(t, []solver.Algorithm{solver.AStar, solver.DFS}, algs)
}

func TestMazeOptions_Applied(t *testing.T) {
	cfg := config.Default()
	cfg.OpenMarker = "."
	cfg.ColumnStride = 1
	opts, err := cfg.MazeOptions()
	require.NoError(t, err)

	grid, err := maze.Parse("..\n..\n##\n", opts...)
	require.NoError(t, err)
	g, err := maze.Build(grid)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())
	assert.Len(t, cfg.SolverOptions(), 5)
}
