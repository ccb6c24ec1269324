package config

import (
	"fmt"
	"strconv"
	"strings"
)

// lookupFunc matches os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// applyEnv overrides fields from MAZEPATH_* variables.
func (c *Config) applyEnv(lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	list := func(key string, dst *[]string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = splitList(v)
		}
	}
	integer := func(key string, dst *int) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrBadEnv, EnvPrefix, key, v)
		}
		*dst = n
		return nil
	}
	float := func(key string, dst *float64) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrBadEnv, EnvPrefix, key, v)
		}
		*dst = f
		return nil
	}
	boolean := func(key string, dst *bool) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrBadEnv, EnvPrefix, key, v)
		}
		*dst = b
		return nil
	}

	str("MAZE", &c.Maze)
	str("MAZE_DIR", &c.MazeDir)
	str("OPEN_MARKER", &c.OpenMarker)
	str("PATH_MARKER", &c.PathMarker)
	str("ROOT", &c.Root)
	str("GOAL", &c.Goal)
	str("LOG_LEVEL", &c.LogLevel)
	list("ALGORITHMS", &c.Algorithms)
	list("NEIGHBOR_ORDER", &c.NeighborOrder)

	for _, err := range []error{
		integer("RUNS", &c.Runs),
		integer("WORKERS", &c.Workers),
		integer("COLUMN_STRIDE", &c.ColumnStride),
		integer("MAX_EXPLORED", &c.MaxExplored),
		integer("PROGRESS_EVERY", &c.ProgressEvery),
		float("WEIGHT", &c.Weight),
		float("STEP_COST", &c.StepCost),
		boolean("WRITE_SOLUTION", &c.WriteSolution),
	} {
		if err != nil {
			return err
		}
	}

	return nil
}

// splitList splits a comma-separated value, dropping empty items.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
