// Package mazeio reads maze text files and writes annotated solutions.
//
// Files are plain text, one maze row per line. A file ending in a newline
// reads back with an empty final row, the same convention maze.Parse uses,
// and WriteLines drops that row again so an unmarked grid round-trips
// byte for byte.
package mazeio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SolutionSuffix ends every solution file name.
const SolutionSuffix = "-Solution.txt"

// ErrNoMazes is returned by ListMazes when a directory holds no maze files.
var ErrNoMazes = errors.New("mazeio: no maze files found")

// ReadLines reads the file at path and splits it into rows on '\n'.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mazeio: read %s: %w", path, err)
	}

	return strings.Split(string(data), "\n"), nil
}

// WriteLines writes lines to path, each terminated by '\n'. A single empty
// trailing line is treated as the final newline of the file.
func WriteLines(path string, lines []string) error {
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("mazeio: write %s: %w", path, err)
	}

	return nil
}

// SolutionPath returns where the solution of mazePath is written: next to
// the maze, named after the part of its file name before the first dot.
// A non-empty tag is inserted before the suffix, so solutions of several
// algorithms do not overwrite each other.
//
//	SolutionPath("mazes/maze-Large.txt", "")      == "mazes/maze-Large-Solution.txt"
//	SolutionPath("mazes/maze-Large.txt", "astar") == "mazes/maze-Large-astar-Solution.txt"
func SolutionPath(mazePath, tag string) string {
	dir, file := filepath.Split(mazePath)
	base, _, _ := strings.Cut(file, ".")
	if tag != "" {
		base += "-" + tag
	}

	return filepath.Join(dir, base+SolutionSuffix)
}

// ListMazes returns the .txt files in dir, sorted by name, skipping
// previously written solutions.
func ListMazes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("mazeio: list %s: %w", dir, err)
	}

	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, SolutionSuffix) {
			continue
		}
		out = append(out, filepath.Join(dir, name))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoMazes, dir)
	}
	sort.Strings(out)

	return out, nil
}
