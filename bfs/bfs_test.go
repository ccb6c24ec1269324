package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/mazepath/backtrack"
	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/maze"
)

const ring = "- - -\n-   -\n- - -\n#####\n"

func mustGraph(t *testing.T, text string) *maze.Graph {
	t.Helper()
	grid, err := maze.Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g, err := maze.Build(grid)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	return g
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	if _, err := bfs.Search(nil, maze.Cell{}, maze.Cell{}); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := mustGraph(t, ring)
	if _, err := bfs.Search(g, maze.Cell{}, maze.Cell{}, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.Search(g, maze.Cell{}, maze.Cell{}, bfs.WithMaxExplored(-3)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative cap: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.Search(g, maze.Cell{X: 2, Y: 1}, maze.Cell{}); !errors.Is(err, maze.ErrUnknownCell) {
		t.Errorf("wall root: want ErrUnknownCell, got %v", err)
	}
}

// TestSearch_ShortestOnRing picks the short side of the ring.
func TestSearch_ShortestOnRing(t *testing.T) {
	g := mustGraph(t, ring)
	root, goal := maze.Cell{X: 0, Y: 0}, maze.Cell{X: 0, Y: 2}

	res, err := bfs.Search(g, root, goal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Found || res.Depth != 2 {
		t.Fatalf("Found=%v Depth=%d; want true, 2", res.Found, res.Depth)
	}
	path, err := backtrack.FromRoot(res.Predecessors, root, goal)
	if err != nil {
		t.Fatalf("FromRoot: %v", err)
	}
	want := []maze.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestSearch_Unreachable reports Found=false with every reachable cell explored.
func TestSearch_Unreachable(t *testing.T) {
	g := mustGraph(t, "- - -   - -\n###########\n")
	res, err := bfs.Search(g, maze.Cell{X: 0, Y: 0}, maze.Cell{X: 8, Y: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Found || res.Predecessors != nil || res.Depth != -1 {
		t.Errorf("got %+v; want not found", res)
	}
	if res.Explored != 3 {
		t.Errorf("Explored = %d; want 3", res.Explored)
	}
}

// TestSearch_MaxDepth hides a goal beyond the depth limit.
func TestSearch_MaxDepth(t *testing.T) {
	g := mustGraph(t, ring)
	res, err := bfs.Search(g, maze.Cell{X: 0, Y: 0}, maze.Cell{X: 4, Y: 2}, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Found {
		t.Errorf("goal at depth 4 found with MaxDepth 2")
	}
}

func TestSearch_HooksAndCancel(t *testing.T) {
	g := mustGraph(t, ring)
	var depths []int
	res, err := bfs.Search(g, maze.Cell{X: 0, Y: 0}, maze.Cell{X: 4, Y: 2},
		bfs.WithOnExplore(func(_ maze.Cell, _, depth int) { depths = append(depths, depth) }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(depths); i++ {
		if depths[i] < depths[i-1] {
			t.Fatalf("depths not monotone: %v", depths)
		}
	}
	if len(depths) != res.Explored {
		t.Errorf("hook calls = %d; Explored = %d", len(depths), res.Explored)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.Search(g, maze.Cell{}, maze.Cell{X: 4, Y: 2}, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: want context.Canceled, got %v", err)
	}
}
