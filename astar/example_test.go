// Package astar_test provides examples demonstrating the weighted best-first search.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/backtrack"
	"github.com/katalvlaran/mazepath/maze"
)

// ExampleSearch solves the ring maze that depth-first search walks the long
// way round. The goal heuristic steers the search down the short side.
func ExampleSearch() {
	// 1) Parse the maze text; the final row is the border.
	grid, err := maze.Parse("- - -\n-   -\n- - -\n#####\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// 2) Build the adjacency map.
	g, err := maze.Build(grid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Search with the default weight 0.8 and unit steps.
	root, goal := maze.Cell{X: 0, Y: 0}, maze.Cell{X: 0, Y: 2}
	res, err := astar.Search(g, root, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) Rebuild the path root → goal.
	path, _ := backtrack.FromRoot(res.Predecessors, root, goal)
	fmt.Println("explored:", res.Explored)
	fmt.Println("path:", path)
	// Output:
	// explored: 3
	// path: [(0,0) (0,1) (0,2)]
}
