// Package mazepath solves text mazes as graph searches and compares how much
// of the maze each search has to explore.
//
// What is mazepath?
//
//	A small, deterministic toolkit that brings together:
//		• Maze model: parse maze text, build the cell adjacency map
//		• Uninformed search: depth-first (explicit stack), breadth-first
//		• Informed search: weighted A* with a Manhattan goal estimate
//		• Path reconstruction from predecessor maps
//		• A timed solver with repeated runs and a statistics table
//
// Packages:
//
//	maze/        Grid, Cell, Direction and the adjacency Graph
//	pqueue/      stable min-priority queue with lazy duplicates
//	dfs/         depth-first search, first path found
//	bfs/         breadth-first search, fewest moves
//	astar/       weighted best-first search
//	backtrack/   goal → root path reconstruction
//	solver/      timed runs, benchmarks and logging
//	report/      per-algorithm statistics table
//	mazeio/      maze and solution files
//	config/      YAML, .env and MAZEPATH_* settings
//
// Maze text:
//
//	- - -      '-' marks an open cell; nodes sit on every second column
//	-   -      one row down is one step, two columns across is one step
//	- - -
//	#####      the final row is border and never walkable
//
// Quick start:
//
//	grid, _ := maze.Parse(text)
//	g, _ := maze.Build(grid)
//	root, goal, _ := solver.DefaultEndpoints(g)
//	out, _ := solver.New(g, nil).Run(ctx, solver.AStar, root, goal)
//	fmt.Println(out.Found, len(out.Path), out.Explored)
//
// The command in cmd/mazesolve wires everything together and writes the
// solved maze next to the input as <name>-Solution.txt.
package mazepath
