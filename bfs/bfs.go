// Package bfs provides breadth-first search between two cells of a maze.Graph.
//
// BFS explores cells in increasing edge count from the root, so the path it
// returns is a shortest path in steps. It serves as the exact baseline the
// depth-first and weighted searches are compared against.
//
// Determinism
//
//	Neighbours are enqueued in the graph's neighbour-check order, so the
//	visit sequence and the predecessor map are fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)   (each cell enqueued at most once)
//   - Memory: O(V)
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  maze.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph    *maze.Graph
	opts     Options
	ctx      context.Context
	goal     maze.Cell
	queue    []queueItem
	pred     map[maze.Cell]maze.Cell
	explored int
}

// Search runs breadth-first search on g from root until goal is dequeued or
// every reachable cell has been explored.
// Returns ErrGraphNil, ErrOptionViolation, ErrExploreLimit, context errors or
// a wrapped maze.ErrUnknownCell; an unreachable goal yields Found=false.
func Search(g *maze.Graph, root, goal maze.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Len()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		goal:  goal,
		queue: make([]queueItem, 0, n),
		pred:  make(map[maze.Cell]maze.Cell, n),
	}

	// Seed queue with root (no parent)
	w.enqueue(root, 0, maze.NoCell)
	depth, err := w.loop()
	if err != nil {
		return nil, err
	}
	if depth < 0 {
		return &Result{Depth: -1, Explored: w.explored}, nil
	}

	return &Result{Predecessors: w.pred, Depth: depth, Explored: w.explored, Found: true}, nil
}

// enqueue records the parent of c and appends it to the queue.
func (w *walker) enqueue(c maze.Cell, d int, parent maze.Cell) {
	w.pred[c] = parent
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the queue until the goal, exhaustion, error or cancellation.
// It returns the goal depth, or -1 if the goal was never dequeued.
func (w *walker) loop() (int, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return -1, w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.explored++
		w.opts.OnExplore(item.cell, w.explored, item.depth)

		if item.cell == w.goal {
			return item.depth, nil
		}
		if w.opts.MaxExplored > 0 && w.explored >= w.opts.MaxExplored {
			return -1, fmt.Errorf("%w: %d dequeues", ErrExploreLimit, w.explored)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return -1, err
		}
	}

	return -1, nil
}

// enqueueNeighbors enqueues each unseen neighbour of item within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nbs, err := w.graph.Neighbors(item.cell)
	if err != nil {
		return fmt.Errorf("bfs: expanding %s: %w", item.cell, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nb := range nbs {
		// first time seen?
		if _, seen := w.pred[nb]; !seen {
			w.enqueue(nb, nextDepth, item.cell)
		}
	}

	return nil
}
