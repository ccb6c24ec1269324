package dfs

import (
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
)

// searcher encapsulates the per-call state of a depth-first search.
type searcher struct {
	graph      *maze.Graph
	opts       Options
	goal       maze.Cell
	stack      []maze.Cell
	discovered map[maze.Cell]bool
	pred       map[maze.Cell]maze.Cell
	explored   int
}

// Search runs depth-first search on g from root until goal is popped or the
// frontier is exhausted. The graph is only read.
//
// Returns a Result with Found=false and nil Predecessors when goal is
// unreachable. Errors are reserved for misuse (nil graph, bad options,
// cells that are not nodes), cancellation and the explore cap.
func Search(g *maze.Graph, root, goal maze.Cell, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Fresh state: frontier holds the root only
	n := g.Len()
	s := &searcher{
		graph:      g,
		opts:       o,
		goal:       goal,
		stack:      append(make([]maze.Cell, 0, n), root),
		discovered: make(map[maze.Cell]bool, n),
		pred:       map[maze.Cell]maze.Cell{root: maze.NoCell},
	}

	// 4. Run to goal or exhaustion
	found, err := s.run()
	if err != nil {
		return nil, err
	}
	if !found {
		return &Result{Explored: s.explored}, nil
	}

	return &Result{Predecessors: s.pred, Explored: s.explored, Found: true}, nil
}

// run drives the pop/expand loop and reports whether the goal was popped.
func (s *searcher) run() (bool, error) {
	for len(s.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-s.opts.Ctx.Done():
			return false, s.opts.Ctx.Err()
		default:
		}

		// 2. Pop the most recently pushed cell
		v := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.explored++
		if s.opts.OnExplore != nil {
			s.opts.OnExplore(v, s.explored, len(s.discovered))
		}

		// 3. Goal check
		if v == s.goal {
			return true, nil
		}
		if s.opts.MaxExplored > 0 && s.explored >= s.opts.MaxExplored {
			return false, fmt.Errorf("%w: %d pops", ErrExploreLimit, s.explored)
		}

		// 4. Expand once
		if s.discovered[v] {
			continue
		}
		s.discovered[v] = true
		if err := s.expand(v); err != nil {
			return false, err
		}
	}

	return false, nil
}

// expand pushes every undiscovered neighbour of v, recording v as its predecessor.
func (s *searcher) expand(v maze.Cell) error {
	nbs, err := s.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: expanding %s: %w", v, err)
	}
	for _, w := range nbs {
		if s.discovered[w] {
			continue
		}
		s.stack = append(s.stack, w)
		s.pred[w] = v // last push before the first pop wins
	}

	return nil
}
