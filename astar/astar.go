// Package astar implements a weighted best-first search between two cells of
// a maze.Graph, in the A* family.
//
// Each neighbour relaxation uses a unit step cost (configurable) and a
// priority of tentative distance plus a weighted Manhattan estimate to the
// goal. Goal heuristics are memoised per cell.
//
// Notes on implementation choices:
//
//   - The root's distance is seeded with its own weighted heuristic, while the
//     root itself is enqueued with priority 0.
//   - There is no decrease-key: an improved cell is inserted again and the
//     older, worse entry stays queued (lazy decrease-key).
//   - There is no closed set. A neighbour is only enqueued when its tentative
//     distance strictly improves, so a stale extraction cannot re-enqueue
//     anything that is not an improvement.
//   - A horizontal move spans one column stride, so with stride 2 any weight
//     above 0.5 may overestimate (the default 0.8 included): the search is
//     then not guaranteed to return a shortest path.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with lazy duplicates.
//   - Space: O(V + E) worst-case queue entries.
package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pqueue"
)

// distances maps cells to their best known tentative distance.
// Unseen cells read as +Inf through get.
type distances map[maze.Cell]float64

// get returns the distance of c, or +Inf if c has none yet.
func (d distances) get(c maze.Cell) float64 {
	if v, ok := d[c]; ok {
		return v
	}

	return math.Inf(1)
}

// heuristicCache memoises h(c, goal, m); each cell is computed once.
type heuristicCache struct {
	fn     Heuristic
	goal   maze.Cell
	m      float64
	values map[maze.Cell]float64
}

func (hc *heuristicCache) get(c maze.Cell) float64 {
	if v, ok := hc.values[c]; ok {
		return v
	}
	v := hc.fn(c, hc.goal, hc.m)
	hc.values[c] = v

	return v
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g        *maze.Graph
	options  Options
	root     maze.Cell
	goal     maze.Cell
	dist     distances
	prev     map[maze.Cell]maze.Cell
	cache    *heuristicCache
	pq       *pqueue.Queue[maze.Cell]
	explored int
}

// Search runs the weighted best-first search on g from root to goal.
//
// Returns:
//
//   - *Result with Found=true and the predecessor map when goal was extracted.
//   - *Result with Found=false and nil Predecessors when the queue ran dry.
//   - err for a nil graph, invalid options, a popped cell that is not a node
//     (wrapped maze.ErrUnknownCell), the explore cap or cancellation.
//
// Every call builds fresh state; g is only read.
func Search(g *maze.Graph, root, goal maze.Cell, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Prepare per-call state
	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		root:    root,
		goal:    goal,
		dist:    make(distances, n),
		prev:    make(map[maze.Cell]maze.Cell, n),
		cache: &heuristicCache{
			fn:     cfg.Heuristic,
			goal:   goal,
			m:      cfg.Weight,
			values: make(map[maze.Cell]float64, n),
		},
		pq: pqueue.New[maze.Cell](n),
	}

	// 4) Seed and run the main loop
	r.init()
	found, err := r.process()
	if err != nil {
		return nil, err
	}
	if !found {
		return &Result{Explored: r.explored}, nil
	}

	return &Result{
		Predecessors: r.prev,
		Explored:     r.explored,
		Cost:         r.dist[goal] - r.dist[root],
		Found:        true,
	}, nil
}

// init seeds the root distance with its weighted heuristic and enqueues the
// root with priority 0.
func (r *runner) init() {
	r.dist[r.root] = r.options.Heuristic(r.root, r.goal, r.options.Weight)
	r.prev[r.root] = maze.NoCell
	r.pq.Insert(0, r.root)
}

// process extracts the lowest-priority cell until the goal is reached or the
// queue is empty, relaxing the neighbours of every extracted cell.
func (r *runner) process() (bool, error) {
	for {
		// 1) Cancellation check
		select {
		case <-r.options.Ctx.Done():
			return false, r.options.Ctx.Err()
		default:
		}

		// 2) Extract-min; an empty queue means the goal is unreachable
		item, ok := r.pq.ExtractMin()
		if !ok {
			return false, nil
		}
		current := item.Value
		r.explored++
		if r.options.OnExplore != nil {
			r.options.OnExplore(current, r.explored, r.pq.Len())
		}

		// 3) Goal check
		if current == r.goal {
			return true, nil
		}
		if r.options.MaxExplored > 0 && r.explored >= r.options.MaxExplored {
			return false, fmt.Errorf("%w: %d extractions", ErrExploreLimit, r.explored)
		}

		// 4) Relax neighbours
		if err := r.relax(current); err != nil {
			return false, err
		}
	}
}

// relax tries to improve every neighbour of u through u.
func (r *runner) relax(u maze.Cell) error {
	nbs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: expanding %s: %w", u, err)
	}

	base := r.dist.get(u)
	for _, v := range nbs {
		// The step cost is fixed; the u→v heuristic is deliberately not used.
		tentative := base + r.options.StepCost
		if tentative >= r.dist.get(v) {
			continue
		}
		r.dist[v] = tentative
		r.pq.Insert(tentative+r.cache.get(v), v)
		r.prev[v] = u
	}

	return nil
}
