// Package dfs implements depth-first search between two cells of a maze.Graph
// using an explicit last-in-first-out frontier.
//
// What:
//
//   - Search(g, root, goal, opts...) pops the most recently pushed cell,
//     counts it as explored, stops on the goal, and otherwise expands the
//     cell once: every undiscovered neighbour is pushed (in the graph's
//     neighbour order) and its predecessor set to the popped cell.
//   - A cell may be pushed several times before its first pop; the predecessor
//     kept is the one written by the last push. Stale copies popped after the
//     first expansion only add to the explored count.
//
// This is the explicit-stack formulation, not recursive backtracking: it finds
// a path, not necessarily a shortest one.
//
// Complexity:
//
//   - Time:   O(V + E) pops and pushes.
//   - Memory: O(V + E) for the frontier (duplicates) and the maps.
//
// Options:
//
//   - WithContext(ctx)       cancellation, checked once per pop.
//   - WithMaxExplored(n)     stop with ErrExploreLimit after n pops.
//   - WithOnExplore(fn)      progress hook after every pop.
//
// Errors:
//
//   - ErrGraphNil            graph pointer is nil.
//   - ErrOptionViolation     invalid option value.
//   - ErrExploreLimit        MaxExplored reached before the goal.
//   - maze.ErrUnknownCell    a popped cell is not a node of the graph.
//   - context errors         ctx cancelled or past its deadline.
//
// An unreachable goal is not an error: Result.Found is false and
// Result.Predecessors is nil.
package dfs
