// Package search finds the minimal total cost of solving a burrow with an
// A* best-first search.
//
// Overview:
//
//   - The frontier holds bundles (state, exact cost so far, total estimate)
//     in a min-heap keyed by the estimate; the lowest estimate is expanded
//     first.
//   - Successors come from burrow.State.Moves, which commits to direct moves
//     home whenever one exists. WithoutPruning switches to AllMoves.
//   - Each move carries the exact change of the total estimate, so frontier
//     keys are maintained incrementally from the start state's Estimate.
//   - Expanded states enter a closed set and are never expanded again; the
//     heuristic is consistent, so the first expansion is always the cheapest.
//   - The search ends when a solved state is popped; its cost is optimal.
//
// Failure:
//
//   - If the frontier empties first, Solve returns ErrNoSolution. This only
//     happens for malformed instances (for example piece counts that cannot
//     fill every room) and is a hard failure: there is no partial answer.
//
// API reference:
//
//	func Solve(p *burrow.Params, start burrow.State, opts ...Option) (Result, error)
//
//	  - opts:
//	      • WithReturnPath():        fill Result.Path with the states start→goal.
//	      • WithoutPruning():        expand every legal move.
//	      • WithoutHeuristic():      uniform-cost search (frontier key = cost).
//	      • WithLogger(l):           logrus logger for debug tracing.
//	      • WithProgressEvery(n):    debug progress line every n expansions.
//
// Thread safety:
//
//   - Solve keeps all mutable state local to the call; concurrent calls are
//     safe, including on the same Params.
//
// Example:
//
//	prob, err := burrow.NewProblem(cols)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := search.Solve(prob.Params, prob.Start)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Cost)
package search
