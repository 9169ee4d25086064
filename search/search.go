// Package search implements an A* solver for burrow states.
//
// The frontier is a min-heap of bundles keyed by total cost estimate
// (cost so far + burrow.State.Estimate). Each bundle's key is updated
// incrementally from the Delta reported by the move generator, so Estimate is
// evaluated once, for the start state.
//
// Complexity:
//
//   - Time:  O(N log N) heap work for N pushed bundles, plus move generation
//     per expanded state (O(rooms * hall) moves at most).
//   - Space: O(N) for the frontier and the closed set.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: successors are pushed even when a cheaper copy may
//     already be queued; stale copies are skipped when popped if their state
//     is already closed.
//   - The heuristic is consistent, so a state's first pop carries its optimal
//     cost and closed states are never reopened.
//   - Ties between equal keys are broken by heap order; the returned cost does
//     not depend on it, the visiting order does.
package search

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/burrow/burrow"
)

// Solve returns the minimal total cost of moving every piece of start home.
//
// Preconditions and validation (in order):
//  1. p must be non-nil (ErrNilParams).
//  2. start must fit p (ErrDimensionMismatch).
//
// If the frontier empties first, Solve returns ErrNoSolution wrapped with the
// number of expanded states.
func Solve(p *burrow.Params, start burrow.State, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if p == nil {
		return Result{}, ErrNilParams
	}
	if !start.Fits(p) {
		return Result{}, fmt.Errorf("%w: %s", ErrDimensionMismatch, start)
	}

	r := &runner{
		p:       p,
		options: cfg,
		log:     cfg.Logger.WithField("component", "search"),
		open:    make(bundlePQ, 0, 1024),
		closed:  mapset.New[burrow.State](),
	}
	r.init(start)

	return r.process()
}

// runner holds the mutable state of a single Solve call.
type runner struct {
	p       *burrow.Params
	options Options
	log     logrus.FieldLogger

	open   bundlePQ                // frontier, min-heap on estimate
	closed mapset.Set[burrow.State] // expanded states

	expanded int
	pushed   int
}

func (r *runner) init(start burrow.State) {
	var est int64
	if r.options.Heuristic {
		est = start.Estimate(r.p)
	}

	heap.Init(&r.open)
	r.push(&bundle{state: start, cost: 0, estimate: est})

	r.log.WithFields(logrus.Fields{
		"estimate": est,
		"prune":    r.options.Prune,
	}).Debugf("search started from %s", start)
}

func (r *runner) process() (Result, error) {
	for r.open.Len() > 0 {
		// 1) Pop the bundle with the lowest total estimate.
		b := heap.Pop(&r.open).(*bundle)

		// 2) Skip stale duplicates of states already expanded at a lower cost.
		if r.closed.Has(b.state) {
			continue
		}

		// 3) The first solved state popped carries the optimal cost.
		if b.state.Solved(r.p) {
			res := Result{Cost: b.cost, Expanded: r.expanded, Pushed: r.pushed}
			if r.options.ReturnPath {
				res.Path = b.path()
			}
			r.log.WithFields(logrus.Fields{
				"cost":     res.Cost,
				"expanded": res.Expanded,
				"pushed":   res.Pushed,
			}).Debug("search solved")

			return res, nil
		}

		// 4) Push successors, then close the state.
		r.expand(b)
		r.closed.Put(b.state)
		r.expanded++

		// 5) Report progress every ProgressEvery expansions.
		if n := r.options.ProgressEvery; n > 0 && r.expanded%n == 0 {
			r.log.WithFields(logrus.Fields{
				"expanded": r.expanded,
				"open":     r.open.Len(),
				"cost":     b.cost,
				"estimate": b.estimate,
			}).Debug("search progress")
		}
	}

	r.log.WithField("expanded", r.expanded).Debug("search exhausted")

	return Result{}, fmt.Errorf("%w: %d states expanded", ErrNoSolution, r.expanded)
}

// expand pushes every successor of b that has not been expanded yet.
func (r *runner) expand(b *bundle) {
	// 1) Generate successors, pruned or not.
	var moves []burrow.Move
	if r.options.Prune {
		moves = b.state.Moves(r.p)
	} else {
		moves = b.state.AllMoves(r.p)
	}

	// 2) Push every successor that is not closed yet, keyed by the parent's
	//    estimate plus the move's delta (or by cost alone without heuristic).
	for _, m := range moves {
		if r.closed.Has(m.Next) {
			continue
		}

		next := &bundle{state: m.Next, cost: b.cost + m.Cost}
		if r.options.Heuristic {
			next.estimate = b.estimate + m.Delta
		} else {
			next.estimate = next.cost
		}
		if r.options.ReturnPath {
			next.parent = b
		}
		r.push(next)
	}
}

func (r *runner) push(b *bundle) {
	heap.Push(&r.open, b)
	r.pushed++
}

// bundle is a state together with its exact cost from the start and its
// total cost estimate. parent is only set when a path was requested.
type bundle struct {
	state    burrow.State
	cost     int64
	estimate int64
	parent   *bundle
}

// path returns the states from the start to b.
func (b *bundle) path() []burrow.State {
	var out []burrow.State
	for cur := b; cur != nil; cur = cur.parent {
		out = append(out, cur.state)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// bundlePQ is a min-heap of *bundle ordered by estimate.
type bundlePQ []*bundle

// Len returns the number of items in the heap.
func (pq bundlePQ) Len() int { return len(pq) }

// Less orders bundles by ascending estimate.
func (pq bundlePQ) Less(i, j int) bool { return pq[i].estimate < pq[j].estimate }

// Swap swaps two elements in the heap.
func (pq bundlePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element onto the heap. Called by heap.Push.
func (pq *bundlePQ) Push(x interface{}) { *pq = append(*pq, x.(*bundle)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *bundlePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
