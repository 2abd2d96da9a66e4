// Package greedy - per-edge candidate queues (spec.md §4.3).
//
// Each queue holds candidates for one edge, sorted ascending by weight so
// the current best sits at the end of the slice and can be popped in O(1).
// A point may appear in multiple edges' queues; the shared "unused" set is
// the source of truth, consulted on pop to skip entries that were absorbed
// by a different edge in the meantime.
package greedy

import (
	"math/rand"
	"sort"

	"github.com/polymax/polymax/geom"
	"github.com/polymax/polymax/geometer"
)

// candidate is one (weight, point) pair queued for a specific edge.
type candidate struct {
	w float64
	p geom.Point
}

// edgeQueue is the sorted candidate list for one edge, ascending by weight
// (best candidate at the tail).
type edgeQueue struct {
	e     geom.Edge
	items []candidate
}

// buildQueue assembles the candidate queue for edge e out of candPts,
// applying the maximize/minimize candidacy rule from spec.md §4.3:
// maximization considers every nearby point; minimization only considers
// points p with SignedArea2(p,u,v) > 0 (so triangle puv lies outside the
// polygon relative to this edge's orientation).
//
// Complexity: O(m log m) where m = len(candPts).
func buildQueue(e geom.Edge, candPts []geom.Point, maximize bool, opts Options, rng *rand.Rand) *edgeQueue {
	q := &edgeQueue{e: e}
	q.items = make([]candidate, 0, len(candPts))

	for _, p := range candPts {
		if !maximize && geom.SignedArea2(p, e.U, e.V) <= 0 {
			continue
		}
		w := Weight(p, e.U, e.V, opts.Alpha, opts.Sigma, rng)
		q.items = append(q.items, candidate{w: w, p: p})
	}

	sort.Slice(q.items, func(i, j int) bool { return q.items[i].w < q.items[j].w })

	return q
}

// best returns the best remaining candidate for q, discarding stale tail
// entries whose point is no longer unused. Returns (candidate{}, false)
// once the queue is exhausted.
//
// Complexity: amortized O(1) per call across the queue's lifetime (each
// entry is discarded at most once).
func (q *edgeQueue) best(unused map[geom.Point]struct{}) (candidate, bool) {
	for len(q.items) > 0 {
		top := q.items[len(q.items)-1]
		if _, ok := unused[top.p]; ok {
			return top, true
		}
		q.items = q.items[:len(q.items)-1]
	}

	return candidate{}, false
}

// popBest discards the current top candidate (it was found infeasible for
// this specific edge) and returns the next one, if any.
func (q *edgeQueue) popBest(unused map[geom.Point]struct{}) (candidate, bool) {
	if len(q.items) > 0 {
		q.items = q.items[:len(q.items)-1]
	}

	return q.best(unused)
}

// pointsForKappa resolves the candidate point set for edge e given the
// neighborhood parameter kappa, delegating to geometer.PointsNear for
// finite kappa. For InfiniteKappa it prefers geometer.PointsNearRTree (a
// single R-tree range query over the whole extent, in place of a linear
// scan of the remaining point set), falling back to iterating unused
// directly only if no R-tree index was built.
func pointsForKappa(g *geometer.Geometer, e geom.Edge, kappa int, unused map[geom.Point]struct{}) []geom.Point {
	if kappa == InfiniteKappa {
		if all, ok := g.PointsNearRTree(e, kappa); ok {
			out := make([]geom.Point, 0, len(all))
			for _, p := range all {
				if _, ok := unused[p]; ok {
					out = append(out, p)
				}
			}

			return out
		}

		out := make([]geom.Point, 0, len(unused))
		for p := range unused {
			out = append(out, p)
		}

		return out
	}

	near := g.PointsNear(e, kappa)
	out := make([]geom.Point, 0, len(near))
	for _, p := range near {
		if _, ok := unused[p]; ok {
			out = append(out, p)
		}
	}

	return out
}
