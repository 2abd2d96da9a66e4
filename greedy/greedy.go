// Package greedy - Construct, the main constructive-phase loop (spec.md
// §4.3).
package greedy

import (
	"math/rand"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/polymax/polymax/geom"
	"github.com/polymax/polymax/geometer"
)

// heapItem is one entry in the global per-iteration candidate heap: the
// current best remaining candidate for one present edge.
type heapItem struct {
	edge geom.Edge
	cand candidate
}

// maxHeapComparator orders heapItem by descending weight, so
// github.com/emirpasic/gods/trees/binaryheap's min-heap pops the globally
// best (maximum-weight) candidate first.
func maxHeapComparator(a, b interface{}) int {
	wa := a.(heapItem).cand.w
	wb := b.(heapItem).cand.w

	switch {
	case wa > wb:
		return -1
	case wa < wb:
		return 1
	default:
		return 0
	}
}

// Construct builds a polygon over points by starting from seed (already
// added to g as a cycle of present edges) and greedily absorbing every
// remaining point into the best-scoring edge, per spec.md §4.3. When
// maximizing, a point is absorbed only if that grows the enclosed area, so
// points that could only shrink it are left out of the returned polygon.
//
// maximize selects the candidacy rule used by buildQueue (see spec.md
// §4.3: minimization restricts candidates to points lying outside the
// current edge's orientation).
//
// Complexity: see doc.go.
func Construct(points []geom.Point, seed []geom.Point, maximize bool, opts Options) ([]geom.Point, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}

	g := geometer.New(points, geometer.WithRTreeIndex())
	if err := g.AddPoly(seed); err != nil {
		return nil, err
	}

	unused := make(map[geom.Point]struct{}, len(points))
	seeded := make(map[geom.Point]struct{}, len(seed))
	for _, p := range seed {
		seeded[p] = struct{}{}
	}
	for _, p := range points {
		if _, ok := seeded[p]; !ok {
			unused[p] = struct{}{}
		}
	}

	if len(unused) == 0 {
		return g.GetPoly()
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	poly, err := run(g, unused, maximize, opts, rng, opts.Kappa)
	if err != nil && opts.Kappa != InfiniteKappa {
		g = geometer.New(points, geometer.WithRTreeIndex())
		if err := g.AddPoly(seed); err != nil {
			return nil, err
		}
		poly, err = run(g, unused, maximize, opts, rng, InfiniteKappa)
	}
	if err != nil {
		return nil, err
	}

	return poly, nil
}

// run performs one full construction pass at a fixed kappa, absorbing
// points from a private copy of unused until that copy is empty or no edge
// has a feasible candidate. unused itself is left unchanged; g is mutated,
// so on failure the caller discards that progress by rebuilding g from the
// seed and retries at InfiniteKappa (spec.md §4.3's fallback is "rerun
// greedy", not "resume greedy").
func run(g *geometer.Geometer, unused map[geom.Point]struct{}, maximize bool, opts Options, rng *rand.Rand, kappa int) ([]geom.Point, error) {
	remaining := make(map[geom.Point]struct{}, len(unused))
	for p := range unused {
		remaining[p] = struct{}{}
	}

	queues := make(map[geom.Edge]*edgeQueue)
	heap := binaryheap.NewWith(maxHeapComparator)

	seedQueue := func(e geom.Edge) {
		cands := pointsForKappa(g, e, kappa, remaining)
		q := buildQueue(e, cands, maximize, opts, rng)
		queues[e] = q
		if c, ok := q.best(remaining); ok {
			heap.Push(heapItem{edge: e, cand: c})
		}
	}

	poly, err := g.GetPoly()
	if err != nil {
		return nil, err
	}
	n := len(poly)
	for i := 0; i < n; i++ {
		u := poly[i]
		v := poly[(i+1)%n]
		seedQueue(geom.Edge{U: u, V: v})
	}

	for len(remaining) > 0 {
		val, ok := heap.Pop()
		if !ok {
			if maximize {
				// A convex-hull seed already realizes the maximum possible
				// area over the whole point set; absorbing any leftover
				// point into it can only shrink that area (spec.md §8
				// boundary scenario 3). Running out of candidates here
				// means every leftover point would shrink the polygon, not
				// that no simple polygon exists, so this is a normal
				// finish rather than ErrInfeasibleNeighborhood.
				return g.GetPoly()
			}
			return nil, ErrInfeasibleNeighborhood
		}
		item := val.(heapItem)

		if !g.Contains(item.edge) {
			continue
		}
		if _, ok := remaining[item.cand.p]; !ok {
			// Stale entry: p was absorbed by another edge since this
			// candidate was pushed.
			if next, ok := queues[item.edge].best(remaining); ok {
				heap.Push(heapItem{edge: item.edge, cand: next})
			}
			continue
		}

		u, v, p := item.edge.U, item.edge.V, item.cand.p
		add := []geom.Edge{{U: u, V: p}, {U: p, V: v}}
		del := []geom.Edge{item.edge}

		if maximize && !growsArea(g, add, del) {
			q := queues[item.edge]
			if next, ok := q.popBest(remaining); ok {
				heap.Push(heapItem{edge: item.edge, cand: next})
			}
			continue
		}

		if g.ValidChange(add, del) {
			if err := g.ApplyChange(add, del); err != nil {
				return nil, err
			}
			delete(remaining, p)
			delete(queues, item.edge)
			seedQueue(add[0])
			seedQueue(add[1])
			continue
		}

		q := queues[item.edge]
		if next, ok := q.popBest(remaining); ok {
			heap.Push(heapItem{edge: item.edge, cand: next})
		}
	}

	return g.GetPoly()
}

// growsArea reports whether committing add/del would strictly grow the
// enclosed area's magnitude. Maximization only ever commits growing
// moves; a convex seed's leftover interior points never pass this check,
// which is exactly how they stay unabsorbed (spec.md §8 boundary
// scenario 3).
func growsArea(g *geometer.Geometer, add, del []geom.Edge) bool {
	before := g.DoubleArea()
	delta := geom.AreaChange2(add, del)
	after := before + delta

	return abs64(after) > abs64(before)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
