// Package geometer - optional R-tree-backed point index.
//
// The uniform grid (grid.go) is the spec-mandated index for edge-cell
// membership and is always present. rtreeIndex is an additional,
// opt-in (WithRTreeIndex) index over the raw point set, queried through
// PointsNearRTree. The greedy constructor's κ=∞ fallback (its
// neighborhood parameter widened to "search everything" after a finite
// kappa failed to produce a feasible edit) is its one caller: at that
// point the uniform grid has nothing left to narrow the search by, and a
// single R-tree range query over the whole extent beats a linear scan of
// the remaining point set.
package geometer

import (
	"github.com/dhconnelly/rtreego"

	"github.com/polymax/polymax/geom"
)

// rtreeMinChildren/rtreeMaxChildren are the branching bounds rtreego asks
// for at construction; 25/50 are the values used in rtreego's own examples.
const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
	rtreeDim         = 2
)

type rtreeIndex struct {
	tree     *rtreego.Tree
	min, max geom.Point
}

// pointSpatial adapts geom.Point to rtreego.Spatial as a tiny
// epsilon-sided rect centered on the point.
type pointSpatial struct {
	p geom.Point
}

func (ps pointSpatial) Bounds() *rtreego.Rect {
	// rtreego rejects zero-length sides, so use a minuscule epsilon box
	// centered on the point rather than a true point rectangle.
	const eps = 1e-6
	rect, err := rtreego.NewRect(
		rtreego.Point{float64(ps.p.X) - eps/2, float64(ps.p.Y) - eps/2},
		[]float64{eps, eps},
	)
	if err != nil {
		// Construction-time invariant: eps > 0 always yields a valid rect.
		panic(err)
	}

	return rect
}

func newRTreeIndex(points []geom.Point) *rtreeIndex {
	tree := rtreego.NewTree(rtreeDim, rtreeMinChildren, rtreeMaxChildren)
	for _, p := range points {
		tree.Insert(pointSpatial{p: p})
	}

	idx := &rtreeIndex{tree: tree}
	if len(points) > 0 {
		idx.min, idx.max = boundsOf(points)
	}

	return idx
}

// PointsNearRTree returns points within a cellSize*(2*kappa+1)/2 Chebyshev
// radius of edge e's bounding box, via an R-tree range query. Passing
// greedy.InfiniteKappa (-1) drops the per-edge bounding box entirely and
// queries the full point-set extent instead, since an unbounded
// neighborhood has no edge-local radius to compute; this is the query
// the greedy constructor's kappa=infinite fallback uses in place of a
// linear scan of the remaining point set. Returns (nil, false) if the
// Geometer was not built WithRTreeIndex.
//
// Complexity: O(log n + m) where m is the result size.
func (g *Geometer) PointsNearRTree(e geom.Edge, kappa int) ([]geom.Point, bool) {
	if g.rtreeIdx == nil {
		return nil, false
	}

	var rect *rtreego.Rect
	var err error
	if kappa < 0 {
		const eps = 1e-6
		idx := g.rtreeIdx
		rect, err = rtreego.NewRect(
			rtreego.Point{float64(idx.min.X) - eps, float64(idx.min.Y) - eps},
			[]float64{float64(idx.max.X-idx.min.X) + 2*eps, float64(idx.max.Y-idx.min.Y) + 2*eps},
		)
	} else {
		radius := float64(g.cellSize) * float64(2*kappa+1) / 2
		minX := float64(min64(e.U.X, e.V.X)) - radius
		minY := float64(min64(e.U.Y, e.V.Y)) - radius
		width := float64(max64(e.U.X, e.V.X)) - float64(min64(e.U.X, e.V.X)) + 2*radius
		height := float64(max64(e.U.Y, e.V.Y)) - float64(min64(e.U.Y, e.V.Y)) + 2*radius
		rect, err = rtreego.NewRect(rtreego.Point{minX, minY}, []float64{width, height})
	}
	if err != nil {
		return nil, true
	}

	hits := g.rtreeIdx.tree.SearchIntersect(rect)
	out := make([]geom.Point, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(pointSpatial).p)
	}

	return out, true
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}
