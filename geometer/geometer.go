// Package geometer - construction and the core mutation/query API.
package geometer

import (
	"github.com/google/btree"

	"github.com/polymax/polymax/geom"
)

// btreeDegree is the branching factor handed to btree.New for longEdges.
// 32 is the value google/btree's own docs use as a reasonable default.
const btreeDegree = 32

// New builds a Geometer over the complete input point set. The returned
// Geometer starts with an empty cycle; callers add a seed polygon via
// AddPoly before running greedy construction.
//
// cellSize follows spec.md §3 unless overridden via WithCellSize.
//
// Complexity: O(n) to bucket points into pointsInCell.
func New(points []geom.Point, opts ...Option) *Geometer {
	cfg := newConfig(opts...)

	capHint := cfg.capacityHint
	if capHint == 0 {
		capHint = len(points)
	}

	g := &Geometer{
		next:         make(map[geom.Point]geom.Point, capHint),
		prev:         make(map[geom.Point]geom.Point, capHint),
		points:       make(map[geom.Point]struct{}, len(points)),
		edgesInCell:  make(map[Cell]map[edgeKey]geom.Edge),
		pointsInCell: make(map[Cell]map[geom.Point]struct{}),
		longEdges:    btree.New(btreeDegree),
	}

	var maxExtent int64
	if len(points) > 0 {
		min, max := boundsOf(points)
		dx := max.X - min.X
		dy := max.Y - min.Y
		maxExtent = dx
		if dy > maxExtent {
			maxExtent = dy
		}
	}

	if cfg.cellSizeOverride > 0 {
		g.cellSize = cfg.cellSizeOverride
	} else {
		g.cellSize = cellSizeFor(maxExtent, len(points))
	}

	var p geom.Point
	for _, p = range points {
		g.points[p] = struct{}{}
		c := g.cell(p)
		bucket, ok := g.pointsInCell[c]
		if !ok {
			bucket = make(map[geom.Point]struct{})
			g.pointsInCell[c] = bucket
		}
		bucket[p] = struct{}{}
	}

	if cfg.useRTree {
		g.rtreeIdx = newRTreeIndex(points)
	}

	return g
}

func boundsOf(points []geom.Point) (min, max geom.Point) {
	min, max = points[0], points[0]
	var p geom.Point
	for _, p = range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}

	return min, max
}

// Add records edge e as present: next[e.U]=e.V, prev[e.V]=e.U, folds e's
// contribution into doubleArea, and registers e in the spatial index
// (edgesInCell if it spans at most maxShortEdgeCells cells, else longEdges).
//
// Precondition: e.U != e.V, e not already present. Returns ErrSelfLoop or
// ErrEdgeExists on violation.
//
// Complexity: O(k) where k = len(cells(e)).
func (g *Geometer) Add(e geom.Edge) error {
	if e.U == e.V {
		return ErrSelfLoop
	}
	if cur, ok := g.next[e.U]; ok && cur == e.V {
		return ErrEdgeExists
	}

	g.next[e.U] = e.V
	g.prev[e.V] = e.U
	g.doubleArea += (e.U.X + e.V.X) * (e.U.Y - e.V.Y)

	cells := g.cells(e)
	if len(cells) <= maxShortEdgeCells {
		k := keyOf(e)
		for _, c := range cells {
			bucket, ok := g.edgesInCell[c]
			if !ok {
				bucket = make(map[edgeKey]geom.Edge)
				g.edgesInCell[c] = bucket
			}
			bucket[k] = e
		}
	} else {
		g.longEdges.ReplaceOrInsert(&longEdgeItem{edge: e, sqLen: geom.SqDist(e.U, e.V), key: keyOf(e)})
	}

	return nil
}

// Remove is the inverse of Add: undoes the next/prev entries, subtracts e's
// contribution from doubleArea, and deregisters e from the spatial index.
//
// Precondition: e present. Returns ErrEdgeMissing otherwise.
//
// Complexity: O(k) where k = len(cells(e)).
func (g *Geometer) Remove(e geom.Edge) error {
	if cur, ok := g.next[e.U]; !ok || cur != e.V {
		return ErrEdgeMissing
	}

	delete(g.next, e.U)
	delete(g.prev, e.V)
	g.doubleArea -= (e.U.X + e.V.X) * (e.U.Y - e.V.Y)

	cells := g.cells(e)
	if len(cells) <= maxShortEdgeCells {
		k := keyOf(e)
		for _, c := range cells {
			bucket, ok := g.edgesInCell[c]
			if !ok {
				continue
			}
			delete(bucket, k)
			if len(bucket) == 0 {
				delete(g.edgesInCell, c)
			}
		}
	} else {
		g.longEdges.Delete(&longEdgeItem{edge: e, sqLen: geom.SqDist(e.U, e.V), key: keyOf(e)})
	}

	return nil
}

// AddPoly adds every consecutive edge of poly, including the wrap-around
// edge (poly[n-1], poly[0]).
//
// Complexity: O(n) Add calls.
func (g *Geometer) AddPoly(poly []geom.Point) error {
	n := len(poly)
	var i int
	for i = 0; i < n; i++ {
		u := poly[(i-1+n)%n]
		v := poly[i]
		if err := g.Add(geom.Edge{U: u, V: v}); err != nil {
			return err
		}
	}

	return nil
}

// Intersections yields every currently present edge s with
// geom.SegIntersect(s, e). longEdges is iterated first (longest first) so
// a long rejecting edge can short-circuit common cases, then edgesInCell
// for each cell e traverses. An edge spanning multiple of e's cells may be
// yielded more than once; Intersects/ProperIntersects short-circuit, but
// callers needing a deduplicated set must dedupe themselves (spec.md §4.2,
// §9).
//
// Complexity: O(|longEdges| + k) candidate checks, each O(1); k = len(cells(e)).
func (g *Geometer) Intersections(e geom.Edge) []geom.Edge {
	var out []geom.Edge

	g.longEdges.Ascend(func(item btree.Item) bool {
		le := item.(*longEdgeItem)
		if geom.SegIntersect(le.edge, e) {
			out = append(out, le.edge)
		}

		return true
	})

	for _, c := range g.cells(e) {
		for _, s := range g.edgesInCell[c] {
			if geom.SegIntersect(s, e) {
				out = append(out, s)
			}
		}
	}

	return out
}

// Intersects reports whether any present edge intersects e at all.
//
// Complexity: short-circuits on the first hit; worst case as Intersections.
func (g *Geometer) Intersects(e geom.Edge) bool {
	found := false
	g.longEdges.Ascend(func(item btree.Item) bool {
		le := item.(*longEdgeItem)
		if geom.SegIntersect(le.edge, e) {
			found = true
			return false
		}

		return true
	})
	if found {
		return true
	}

	for _, c := range g.cells(e) {
		for _, s := range g.edgesInCell[c] {
			if geom.SegIntersect(s, e) {
				return true
			}
		}
	}

	return false
}

// ProperIntersects reports whether Intersections(e) yields a segment
// sharing no endpoint with e.
//
// Complexity: short-circuits on the first proper hit; worst case as
// Intersections.
func (g *Geometer) ProperIntersects(e geom.Edge) bool {
	found := false
	g.longEdges.Ascend(func(item btree.Item) bool {
		le := item.(*longEdgeItem)
		if geom.SegIntersect(le.edge, e) && !le.edge.SharesEndpoint(e) {
			found = true
			return false
		}

		return true
	})
	if found {
		return true
	}

	for _, c := range g.cells(e) {
		for _, s := range g.edgesInCell[c] {
			if geom.SegIntersect(s, e) && !s.SharesEndpoint(e) {
				return true
			}
		}
	}

	return false
}

// GetPoly extracts the cycle as an ordered vertex slice by picking any
// vertex and walking next until it returns to the start.
//
// Complexity: O(n).
func (g *Geometer) GetPoly() ([]geom.Point, error) {
	if len(g.next) == 0 {
		return nil, ErrEmptyPolygon
	}

	var start geom.Point
	for p := range g.next {
		start = p
		break
	}

	poly := []geom.Point{start}
	cur := g.next[start]
	for cur != start {
		poly = append(poly, cur)
		cur = g.next[cur]
	}

	return poly, nil
}

// DoubleArea returns the running value of Σ(u.X+v.X)(u.Y-v.Y) over present
// edges, equal to twice the signed polygon area.
func (g *Geometer) DoubleArea() int64 {
	return g.doubleArea
}

// Vertices returns the set of vertices currently on the polygon (keys of
// next), as an unordered slice.
func (g *Geometer) Vertices() []geom.Point {
	out := make([]geom.Point, 0, len(g.next))
	for p := range g.next {
		out = append(out, p)
	}

	return out
}

// Next returns the successor of p on the current cycle and whether p is a
// polygon vertex at all.
func (g *Geometer) Next(p geom.Point) (geom.Point, bool) {
	v, ok := g.next[p]

	return v, ok
}

// Prev returns the predecessor of p on the current cycle and whether p is a
// polygon vertex at all.
func (g *Geometer) Prev(p geom.Point) (geom.Point, bool) {
	v, ok := g.prev[p]

	return v, ok
}

// Contains reports whether e is currently a present edge (next[e.U]==e.V).
func (g *Geometer) Contains(e geom.Edge) bool {
	v, ok := g.next[e.U]

	return ok && v == e.V
}

// Points returns the complete immutable input set (not just current
// polygon vertices).
func (g *Geometer) Points() []geom.Point {
	out := make([]geom.Point, 0, len(g.points))
	for p := range g.points {
		out = append(out, p)
	}

	return out
}
