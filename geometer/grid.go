// Package geometer - uniform grid construction and cell traversal.
//
// cellSize is chosen once at construction (spec.md §3):
//
//	cellSize = 2 * ceil(maxExtent / (4 * n^(1/4)) / 2), clamped >= 2
//
// which balances cells-per-edge against edges-per-cell: points are assumed
// roughly uniformly distributed, so most edges span only a handful of
// cells.
package geometer

import (
	"math"

	"github.com/polymax/polymax/geom"
)

// cellSizeFor computes spec.md §3's cellSize formula for a bounding box of
// the given extent and a point-set size n.
//
// Complexity: O(1).
func cellSizeFor(maxExtent int64, n int) int64 {
	if n <= 0 {
		return 2
	}
	nQuarterRoot := pow4Root(float64(n))
	raw := float64(maxExtent) / (4 * nQuarterRoot) / 2
	size := 2 * ceilInt64(raw)
	if size < 2 {
		size = 2
	}

	return size
}

func pow4Root(x float64) float64 {
	if x <= 0 {
		return 1
	}

	return math.Sqrt(math.Sqrt(x))
}

func ceilInt64(x float64) int64 {
	i := int64(x)
	if float64(i) < x {
		i++
	}

	return i
}

// cell returns the grid cell containing point p.
//
// Complexity: O(1).
func (g *Geometer) cell(p geom.Point) Cell {
	return Cell{CX: floorDiv(p.X, g.cellSize), CY: floorDiv(p.Y, g.cellSize)}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// cellBox returns the axis-aligned box [min,max) of cell c in point space.
func (g *Geometer) cellBox(c Cell) (min, max geom.Point) {
	min = geom.Point{X: c.CX * g.cellSize, Y: c.CY * g.cellSize}
	max = geom.Point{X: (c.CX + 1) * g.cellSize, Y: (c.CY + 1) * g.cellSize}

	return min, max
}

// cells returns the ordered sequence of cells edge e traverses (spec.md §3
// "Edge traversal"): walk from the cell of the lower-indexed endpoint
// toward the other, advancing +1 in X when the segment crosses the current
// cell's right edge, otherwise advancing in Y according to the segment's
// vertical direction.
//
// Complexity: O(k) where k is the number of traversed cells.
func (g *Geometer) cells(e geom.Edge) []Cell {
	u, v := e.U, e.V
	if pointGreater(u, v) {
		u, v = v, u
	}

	c0 := g.cell(u)
	c1 := g.cell(v)
	if c0 == c1 {
		return []Cell{c0}
	}

	upwards := v.Y > u.Y

	out := []Cell{c0}
	cur := c0
	seg := geom.Edge{U: u, V: v}
	for cur != c1 {
		min, max := g.cellBox(cur)
		rightEdge := geom.Edge{U: geom.Point{X: max.X, Y: min.Y}, V: geom.Point{X: max.X, Y: max.Y}}
		if geom.SegIntersect(seg, rightEdge) {
			cur = Cell{CX: cur.CX + 1, CY: cur.CY}
		} else if upwards {
			cur = Cell{CX: cur.CX, CY: cur.CY + 1}
		} else {
			cur = Cell{CX: cur.CX, CY: cur.CY - 1}
		}
		out = append(out, cur)
	}

	return out
}

// pointGreater gives a stable total order over points for picking the
// "lower-indexed endpoint" in cells(e): lexicographic (X, then Y), matching
// the original's tuple comparison.
func pointGreater(a, b geom.Point) bool {
	if a.X != b.X {
		return a.X > b.X
	}

	return a.Y > b.Y
}

// cellsNearCell returns every cell within Chebyshev distance delta of c
// (the (2*delta+1)x(2*delta+1) block centered on c).
func cellsNearCell(c Cell, delta int) []Cell {
	out := make([]Cell, 0, (2*delta+1)*(2*delta+1))
	var di, dj int
	for di = -delta; di <= delta; di++ {
		for dj = -delta; dj <= delta; dj++ {
			out = append(out, Cell{CX: c.CX + int64(di), CY: c.CY + int64(dj)})
		}
	}

	return out
}

// PointsNear returns the candidate points "near" edge e for the greedy
// constructor's per-edge queue (spec.md §4.3): points inside the
// (2*kappa+1)x(2*kappa+1) cell block centered on each cell e traverses. If
// the grid is small enough that this block would cover the whole point
// set, PointsNear degenerates to all points.
//
// Complexity: O(k*(2*kappa+1)^2) cell lookups plus O(result size).
func (g *Geometer) PointsNear(e geom.Edge, kappa int) []geom.Point {
	if len(g.pointsInCell) <= (1+2*kappa)*(1+2*kappa) {
		out := make([]geom.Point, 0, len(g.points))
		for p := range g.points {
			out = append(out, p)
		}

		return out
	}

	seen := make(map[geom.Point]struct{})
	var out []geom.Point
	for _, c := range g.cells(e) {
		for _, near := range cellsNearCell(c, kappa) {
			bucket, ok := g.pointsInCell[near]
			if !ok {
				continue
			}
			for p := range bucket {
				if _, dup := seen[p]; dup {
					continue
				}
				seen[p] = struct{}{}
				out = append(out, p)
			}
		}
	}

	return out
}
