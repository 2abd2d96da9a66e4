package geom

// PolyArea2 returns twice the signed area of poly under the shoelace
// convention: Σ (u.X+v.X)(u.Y-v.Y) over consecutive edges (u,v), including
// the wrap-around edge (poly[n-1], poly[0]).
//
// Complexity: O(n).
func PolyArea2(poly []Point) int64 {
	var a int64
	n := len(poly)
	var i int
	for i = 0; i < n; i++ {
		u := poly[(i-1+n)%n]
		v := poly[i]
		a += (u.X + v.X) * (u.Y - v.Y)
	}

	return a
}

// AreaChange2 returns the doubled-area delta of applying add (edges
// inserted) and del (edges removed) to a polygon's edge set: the same
// quantity Geometer.DoubleArea would change by after ApplyChange(add, del).
//
// Complexity: O(len(add)+len(del)).
func AreaChange2(add, del []Edge) int64 {
	var a int64
	var e Edge
	for _, e = range add {
		a += (e.U.X + e.V.X) * (e.U.Y - e.V.Y)
	}
	for _, e = range del {
		a -= (e.U.X + e.V.X) * (e.U.Y - e.V.Y)
	}

	return a
}

// Score reports a polygon's area divided by its convex hull's area, in
// [0,1]. Returns ErrZeroHullArea if the hull degenerates (colinear points).
//
// Complexity: O(n log n) (dominated by ConvexHull).
func Score(poly []Point) (float64, error) {
	hull := ConvexHull(poly)
	hullArea := abs64(PolyArea2(hull))
	if hullArea == 0 {
		return 0, ErrZeroHullArea
	}
	polyArea := abs64(PolyArea2(poly))

	return float64(polyArea) / float64(hullArea), nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
