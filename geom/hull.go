// Package geom - convex hull with colinear-boundary retention.
//
// ConvexHull differs from a textbook Graham scan in exactly one respect:
// it pops only on *strictly* counterclockwise turns (SignedArea2 > 0), so
// points lying exactly on a hull edge are kept rather than discarded. This
// matters for spec.md's maximization seed: every input point must end up on
// or inside the hull-derived polygon, including ones colinear with a hull
// edge.
package geom

import "sort"

// ConvexHull computes the convex hull of points, retaining colinear
// boundary points, as an ordered cycle. Requires len(points) >= 3 after
// deduplication is the caller's responsibility (spec.md: duplicate points
// are undefined behavior and not guarded against here).
//
// Complexity: O(n log n) for the sort, O(n) for the two scans.
func ConvexHull(points []Point) []Point {
	if len(points) < 3 {
		return append([]Point(nil), points...)
	}

	sorted := append([]Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	upper := halfHull(sorted)

	reversed := make([]Point, len(sorted))
	for i, p := range sorted {
		reversed[len(sorted)-1-i] = p
	}
	lower := halfHull(reversed)

	hull := make([]Point, 0, len(upper)+len(lower))
	hull = append(hull, upper[:len(upper)-1]...)
	hull = append(hull, lower[:len(lower)-1]...)

	return hull
}

// halfHull runs the Graham-scan pop rule over v (already sorted in one
// direction), popping only on strictly counterclockwise turns so colinear
// points on the hull boundary survive.
//
// Complexity: O(n) amortized (each point pushed and popped at most once).
func halfHull(v []Point) []Point {
	hull := make([]Point, 0, len(v))
	hull = append(hull, v[0])

	for _, p := range v[1:] {
		for len(hull) >= 2 && SignedArea2(p, hull[len(hull)-1], hull[len(hull)-2]) > 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull
}
