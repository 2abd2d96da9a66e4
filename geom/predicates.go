// Package geom - exact-sign predicates and segment intersection.
//
// All predicates here operate on the determinant form of the signed area of
// triangle (p,q,r):
//
//	SignedArea2(p,q,r) = (q.X-p.X)*(r.Y-p.Y) - (r.X-p.X)*(q.Y-p.Y)
//
// which is exactly *twice* the signed area. Working in doubled area keeps
// every predicate in exact int64 arithmetic (no division, no float error).
// Strictly positive means p,q,r turn counterclockwise; strictly negative
// means clockwise; exactly zero means colinear.
package geom

import "math"

// SignedArea2 returns twice the signed area of triangle (p,q,r).
// Positive ⇒ counterclockwise, negative ⇒ clockwise, zero ⇒ colinear.
//
// Complexity: O(1), no allocations.
func SignedArea2(p, q, r Point) int64 {
	return (q.X-p.X)*(r.Y-p.Y) - (r.X-p.X)*(q.Y-p.Y)
}

// CCW reports whether p, q, r are strictly oriented counterclockwise.
//
// Complexity: O(1).
func CCW(p, q, r Point) bool {
	return SignedArea2(p, q, r) > 0
}

// Colinear reports whether p, q, r lie on a common line (exact zero area).
//
// Complexity: O(1).
func Colinear(p, q, r Point) bool {
	return SignedArea2(p, q, r) == 0
}

// SqDist returns the squared Euclidean distance between p and q, exact in
// int64 for spec-bounded integral coordinates.
//
// Complexity: O(1).
func SqDist(p, q Point) int64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return dx*dx + dy*dy
}

// Dist returns the true Euclidean distance between p and q.
//
// Complexity: O(1).
func Dist(p, q Point) float64 {
	return math.Sqrt(float64(SqDist(p, q)))
}

// boundingBox returns the axis-aligned bounding box (min, max) of a
// non-empty point slice.
//
// Complexity: O(n).
func boundingBox(pts []Point) (min, max Point) {
	min, max = pts[0], pts[0]
	var p Point
	for _, p = range pts[1:] {
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

// pointInBox reports whether p lies within the axis-aligned box [min,max].
//
// Complexity: O(1).
func pointInBox(p, min, max Point) bool {
	return min.X <= p.X && p.X <= max.X && min.Y <= p.Y && p.Y <= max.Y
}

// PointOnSegment reports whether p lies on the closed segment s, including
// its endpoints. Requires p to be colinear with s's endpoints first (cheap
// reject), then checks bounding-box containment.
//
// Complexity: O(1).
func PointOnSegment(p Point, s Edge) bool {
	if !Colinear(p, s.U, s.V) {
		return false
	}
	min, max := boundingBox([]Point{s.U, s.V})

	return pointInBox(p, min, max)
}

// SegIntersect reports whether segments s and t share any point at all,
// including touches and overlapping colinear segments.
//
// Algorithm (spec.md §4.1): compute the four orientations of each segment's
// endpoints against the other segment's line. If any orientation is exactly
// zero, fall back to point-in-segment tests (colinearity plus bounding-box
// containment, handling touches/overlaps exactly). Otherwise the segments
// intersect properly iff each pair of endpoints straddles the other line.
//
// SegIntersect(s,t) == SegIntersect(t,s) for all inputs (tested explicitly).
//
// Complexity: O(1).
func SegIntersect(s, t Edge) bool {
	a1 := SignedArea2(s.U, s.V, t.U)
	a2 := SignedArea2(s.U, s.V, t.V)
	a3 := SignedArea2(t.U, t.V, s.U)
	a4 := SignedArea2(t.U, t.V, s.V)

	if a1 == 0 || a2 == 0 || a3 == 0 || a4 == 0 {
		return PointOnSegment(s.U, t) || PointOnSegment(s.V, t) ||
			PointOnSegment(t.U, s) || PointOnSegment(t.V, s)
	}

	return (a1 > 0) != (a2 > 0) && (a3 > 0) != (a4 > 0)
}

// ProperSegIntersect reports whether s and t intersect at a point that is
// not a shared endpoint of either segment.
//
// Complexity: O(1).
func ProperSegIntersect(s, t Edge) bool {
	if !SegIntersect(s, t) {
		return false
	}

	return s.U != t.U && s.U != t.V && s.V != t.U && s.V != t.V
}
