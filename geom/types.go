package geom

import "errors"

// Sentinel errors for the geom package.
var (
	// ErrDegenerateInput indicates fewer than 3 distinct points were supplied
	// where a polygon or triangle is required.
	ErrDegenerateInput = errors.New("geom: degenerate input (need at least 3 points)")

	// ErrColinearSeed indicates three points chosen as a seed triangle are
	// colinear, so no simple polygon can be built from them directly.
	ErrColinearSeed = errors.New("geom: seed points are colinear")

	// ErrZeroHullArea indicates the convex hull of a point set has zero area,
	// so Score is undefined (division by zero).
	ErrZeroHullArea = errors.New("geom: convex hull has zero area")
)

// Point is an immutable pair of integer coordinates. Equality and map-key
// hashing use both X and Y, matching spec.md's "opaque identity" contract.
// Coordinates are expected to be non-negative and small enough that sums and
// products of differences fit in int64 without overflow (inputs are instance
// file identifiers' (x,y) pairs, never derived or scaled).
type Point struct {
	X, Y int64
}

// Edge is an ordered pair (U, V) of distinct Points: an oriented side of the
// current polygon, present iff the owning Geometer's next[U] == V.
type Edge struct {
	U, V Point
}

// Reversed returns the edge (V, U).
func (e Edge) Reversed() Edge {
	return Edge{U: e.V, V: e.U}
}

// SharesEndpoint reports whether e and o share at least one endpoint.
func (e Edge) SharesEndpoint(o Edge) bool {
	return e.U == o.U || e.U == o.V || e.V == o.U || e.V == o.V
}
