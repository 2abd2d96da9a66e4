// Package localsearch_test exercises Refine against small, hand-checkable
// polygons.
package localsearch_test

import (
	"testing"

	"github.com/polymax/polymax/geom"
	"github.com/polymax/polymax/localsearch"
)

func TestRefine_RejectsTooFewPoints(t *testing.T) {
	_, err := localsearch.Refine([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, true, localsearch.DefaultOptions())
	if err != localsearch.ErrEmptyPolygon {
		t.Fatalf("expected ErrEmptyPolygon, got %v", err)
	}
}

// TestRefine_MinimizeReroutesDeeperIndentation starts from a rectangle
// with an interior point stitched into its bottom edge and checks that
// Refine finds a rerouting that keeps every vertex and shrinks the
// enclosed area, per spec.md §4.4's single-vertex (Hops=1) case.
func TestRefine_MinimizeReroutesDeeperIndentation(t *testing.T) {
	poly := []geom.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 1},
		{X: 20, Y: 0},
		{X: 20, Y: 10},
		{X: 0, Y: 10},
	}

	before := geom.PolyArea2(poly)
	if abs(before) != 380 {
		t.Fatalf("test setup: expected starting doubled area magnitude 380, got %d", before)
	}

	out, err := localsearch.Refine(poly, false, localsearch.DefaultOptions())
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}

	if len(out) != len(poly) {
		t.Fatalf("expected the same vertex count back, got %d", len(out))
	}
	for _, p := range poly {
		if !containsPoint(out, p) {
			t.Fatalf("result polygon lost input point %v: %v", p, out)
		}
	}

	after := geom.PolyArea2(out)
	if abs(after) >= abs(before) {
		t.Fatalf("expected rerouting to shrink area: before=%d after=%d (poly=%v)", before, after, out)
	}
}

func containsPoint(poly []geom.Point, p geom.Point) bool {
	for _, q := range poly {
		if q == p {
			return true
		}
	}

	return false
}

// TestRefine_MaximizeConvergesOnConvexPolygon checks that a convex
// polygon (already area-maximal for its point set) is a fixed point:
// Refine applies no moves and returns the same vertex set.
func TestRefine_MaximizeConvergesOnConvexPolygon(t *testing.T) {
	poly := []geom.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}

	out, err := localsearch.Refine(poly, true, localsearch.DefaultOptions())
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}

	before := geom.PolyArea2(poly)
	after := geom.PolyArea2(out)
	if abs(after) != abs(before) {
		t.Fatalf("expected convex square to be a fixed point: before=%d after=%d", before, after)
	}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
