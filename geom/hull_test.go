package geom_test

import (
	"testing"

	"github.com/polymax/polymax/geom"
)

func TestConvexHull_RetainsColinearBoundaryPoint(t *testing.T) {
	pts := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
		{X: 5, Y: 0}, // colinear on the bottom edge
	}

	hull := geom.ConvexHull(pts)

	if len(hull) != len(pts) {
		t.Fatalf("expected the colinear boundary point to be retained: got %d hull points, want %d", len(hull), len(pts))
	}

	found := false
	for _, p := range hull {
		if p == (geom.Point{X: 5, Y: 0}) {
			found = true
		}
	}
	if !found {
		t.Fatalf("colinear boundary point (5,0) missing from hull")
	}
}

func TestConvexHull_InteriorPointExcluded(t *testing.T) {
	pts := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
		{X: 5, Y: 5}, // strictly interior
	}

	hull := geom.ConvexHull(pts)

	for _, p := range hull {
		if p == (geom.Point{X: 5, Y: 5}) {
			t.Fatalf("interior point must not appear on convex hull")
		}
	}
	if len(hull) != 4 {
		t.Fatalf("expected a 4-vertex square hull, got %d vertices", len(hull))
	}
}
