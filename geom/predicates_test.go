// Package geom_test exercises the exact-sign predicates and segment
// intersection against the boundary scenarios named in spec.md §8.
package geom_test

import (
	"testing"

	"github.com/polymax/polymax/geom"
)

func TestSignedArea2_OrientationSigns(t *testing.T) {
	p := geom.Point{X: 0, Y: 0}
	q := geom.Point{X: 10, Y: 0}
	r := geom.Point{X: 0, Y: 10}

	if !geom.CCW(p, q, r) {
		t.Fatalf("expected p,q,r counterclockwise")
	}
	if geom.CCW(q, p, r) {
		t.Fatalf("expected swapping two vertices to flip orientation")
	}
}

func TestColinear_ThreePointsOnALine(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 1, Y: 0}
	c := geom.Point{X: 2, Y: 0}

	if !geom.Colinear(a, b, c) {
		t.Fatalf("expected colinear points to report zero signed area")
	}
}

func TestSqDistAndDist(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 3, Y: 4}

	if got := geom.SqDist(a, b); got != 25 {
		t.Fatalf("SqDist: want 25, got %d", got)
	}
	if got := geom.Dist(a, b); got != 5 {
		t.Fatalf("Dist: want 5, got %v", got)
	}
}

func TestSegIntersect_Symmetric(t *testing.T) {
	cases := []struct {
		name string
		s, t geom.Edge
		want bool
	}{
		{
			name: "crossing",
			s:    geom.Edge{U: geom.Point{X: 0, Y: 0}, V: geom.Point{X: 10, Y: 10}},
			t:    geom.Edge{U: geom.Point{X: 0, Y: 10}, V: geom.Point{X: 10, Y: 0}},
			want: true,
		},
		{
			name: "disjoint",
			s:    geom.Edge{U: geom.Point{X: 0, Y: 0}, V: geom.Point{X: 1, Y: 0}},
			t:    geom.Edge{U: geom.Point{X: 5, Y: 5}, V: geom.Point{X: 6, Y: 6}},
			want: false,
		},
		{
			name: "touching-endpoint",
			s:    geom.Edge{U: geom.Point{X: 0, Y: 0}, V: geom.Point{X: 5, Y: 0}},
			t:    geom.Edge{U: geom.Point{X: 5, Y: 0}, V: geom.Point{X: 5, Y: 5}},
			want: true,
		},
		{
			name: "overlapping colinear",
			s:    geom.Edge{U: geom.Point{X: 0, Y: 0}, V: geom.Point{X: 5, Y: 0}},
			t:    geom.Edge{U: geom.Point{X: 3, Y: 0}, V: geom.Point{X: 8, Y: 0}},
			want: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := geom.SegIntersect(tc.s, tc.t); got != tc.want {
				t.Fatalf("SegIntersect(s,t): want %v, got %v", tc.want, got)
			}
			if got := geom.SegIntersect(tc.t, tc.s); got != tc.want {
				t.Fatalf("SegIntersect(t,s): want %v, got %v (symmetry law broken)", tc.want, got)
			}
		})
	}
}

func TestProperSegIntersect_ExcludesSharedEndpoint(t *testing.T) {
	s := geom.Edge{U: geom.Point{X: 0, Y: 0}, V: geom.Point{X: 5, Y: 0}}
	tt := geom.Edge{U: geom.Point{X: 5, Y: 0}, V: geom.Point{X: 5, Y: 5}}

	if geom.ProperSegIntersect(s, tt) {
		t.Fatalf("shared-endpoint touch must not be a proper intersection")
	}

	crossing := geom.Edge{U: geom.Point{X: 2, Y: -2}, V: geom.Point{X: 2, Y: 2}}
	if !geom.ProperSegIntersect(s, crossing) {
		t.Fatalf("expected a genuine crossing to be a proper intersection")
	}
}
