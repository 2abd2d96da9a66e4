// Package geometer_test exercises the invariants and laws from spec.md §8
// against the public Geometer API.
package geometer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polymax/polymax/geom"
	"github.com/polymax/polymax/geometer"
)

func square() []geom.Point {
	return []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
}

func TestAddRemove_RoundTripRestoresState(t *testing.T) {
	pts := square()
	g := geometer.New(pts)
	require.NoError(t, g.AddPoly(pts))

	before := g.DoubleArea()
	e := geom.Edge{U: geom.Point{X: 5, Y: 5}, V: geom.Point{X: 6, Y: 6}}

	require.NoError(t, g.Add(e))
	require.NoError(t, g.Remove(e))
	require.Equal(t, before, g.DoubleArea(), "doubleArea did not round-trip")
}

func TestGetPoly_ReturnsSimpleCycleOverSquare(t *testing.T) {
	pts := square()
	g := geometer.New(pts)
	require.NoError(t, g.AddPoly(pts))

	poly, err := g.GetPoly()
	require.NoError(t, err)
	require.Len(t, poly, 4)

	seen := make(map[geom.Point]bool)
	for _, p := range poly {
		require.Falsef(t, seen[p], "GetPoly visited %v twice", p)
		seen[p] = true
	}
}

func TestDoubleArea_MatchesShoelaceRecompute(t *testing.T) {
	pts := square()
	g := geometer.New(pts)
	require.NoError(t, g.AddPoly(pts))

	want := geom.PolyArea2(pts)
	require.Equal(t, want, g.DoubleArea())
}

func TestValidChange_NoOpIsAlwaysValid(t *testing.T) {
	pts := square()
	g := geometer.New(pts)
	require.NoError(t, g.AddPoly(pts))

	require.True(t, g.ValidChange(nil, nil), "expected empty change to be valid")
	before := g.DoubleArea()
	require.NoError(t, g.ApplyChange(nil, nil))
	require.Equal(t, before, g.DoubleArea(), "no-op ApplyChange must not mutate state")
}

func TestValidChange_RejectsSignFlip(t *testing.T) {
	// This vertex order yields a negative doubleArea under the shoelace
	// convention spec.md §3 uses (verified against geom.PolyArea2 directly).
	tri := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	g := geometer.New(tri)
	require.NoError(t, g.AddPoly(tri))
	require.Negativef(t, g.DoubleArea(), "expected negative doubleArea for this orientation")

	// Absorbing a point far outside, on the wrong side, would flip area
	// sign to positive; construct an edit that does exactly that by adding
	// a point so far out it overwhelms the existing negative area. e must
	// match AddPoly's actual stored direction (prev->cur, not cur->prev),
	// which for this CCW-in-listing-order triangle is (0,10)->(0,0).
	far := geom.Point{X: 1000, Y: 1000}
	e := geom.Edge{U: geom.Point{X: 0, Y: 10}, V: geom.Point{X: 0, Y: 0}}
	add := []geom.Edge{{U: e.U, V: far}, {U: far, V: e.V}}
	del := []geom.Edge{e}

	delta := geom.AreaChange2(add, del)
	newArea := g.DoubleArea() + delta
	if newArea <= 0 {
		t.Skip("chosen far point did not flip sign under this geometry; not exercising the intended case")
	}

	require.False(t, g.ValidChange(add, del), "expected ValidChange to reject a sign-flipping edit")
}

func TestValidChange_RejectsSelfLoopAndDuplicate(t *testing.T) {
	pts := square()
	g := geometer.New(pts)
	require.NoError(t, g.AddPoly(pts))

	p := geom.Point{X: 0, Y: 0}
	require.False(t, g.ValidChange([]geom.Edge{{U: p, V: p}}, nil), "self-loop edge must be rejected")

	e := geom.Edge{U: geom.Point{X: 0, Y: 0}, V: geom.Point{X: 10, Y: 0}}
	require.False(t, g.ValidChange([]geom.Edge{e, e}, nil), "duplicate edge in add list must be rejected")
}

func TestIntersections_SeesLongEdges(t *testing.T) {
	pts := []geom.Point{
		{X: 0, Y: 0}, {X: 1000, Y: 0}, {X: 1000, Y: 1000}, {X: 0, Y: 1000},
	}
	g := geometer.New(pts)
	require.NoError(t, g.AddPoly(pts))

	// With cellSize 178 every side of this square spans six cells, so all
	// four sides live in longEdges. A horizontal segment across the middle
	// crosses the left and right sides.
	diag := geom.Edge{U: geom.Point{X: -1, Y: 500}, V: geom.Point{X: 1001, Y: 500}}
	hits := g.Intersections(diag)
	require.NotEmpty(t, hits, "expected the horizontal diagonal to intersect polygon boundary edges")
}
