package geom_test

import (
	"testing"

	"github.com/polymax/polymax/geom"
)

func TestScore_TriangleIsAlwaysOne(t *testing.T) {
	tri := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}

	got, err := geom.Score(tri)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.0 {
		t.Fatalf("triangle score: want 1.0, got %v", got)
	}
}

func TestScore_SquareIsOne(t *testing.T) {
	sq := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	got, err := geom.Score(sq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.0 {
		t.Fatalf("square score: want 1.0, got %v", got)
	}
}

func TestAreaChange2_MatchesDirectRecompute(t *testing.T) {
	before := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	a0 := geom.PolyArea2(before)

	// Route through (5,5): replace edge (10,0)->(10,10) with two edges via (5,5).
	add := []geom.Edge{
		{U: geom.Point{X: 10, Y: 0}, V: geom.Point{X: 5, Y: 5}},
		{U: geom.Point{X: 5, Y: 5}, V: geom.Point{X: 10, Y: 10}},
	}
	del := []geom.Edge{{U: geom.Point{X: 10, Y: 0}, V: geom.Point{X: 10, Y: 10}}}

	delta := geom.AreaChange2(add, del)

	after := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	a1 := geom.PolyArea2(after)

	if a0+delta != a1 {
		t.Fatalf("AreaChange2 mismatch: a0=%d delta=%d a0+delta=%d want=%d", a0, delta, a0+delta, a1)
	}
}
