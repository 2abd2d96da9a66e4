package greedy_test

import (
	"math/rand"
	"testing"

	"github.com/polymax/polymax/geom"
	"github.com/polymax/polymax/greedy"
)

func TestWeight_NoNoiseIsDeterministic(t *testing.T) {
	u := geom.Point{X: 0, Y: 0}
	v := geom.Point{X: 10, Y: 0}
	p := geom.Point{X: 5, Y: 3}

	w1 := greedy.Weight(p, u, v, greedy.DefaultAlpha, 0, nil)
	w2 := greedy.Weight(p, u, v, greedy.DefaultAlpha, 0, nil)

	if w1 != w2 {
		t.Fatalf("Weight not deterministic without noise: %v != %v", w1, w2)
	}
}

func TestWeight_LargerAreaGainIsPreferred(t *testing.T) {
	u := geom.Point{X: 0, Y: 0}
	v := geom.Point{X: 10, Y: 0}
	near := geom.Point{X: 5, Y: 1}
	far := geom.Point{X: 5, Y: 8}

	wNear := greedy.Weight(near, u, v, greedy.DefaultAlpha, 0, nil)
	wFar := greedy.Weight(far, u, v, greedy.DefaultAlpha, 0, nil)

	if wFar <= wNear {
		t.Fatalf("expected taller triangle to score higher: near=%v far=%v", wNear, wFar)
	}
}

func TestWeight_NoiseIsNonNegativeMultiplier(t *testing.T) {
	u := geom.Point{X: 0, Y: 0}
	v := geom.Point{X: 10, Y: 0}
	p := geom.Point{X: 5, Y: 3}

	rng := rand.New(rand.NewSource(1))
	base := greedy.Weight(p, u, v, greedy.DefaultAlpha, 0, nil)
	noisy := greedy.Weight(p, u, v, greedy.DefaultAlpha, 0.5, rng)

	// base is positive here (triangle is above the edge), so the
	// 1+|noise| multiplier can only scale it up.
	if base > 0 && noisy < base {
		t.Fatalf("noisy weight %v should not be below base %v for positive base", noisy, base)
	}
}

func TestWeight_SeededRNGIsReproducible(t *testing.T) {
	u := geom.Point{X: 0, Y: 0}
	v := geom.Point{X: 10, Y: 0}
	p := geom.Point{X: 5, Y: 3}

	rng1 := rand.New(rand.NewSource(42))
	rng2 := rand.New(rand.NewSource(42))

	w1 := greedy.Weight(p, u, v, greedy.DefaultAlpha, 0.3, rng1)
	w2 := greedy.Weight(p, u, v, greedy.DefaultAlpha, 0.3, rng2)

	if w1 != w2 {
		t.Fatalf("same seed produced different weights: %v != %v", w1, w2)
	}
}
