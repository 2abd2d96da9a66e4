// Package greedy - the edge-absorption weight function (spec.md §4.3):
//
//	w(p; u,v) = SignedArea2(p,u,v)/2 + (sqdist(u,v) - sqdist(v,p) + sqdist(p,u)) / alpha
//
// Larger w is preferred: the first term rewards area gained by routing
// through p, the second rewards points that shorten the perimeter relative
// to the edge they replace.
package greedy

import (
	"math"
	"math/rand"

	"github.com/polymax/polymax/geom"
)

// Weight computes w(p; u,v) per spec.md §4.3. rng may be nil when sigma==0
// (no perturbation is performed and rng is never dereferenced).
//
// Complexity: O(1).
func Weight(p, u, v geom.Point, alpha, sigma float64, rng *rand.Rand) float64 {
	area := float64(geom.SignedArea2(p, u, v)) / 2
	perim := float64(geom.SqDist(u, v)-geom.SqDist(v, p)+geom.SqDist(p, u)) / alpha
	w := area + perim

	if sigma > 0 && rng != nil {
		w = perturb(w, sigma, rng)
	}

	return w
}

// perturb multiplies x by 1+|N(0,sigma)|, matching spec.md §4.3's optional
// exploration noise.
func perturb(x, sigma float64, rng *rand.Rand) float64 {
	noise := math.Abs(rng.NormFloat64() * sigma)

	return x * (1 + noise)
}
