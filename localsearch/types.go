package localsearch

// Default knobs, named after the source's own parameter names (spec.md
// §GLOSSARY: ℓ="hops", optgain) so cmd/polymax can bind flags 1:1.
const (
	// DefaultHops is the maximum rerouted sub-path length ℓ.
	DefaultHops = 1

	// DefaultKappa is the half-width, in grid cells, of the neighborhood
	// searched for candidate start vertices around an edge.
	DefaultKappa = 2

	// DefaultOptGain is the minimum absolute geom.Score improvement
	// between sweeps below which the outer driver stops.
	DefaultOptGain = 0.001
)

// Options configures Refine. Zero value is not meaningful; use
// DefaultOptions() and override fields as needed (mirrors
// tsp.Options/tsp.DefaultOptions's documented contract).
type Options struct {
	// Hops is ℓ, the maximum length of a sub-path moved in one step.
	Hops int

	// Kappa is the half-width, in grid cells, of the neighborhood
	// searched for candidate start vertices.
	Kappa int

	// OptGain is the convergence threshold on |Δscore| between sweeps.
	OptGain float64
}

// DefaultOptions returns Options with spec.md's documented defaults:
// Hops=1, Kappa=2, OptGain=0.001.
func DefaultOptions() Options {
	return Options{
		Hops:    DefaultHops,
		Kappa:   DefaultKappa,
		OptGain: DefaultOptGain,
	}
}
