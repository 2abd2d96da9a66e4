package greedy

// Default knobs, named after the source's own parameter names (spec.md
// §6, §GLOSSARY) so the CLI surface in cmd/polymax can bind flags 1:1.
const (
	// DefaultAlpha is the inverse weight of the perimeter term ("pen" in
	// the source; referred to as 1/alpha in the paper).
	DefaultAlpha = 90.0

	// DefaultKappa is the half-width, in grid cells, of the candidate
	// neighborhood searched around an edge ("hood" in the source).
	DefaultKappa = 2

	// InfiniteKappa signals "search the entire remaining point set",
	// used both as an explicit option value and as the automatic fallback
	// when a finite neighborhood proves infeasible.
	InfiniteKappa = -1
)

// Options configures the greedy constructor. Zero value is not meaningful;
// use DefaultOptions() and override fields as needed (mirrors
// tsp.Options/tsp.DefaultOptions's documented contract).
type Options struct {
	// Alpha is the perimeter-term divisor in Weight ("pen"). Must be >= 1.
	Alpha float64

	// Sigma is the standard deviation of the optional Gaussian noise
	// multiplier applied to Weight for exploration. 0 disables noise.
	Sigma float64

	// Kappa is the half-width, in grid cells, of the candidate
	// neighborhood searched around an edge. Use InfiniteKappa to search
	// the entire remaining point set unconditionally.
	Kappa int

	// Seed drives the deterministic RNG used for Sigma-noise perturbation.
	// 0 gives a fixed, reproducible stream.
	Seed int64
}

// DefaultOptions returns Options with spec.md's documented defaults:
// Alpha=90, Sigma=0 (no noise), Kappa=2, Seed=0 (deterministic).
func DefaultOptions() Options {
	return Options{
		Alpha: DefaultAlpha,
		Sigma: 0,
		Kappa: DefaultKappa,
		Seed:  0,
	}
}
