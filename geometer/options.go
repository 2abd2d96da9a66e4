// Package geometer - functional options for New, following builder's
// BuilderOption pattern (github.com/katalvlaran/lvlath/builder): a single
// Option type mutating a private config before construction, applied in
// order, later options override earlier ones.
package geometer

// Option customizes construction of a Geometer. As a rule, option
// constructors never panic and ignore invalid inputs (mirrors
// builder.BuilderOption's documented contract).
type Option func(cfg *config)

type config struct {
	cellSizeOverride int64 // 0 means "compute from spec.md §3's formula"
	capacityHint     int   // hint for map/grid pre-sizing
	useRTree         bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithCellSize overrides the automatically computed grid cell size. Mostly
// useful for tests that want to pin down exact cell boundaries. Values <= 0
// are ignored (spec.md requires a positive, even cell size).
func WithCellSize(size int64) Option {
	return func(cfg *config) {
		if size > 0 {
			cfg.cellSizeOverride = size
		}
	}
}

// WithCapacityHint pre-sizes internal maps for n expected points, avoiding
// reallocation during AddPoly of a large seed polygon.
func WithCapacityHint(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.capacityHint = n
		}
	}
}

// WithRTreeIndex additionally builds an R-tree over the full point set
// (see rtree.go), queried through PointsNearRTree by the greedy
// constructor's κ=∞ fallback in place of a linear scan once the uniform
// grid's neighborhood parameter has been widened to "search everything".
func WithRTreeIndex() Option {
	return func(cfg *config) {
		cfg.useRTree = true
	}
}
