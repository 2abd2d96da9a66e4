package cmd

import (
	"fmt"
	"strconv"

	"github.com/polymax/polymax/greedy"
	"github.com/polymax/polymax/instance"
)

// params holds every CLI-tunable value, bound to cobra flags in root.go's
// init and optionally overridden by a --config YAML file (config.go).
// Mirrors the source's module-level globals (maximize, pen, hood, opt,
// hops, multirun, sigma, seed, timeout, nmin, nmax).
type params struct {
	maximize bool
	pen      float64
	hood     string // decimal kappa, or "inf"
	opt      bool
	hops     int
	multirun bool
	sigma    float64
	seed     int64
	timeout  float64
	nmin     int
	nmax     int

	config string
}

// parseHood turns the --hood flag value ("inf" or a non-negative integer)
// into a greedy.Options.Kappa value.
func parseHood(s string) (int, error) {
	if s == "inf" || s == "infinity" {
		return greedy.InfiniteKappa, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("hood: %w", err)
	}
	if v < 0 {
		return 0, fmt.Errorf("hood: must be non-negative or \"inf\", got %d", v)
	}

	return v, nil
}

// instanceHood mirrors parseHood's result into instance.Header's own
// infinite-hood sentinel, which is independent of greedy.InfiniteKappa so
// instance never needs to import greedy.
func instanceHood(kappa int) int {
	if kappa == greedy.InfiniteKappa {
		return instance.InfiniteHood
	}

	return kappa
}
