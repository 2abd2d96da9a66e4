package instance

import "time"

// InfiniteHood marks an unbounded neighborhood (kappa = infinity), mirroring
// greedy.InfiniteKappa without instance importing the greedy package.
const InfiniteHood = -1

// Header carries the run parameters and outcome recorded as "#"-prefixed
// comment lines at the top of a .solution file (spec.md §6), and the
// parameter subset that determines the output extension (ExtensionFor).
type Header struct {
	// Maximize, Pen, Sigma, Hood, Opt, Hops mirror the CLI parameters of the
	// same name; ExtensionFor derives the output extension from these.
	Maximize bool
	Pen      float64
	Sigma    float64
	Hood     int // InfiniteHood for an unbounded neighborhood
	Opt      bool
	Hops     int

	// Score, Elapsed are the final attempt's outcome.
	Score   float64
	Elapsed time.Duration

	// Args records the invocation's argument list verbatim, for the
	// "# Parameters:" comment line.
	Args []string

	// PreOptScore, PreOptElapsed record the constructive-phase outcome
	// before local search ran; zero values are omitted from the written
	// header when Opt is false.
	PreOptScore   float64
	PreOptElapsed time.Duration
}
