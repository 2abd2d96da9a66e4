package solve

import (
	"time"

	"github.com/google/uuid"

	"github.com/polymax/polymax/geom"
	"github.com/polymax/polymax/greedy"
	"github.com/polymax/polymax/localsearch"
)

// Options configures Solve. Zero value is not meaningful; use
// DefaultOptions() and override fields as needed (mirrors
// tsp.Options/tsp.DefaultOptions's documented contract).
type Options struct {
	// Maximize selects maximization (true) or minimization (false) of
	// enclosed area.
	Maximize bool

	// EnableLocalSearch runs localsearch.Refine after greedy.Construct
	// ("opt" in the source).
	EnableLocalSearch bool

	// MultiRun repeats the pipeline under Timeout, keeping the
	// best-scoring attempt.
	MultiRun bool

	// Timeout bounds the multirun loop. Ignored when MultiRun is false.
	Timeout time.Duration

	// NMin, NMax bound the accepted input size; Solve returns
	// ErrTooFewPoints (NMin) or the caller's own bounds check
	// (cmd/polymax enforces NMax as a terminal message-and-exit per
	// spec.md §7, since Solve itself has no process to exit).
	NMin, NMax int

	// Greedy configures the constructive phase.
	Greedy greedy.Options

	// LocalSearch configures the refinement phase.
	LocalSearch localsearch.Options
}

// DefaultOptions returns Options with spec.md's documented defaults:
// Maximize=true, EnableLocalSearch=false, MultiRun=false, NMin=3,
// NMax=1<<30, and the greedy/localsearch sub-package defaults.
func DefaultOptions() Options {
	return Options{
		Maximize:          true,
		EnableLocalSearch: false,
		MultiRun:          false,
		Timeout:           30 * time.Second,
		NMin:              3,
		NMax:              1 << 30,
		Greedy:            greedy.DefaultOptions(),
		LocalSearch:       localsearch.DefaultOptions(),
	}
}

// AttemptStats records one greedy(+local-search) attempt, replacing the
// source's stdout progress prints (spec.md §3.4 ambient-logging note).
type AttemptStats struct {
	ID          uuid.UUID
	Elapsed     time.Duration
	ScoreBefore float64
	ScoreAfter  float64
	Accepted    bool // true iff this attempt became (or stayed) the best
}

// Result is Solve's return value: the best polygon found, its score, and
// a record of every attempt made.
type Result struct {
	Poly     []geom.Point
	Score    float64
	Attempts []AttemptStats
}
