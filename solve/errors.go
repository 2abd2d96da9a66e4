package solve

import "errors"

// ErrNoSolution indicates every attempt (greedy construction, optionally
// followed by local search) failed to produce a polygon. Surfaced instead
// of a nil Result per spec.md §7's "no solution found" terminal case.
var ErrNoSolution = errors.New("solve: no solution found")

// ErrTooFewPoints indicates fewer than Options.NMin points (3 by default)
// were supplied.
var ErrTooFewPoints = errors.New("solve: need at least 3 points")
