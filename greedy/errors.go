package greedy

import "errors"

// ErrInfeasibleNeighborhood indicates that even after widening Kappa to
// infinity (every remaining point considered for every edge), no edge has a
// single valid absorption candidate. This is spec.md §7's
// "Infeasible-neighborhood" error kind, surfaced as a null polygon by the
// caller.
var ErrInfeasibleNeighborhood = errors.New("greedy: no feasible point absorption for any edge")

// ErrEmptySeed indicates Construct was called with an empty seed polygon.
var ErrEmptySeed = errors.New("greedy: seed polygon is empty")
