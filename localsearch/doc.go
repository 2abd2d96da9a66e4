// Package localsearch implements the refinement phase of polymax's
// two-phase heuristic (spec.md §4.4): rerouting short sub-paths across a
// different edge to improve a constructed polygon's enclosed area.
//
// # Algorithm
//
// Refine rebuilds a geometer.Geometer over the input polygon, then
// repeatedly sweeps every present edge e=(u,v): for each nearby candidate
// start vertex p1 (geometer.Geometer.PointsNear(e, Options.Kappa)),
// extends a sub-path [p1, next(p1), ...] along the current cycle up to
// Options.Hops vertices, stopping early if the path would reach u or v.
// Each prefix of that path is a candidate move: detach it from its
// current position and splice its reverse across e. A move is recorded
// when it improves the target direction (grows the enclosed area's
// magnitude when maximizing, shrinks it when minimizing) and passes
// geometer.Geometer.ValidChange against the unmodified state. After a
// full sweep, recorded moves are sorted by descending area-change
// magnitude and applied in order, each re-validated against whatever the
// prior moves in the same sweep already mutated (mirrors tsp's
// commit-on-revalidate local search passes).
//
// # Determinism
//
// No randomness: every sweep is a deterministic function of the current
// polygon and Options. The outer driver repeats sweeps while a sweep
// applies a move and the absolute change in geom.Score is at least
// Options.OptGain, exactly the
// convergence criterion spec.md §4.4 documents.
//
// Complexity: one sweep is O(n * (2*kappa+1)^2 * hops) candidate moves in
// the worst case; commit application is O(m log m) for m recorded moves
// (the sort) plus O(m) ValidChange/ApplyChange calls.
package localsearch
