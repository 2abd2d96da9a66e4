// Package solve is the single dispatcher tying seed selection, the
// greedy constructor, and local-search refinement together (spec.md §4.3
// "Main greedy loop" seed paragraph + §4.4), analogous to the teacher's
// tsp.SolveWithMatrix/tsp.SolveWithGraph entry points.
//
// # Seed selection
//
// Maximization seeds from geom.ConvexHull(points) (every point on the
// hull boundary, including colinear boundary points, is in the initial
// cycle; interior points are left to the greedy phase). Minimization seeds
// from an arbitrary triangle chosen the way the source's greedy_start
// does: p1 drawn uniformly at random, p2 the closest remaining point to
// p1, p3 the point minimizing dist(p,p1)+dist(p,p2), then wound clockwise
// (negative geom.SignedArea2, hence positive doubleArea), so geometer's
// sign-stability invariant holds from the very first AddPoly.
//
// # Multirun
//
// When Options.MultiRun is set, Solve repeats the full greedy+local-search
// pipeline with a freshly advanced deterministic seed each attempt until
// Options.Timeout elapses between completed attempts (never mid-run, per
// spec.md §5), keeping the best-scoring result. Each attempt is recorded
// as an AttemptStats entry on Result, replacing the source's stdout
// progress prints with a structured field (spec.md's ambient "logging"
// carried the way the teacher carries it: no logging library, structured
// return values).
package solve
