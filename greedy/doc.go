// Package greedy implements the constructive phase of polymax's two-phase
// heuristic (spec.md §4.3): starting from a seed polygon, repeatedly absorb
// an unused point into the best-scoring edge until every point has been
// placed. When maximizing, only area-growing absorptions are committed, and
// the phase ends once no remaining point can be absorbed without shrinking
// the enclosed area; such points are left unplaced.
//
// # Algorithm
//
// Each present edge (u,v) owns a candidate queue of (weight, point) pairs
// for nearby unused points; weight trades off the area gained against the
// perimeter cost of the substitution (Weight, in weight.go). Every outer
// iteration assembles one best-remaining candidate per edge into a
// github.com/emirpasic/gods/trees/binaryheap max-heap, pops the global
// best, and attempts the edit edge(u,v) -> (u,p),(p,v) via
// geometer.Geometer.ValidChange. Stale heap entries (points already placed
// by a different edge since the queue was built) are detected by
// consulting the shared "unused" set on pop and discarded without
// rescanning the whole edge's queue.
//
// # Determinism
//
// No time-based randomness. Options.Seed drives both the optional Gaussian
// noise perturbation of the weight function and is threaded through every
// randomized choice so repeated runs with the same seed and inputs produce
// the same polygon (mirrors tsp.Options.Seed's documented contract).
//
// # Fallback
//
// If every edge's candidate queue runs dry while points remain, the
// neighborhood parameter Kappa is too restrictive for the remaining point
// set: Construct reruns the pass once from the seed with Kappa treated as
// infinite (every remaining point becomes a candidate for every edge). If
// even that yields no feasible candidate, Construct returns
// ErrInfeasibleNeighborhood. When maximizing, running dry is a normal
// finish instead: the remaining points are left unabsorbed.
//
// Complexity: O(unused * log(edges)) heap operations in the common case;
// each accepted absorption touches O(1) geometer state via ValidChange and
// O(k) spatial-index bookkeeping where k is the traversed-cell count of the
// two new edges (see geometer.Geometer.Add).
package greedy
