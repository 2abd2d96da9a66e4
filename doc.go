// Package polymax builds an area-extremal simple polygon over a 2D
// integer point set: given n points, find a simple (non-self-intersecting)
// polygon through some or all of them that maximizes or minimizes enclosed
// area.
//
// Under the hood, the work is organized under single-purpose subpackages:
//
//	geom/        — exact-sign geometric predicates, convex hull, area/score
//	geometer/    — the mutable polygon store: cycle maps, running double
//	               area, uniform-grid + R-tree spatial index
//	greedy/      — constructive phase: per-edge candidate queues, weighted
//	               heap-driven absorption, neighborhood-widening fallback
//	localsearch/ — refinement phase: bounded-length sub-path rerouting
//	solve/       — driver dispatcher: seed selection, multirun, Result
//	instance/    — .instance/.solution file I/O
//	cmd/polymax/ — the CLI binary
//
// See DESIGN.md for how each part is grounded and SPEC_FULL.md for the full
// requirements this module implements.
package polymax
