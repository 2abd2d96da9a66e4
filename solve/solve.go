// Package solve - Solve, the seed-selection + greedy + local-search
// dispatcher (see doc.go).
package solve

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/polymax/polymax/geom"
	"github.com/polymax/polymax/greedy"
	"github.com/polymax/polymax/localsearch"
)

// Solve runs the full pipeline over points and returns the best polygon
// found under opts.
//
// Complexity: one attempt costs O(greedy.Construct) + O(localsearch.Refine)
// (see those packages' doc.go); MultiRun repeats attempts until Timeout
// elapses between completed runs.
func Solve(points []geom.Point, opts Options) (Result, error) {
	if len(points) < opts.NMin {
		return Result{}, ErrTooFewPoints
	}

	attempts := int64(0)
	start := time.Now()
	var best []geom.Point
	var bestScore float64
	var stats []AttemptStats

	for {
		rngSeed := opts.Greedy.Seed + attempts
		poly, scoreBefore, scoreAfter, elapsed, err := attempt(points, opts, rngSeed)
		attempts++

		accepted := false
		if err == nil && (best == nil || better(poly, best, opts.Maximize)) {
			best = poly
			bestScore = scoreAfter
			accepted = true
		}

		stats = append(stats, AttemptStats{
			ID:          uuid.New(),
			Elapsed:     elapsed,
			ScoreBefore: scoreBefore,
			ScoreAfter:  scoreAfter,
			Accepted:    accepted,
		})

		if !opts.MultiRun {
			break
		}
		if time.Since(start) > opts.Timeout {
			break
		}
	}

	if best == nil {
		return Result{Attempts: stats}, ErrNoSolution
	}

	return Result{Poly: best, Score: bestScore, Attempts: stats}, nil
}

// attempt runs one greedy(+local-search) pass with the given RNG seed,
// returning the resulting polygon and score trajectory.
func attempt(points []geom.Point, opts Options, rngSeed int64) (poly []geom.Point, scoreBefore, scoreAfter float64, elapsed time.Duration, err error) {
	t0 := time.Now()
	defer func() { elapsed = time.Since(t0) }()

	seed, err := seedPolygon(points, opts.Maximize, rngSeed)
	if err != nil {
		return nil, 0, 0, 0, err
	}

	greedyOpts := opts.Greedy
	greedyOpts.Seed = rngSeed

	poly0, err := greedy.Construct(points, seed, opts.Maximize, greedyOpts)
	if err != nil {
		return nil, 0, 0, 0, err
	}

	scoreBefore, err = geom.Score(poly0)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	scoreAfter = scoreBefore

	result := poly0
	if opts.EnableLocalSearch {
		result, err = localsearch.Refine(poly0, opts.Maximize, opts.LocalSearch)
		if err != nil {
			return nil, scoreBefore, 0, 0, err
		}
		scoreAfter, err = geom.Score(result)
		if err != nil {
			return nil, scoreBefore, 0, 0, err
		}
	}

	return result, scoreBefore, scoreAfter, 0, nil
}

// seedPolygon picks the initial cycle handed to greedy.Construct:
// convex hull for maximization, an arbitrary negatively-wound triangle
// for minimization (spec.md §4.3, doc.go).
func seedPolygon(points []geom.Point, maximize bool, rngSeed int64) ([]geom.Point, error) {
	if maximize {
		return geom.ConvexHull(points), nil
	}

	rng := rand.New(rand.NewSource(rngSeed))
	p1 := points[rng.Intn(len(points))]

	var p2 geom.Point
	bestSq := int64(-1)
	for _, p := range points {
		if p == p1 {
			continue
		}
		d := geom.SqDist(p, p1)
		if bestSq < 0 || d < bestSq {
			bestSq = d
			p2 = p
		}
	}

	var p3 geom.Point
	bestSum := -1.0
	for _, p := range points {
		if p == p1 || p == p2 {
			continue
		}
		d := geom.Dist(p, p1) + geom.Dist(p, p2)
		if bestSum < 0 || d < bestSum {
			bestSum = d
			p3 = p
		}
	}

	if geom.Colinear(p1, p2, p3) {
		return nil, geom.ErrColinearSeed
	}

	if geom.CCW(p1, p2, p3) {
		return []geom.Point{p2, p1, p3}, nil
	}

	return []geom.Point{p1, p2, p3}, nil
}

// better reports whether candidate improves on incumbent per the
// requested optimization direction.
func better(candidate, incumbent []geom.Point, maximize bool) bool {
	c := abs64(geom.PolyArea2(candidate))
	inc := abs64(geom.PolyArea2(incumbent))
	if maximize {
		return c > inc
	}

	return c < inc
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
