// Package localsearch - Refine, the rerouting-move driver (spec.md §4.4).
package localsearch

import (
	"math"
	"sort"

	"github.com/polymax/polymax/geom"
	"github.com/polymax/polymax/geometer"
)

// move is one enumerated rerouting candidate, ready to apply.
type move struct {
	add, del   []geom.Edge
	areaChange int64
}

// Refine repeatedly sweeps poly for rerouting moves that improve the
// enclosed area in the requested direction until a sweep applies no move
// or the score moves by less than Options.OptGain.
//
// Complexity: see doc.go.
func Refine(poly []geom.Point, maximize bool, opts Options) ([]geom.Point, error) {
	if len(poly) < 3 {
		return nil, ErrEmptyPolygon
	}

	cur := poly
	prevScore, err := geom.Score(cur)
	if err != nil {
		return nil, err
	}

	for {
		next, changed, err := sweep(cur, maximize, opts)
		if err != nil {
			return nil, err
		}

		nextScore, err := geom.Score(next)
		if err != nil {
			return nil, err
		}

		delta := math.Abs(nextScore - prevScore)
		cur = next
		prevScore = nextScore

		if !changed || delta < opts.OptGain {
			break
		}
	}

	return cur, nil
}

// sweep performs one enumerate-sort-apply pass over the current polygon,
// returning the resulting polygon and whether any move was applied.
func sweep(poly []geom.Point, maximize bool, opts Options) ([]geom.Point, bool, error) {
	points := append([]geom.Point(nil), poly...)
	g := geometer.New(points)
	if err := g.AddPoly(poly); err != nil {
		return nil, false, err
	}

	moves := enumerate(g, poly, maximize, opts)
	sort.Slice(moves, func(i, j int) bool {
		return abs64(moves[i].areaChange) > abs64(moves[j].areaChange)
	})

	applied := false
	for _, m := range moves {
		if !g.ValidChange(m.add, m.del) {
			continue
		}
		if err := g.ApplyChange(m.add, m.del); err != nil {
			return nil, false, err
		}
		applied = true
	}

	out, err := g.GetPoly()
	if err != nil {
		return nil, false, err
	}

	return out, applied, nil
}

// enumerate finds every candidate rerouting move over the current state of
// g, filtering to moves that improve the area in the requested direction
// and pass ValidChange against g's unmodified state.
func enumerate(g *geometer.Geometer, poly []geom.Point, maximize bool, opts Options) []move {
	var moves []move
	n := len(poly)

	var i int
	for i = 0; i < n; i++ {
		u := poly[i]
		v := poly[(i+1)%n]
		e := geom.Edge{U: u, V: v}

		for _, p1 := range g.PointsNear(e, opts.Kappa) {
			if p1 == u || p1 == v {
				continue
			}
			moves = append(moves, enumeratePaths(g, e, p1, maximize, opts)...)
		}
	}

	return moves
}

// enumeratePaths walks the cycle from p1 along next, recording one
// candidate move per path length 1..Hops, stopping early if the walk
// would reach e's own endpoints.
func enumeratePaths(g *geometer.Geometer, e geom.Edge, p1 geom.Point, maximize bool, opts Options) []move {
	var moves []move
	path := []geom.Point{p1}

	for {
		if m, ok := buildMove(g, e, path, maximize); ok {
			moves = append(moves, m)
		}
		if len(path) >= opts.Hops {
			break
		}

		last := path[len(path)-1]
		next, ok := g.Next(last)
		if !ok || next == e.U || next == e.V {
			break
		}
		path = append(path, next)
	}

	return moves
}

// buildMove forms the add/del edge sets for detaching path from its
// current position and splicing its reverse across e, per spec.md §4.4.
// Returns ok=false if the move does not improve the area in the
// requested direction or fails ValidChange.
func buildMove(g *geometer.Geometer, e geom.Edge, path []geom.Point, maximize bool) (move, bool) {
	k := len(path)
	q0, qLast := path[0], path[k-1]

	b, ok := g.Prev(q0)
	if !ok {
		return move{}, false
	}
	a, ok := g.Next(qLast)
	if !ok {
		return move{}, false
	}

	del := make([]geom.Edge, 0, k+2)
	del = append(del, geom.Edge{U: b, V: q0}, geom.Edge{U: qLast, V: a}, e)
	add := make([]geom.Edge, 0, k+1)
	add = append(add, geom.Edge{U: e.U, V: qLast}, geom.Edge{U: q0, V: e.V}, geom.Edge{U: b, V: a})

	var i int
	for i = 0; i <= k-2; i++ {
		del = append(del, geom.Edge{U: path[i], V: path[i+1]})
		add = append(add, geom.Edge{U: path[i+1], V: path[i]})
	}

	areaChange := geom.AreaChange2(add, del)
	oldArea := g.DoubleArea()
	newArea := oldArea + areaChange

	improves := abs64(newArea) > abs64(oldArea)
	if !maximize {
		improves = abs64(newArea) < abs64(oldArea)
	}
	if !improves {
		return move{}, false
	}
	if !g.ValidChange(add, del) {
		return move{}, false
	}

	return move{add: add, del: del, areaChange: areaChange}, true
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
