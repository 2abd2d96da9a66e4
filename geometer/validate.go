// Package geometer - ValidChange, the single consistency gate for edits
// (spec.md §4.2). ApplyChange trusts that the caller already validated.
package geometer

import "github.com/polymax/polymax/geom"

// ValidChange reports whether the proposed edit (add edges, delete edges)
// may be safely applied. All of the following must hold:
//
//  1. every edge in del is currently present;
//  2. add has no duplicates and del has no duplicates;
//  3. no edge in add is a self-loop;
//  4. no two distinct edges in add properly intersect each other;
//  5. the sign of doubleArea+AreaChange2(add,del) equals the sign of the
//     current doubleArea (or is zero);
//  6. for every e in add, if the reverse edge is not currently present
//     (i.e. e is not a reversal of an existing polygon edge), e has no
//     proper intersection with any currently present edge.
//
// ValidChange never mutates state and never errors; it is a boolean gate.
//
// Complexity: O(|add|^2) for the mutual-intersection check plus
// O(|add|) * (Geometer.ProperIntersects cost) for the polygon-intersection
// check.
func (g *Geometer) ValidChange(add, del []geom.Edge) bool {
	// (1) every deleted edge must be present.
	for _, e := range del {
		if !g.Contains(e) {
			return false
		}
	}

	// (2) no duplicates within add or within del.
	if hasDuplicateEdge(add) || hasDuplicateEdge(del) {
		return false
	}

	// (3) no self-loops in add.
	for _, e := range add {
		if e.U == e.V {
			return false
		}
	}

	// (4) no two distinct added edges properly intersect each other.
	for i := 0; i < len(add); i++ {
		for j := i + 1; j < len(add); j++ {
			if geom.ProperSegIntersect(add[i], add[j]) {
				return false
			}
		}
	}

	// (5) doubleArea's sign must not flip.
	newArea := g.doubleArea + geom.AreaChange2(add, del)
	if (newArea > 0 && g.doubleArea < 0) || (newArea < 0 && g.doubleArea > 0) {
		return false
	}

	// (6) every added edge that is not a reversal of a present edge must not
	// properly intersect the current polygon.
	for _, e := range add {
		if g.Contains(e.Reversed()) {
			continue
		}
		if g.ProperIntersects(e) {
			return false
		}
	}

	return true
}

func hasDuplicateEdge(edges []geom.Edge) bool {
	seen := make(map[geom.Edge]struct{}, len(edges))
	for _, e := range edges {
		if _, ok := seen[e]; ok {
			return true
		}
		seen[e] = struct{}{}
	}

	return false
}

// ApplyChange removes every edge in del, then adds every edge in add, with
// no intermediate validity checks. Callers must have already confirmed
// ValidChange(add, del).
//
// Complexity: O(|add|+|del|) Add/Remove calls.
func (g *Geometer) ApplyChange(add, del []geom.Edge) error {
	for _, e := range del {
		if err := g.Remove(e); err != nil {
			return err
		}
	}
	for _, e := range add {
		if err := g.Add(e); err != nil {
			return err
		}
	}

	return nil
}
