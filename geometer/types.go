// Package geometer maintains the current polygon as a directed cycle plus
// a uniform-grid spatial index, and is the single consistency gate
// (ValidChange) through which every edit to the polygon's edge set must
// pass. See spec.md §3 and §4.2 for the full contract.
//
// Complexity notes live beside each method; the package-level invariant is
// that next/prev stay mutual inverses and doubleArea's sign never flips
// across an accepted edit (spec.md invariants 1 and 5).
package geometer

import (
	"github.com/google/btree"

	"github.com/polymax/polymax/geom"
)

// Cell identifies one bucket of the uniform grid: (floor(x/cellSize),
// floor(y/cellSize)).
type Cell struct {
	CX, CY int64
}

// edgeKey is a comparable projection of geom.Edge used as a map key and as
// the btree ordering tiebreak for longEdges.
type edgeKey struct {
	ux, uy, vx, vy int64
}

func keyOf(e geom.Edge) edgeKey {
	return edgeKey{e.U.X, e.U.Y, e.V.X, e.V.Y}
}

// longEdgeItem is a btree.Item ordering edges by descending squared length,
// then by edgeKey for a total order (spec.md §3, §9: "an explicit
// length-sorted structure... there is no real requirement of ordered-set
// semantics", and google/btree gives us O(log n) insert/remove instead of a
// full re-sort after every addPoly/add/remove).
type longEdgeItem struct {
	edge  geom.Edge
	sqLen int64
	key   edgeKey
}

// Less orders by descending sqLen (so Ascend walks longest-first, matching
// spec.md's "iterate longEdges first, longest-rejector short-circuits").
func (a *longEdgeItem) Less(than btree.Item) bool {
	b := than.(*longEdgeItem)
	if a.sqLen != b.sqLen {
		return a.sqLen > b.sqLen
	}

	return a.key.less(b.key)
}

func (k edgeKey) less(o edgeKey) bool {
	if k.ux != o.ux {
		return k.ux < o.ux
	}
	if k.uy != o.uy {
		return k.uy < o.uy
	}
	if k.vx != o.vx {
		return k.vx < o.vx
	}

	return k.vy < o.vy
}

// maxShortEdgeCells is the traversal-length cutoff separating "short" edges
// (indexed per-cell in edgesInCell) from "long" edges (kept in longEdges).
// spec.md §3: "only for edges whose traversed-cell count is at most 4".
const maxShortEdgeCells = 4

// Geometer owns the polygon's directed-cycle maps, the running double area,
// and the two-tier spatial index (edgesInCell / longEdges). All mutation
// goes through Add/Remove/AddPoly/ApplyChange; ValidChange is the only
// consistency gate (spec.md §4.2, §5).
type Geometer struct {
	next map[geom.Point]geom.Point
	prev map[geom.Point]geom.Point

	doubleArea int64

	points map[geom.Point]struct{} // complete input set, immutable after New

	cellSize     int64
	edgesInCell  map[Cell]map[edgeKey]geom.Edge
	pointsInCell map[Cell]map[geom.Point]struct{}
	longEdges    *btree.BTree // of *longEdgeItem

	rtreeIdx *rtreeIndex // optional, see rtree.go; nil unless WithRTreeIndex is set
}
