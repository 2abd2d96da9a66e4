// Package geometer - sentinel errors.
//
// Error policy (mirrors builder/errors.go and tsp/types.go):
//   - Only sentinel variables are exposed; callers use errors.Is.
//   - Sentinels are never wrapped with fmt.Errorf at the definition site.
//   - Precondition violations (e.g. Add on an already-present edge) are
//     reported as errors, not panics; ValidChange itself never errors — it
//     is a boolean gate per spec.md §4.2.
package geometer

import "errors"

// ErrEdgeExists indicates Add was called with an edge that is already
// present in the polygon (next[e.U] is already e.V).
var ErrEdgeExists = errors.New("geometer: edge already present")

// ErrEdgeMissing indicates Remove (or ApplyChange's delete phase) was asked
// to remove an edge that is not currently present.
var ErrEdgeMissing = errors.New("geometer: edge not present")

// ErrSelfLoop indicates an edge with U == V was passed to Add.
var ErrSelfLoop = errors.New("geometer: self-loop edge")

// ErrEmptyPolygon indicates GetPoly was called before any edge was added.
var ErrEmptyPolygon = errors.New("geometer: polygon is empty")

// ErrInvalidChange indicates ApplyChange was asked to apply an edit that
// ValidChange would have rejected; ApplyChange itself trusts the caller
// per spec.md §4.2 ("no intermediate validity checks"), so no function in
// this package returns this sentinel.
var ErrInvalidChange = errors.New("geometer: invalid change")
