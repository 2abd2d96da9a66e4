package localsearch

import "errors"

// ErrEmptyPolygon indicates Refine was called with fewer than 3 points.
var ErrEmptyPolygon = errors.New("localsearch: polygon has fewer than 3 points")
