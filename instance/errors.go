package instance

import "errors"

// ErrMalformedLine indicates a non-comment input line did not parse as
// "identifier x y".
var ErrMalformedLine = errors.New("instance: malformed input line")

// ErrUnknownPoint indicates WriteFile was asked to emit a point absent from
// the supplied identifier mapping.
var ErrUnknownPoint = errors.New("instance: point has no known identifier")
