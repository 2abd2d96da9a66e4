// Package instance reads and writes the ".instance"/".solution" text file
// formats (spec.md §6), the thin I/O glue the core treats as an external
// collaborator. Identifiers are assigned by the caller's input file, not by
// the core, so a Point never carries its own identifier: instance keeps the
// (x,y) -> identifier mapping alongside the []geom.Point slice the core
// consumes.
//
// # Input format
//
// One non-comment line per point: "identifier x y", whitespace-separated,
// all three non-negative integers. Lines starting with "#" are comments.
// Duplicate coordinates are not expected; ReadFile does not detect them
// (spec.md: "behavior is undefined if they occur").
//
// # Output format
//
// One identifier per line, in polygon order, preceded by "#"-prefixed
// comment lines recording score, elapsed time, invocation arguments, and
// pre-optimization statistics (Header). WriteFile derives the output file's
// extension from Header per ExtensionFor, matching the source's save().
package instance
