// Package errs defines the three structured error kinds Simplex raises:
// ParseError, RuntimeError, and TypeMismatchError. Each carries the source
// (line, col) of the offending token and renders itself in the
// "LINE|COL: message" form specified by the language's diagnostics
// contract, matching original_source/src/errors.cpp's set_message format
// exactly.
//
// Go has no exception mechanism, so "raised" in the specification's sense
// is expressed as the standard (T, error) return convention: every parsing
// and evaluation function returns as soon as it produces a non-nil error,
// and nothing in this package accumulates multiple errors the way the
// teacher's pkg/parser.ParseErrors does.
package errs
