// Package stdlib embeds the portion of Simplex's standard library written
// in Simplex itself, for the evaluator to bootstrap on construction.
//
// The embedding technique -- a //go:embed directive exposing the source as
// a package-level byte slice -- is grounded on
// its-hmny-nand2tetris/code/pkg/jack/stdlib.go's identical pattern for
// bundling a build-time text asset (there, a JSON table; here, Simplex
// source), not on the teacher, which has no bundled-asset analog: Nix has
// no equivalent hosted-in-its-own-language standard library layer.
//
// lib.smplx defines append, len, reverse, readLine, and the <=/>=
// comparison operators on top of the native built-ins registered before
// this file is evaluated. append, len, and reverse need recursion but the
// language has no letrec: each is split into a worker (named with a ".g"
// suffix) that takes itself as an explicit first argument and a thin
// public wrapper that passes the worker to itself, so the recursive
// reference is an ordinary parameter rather than a name the worker's own
// closure snapshot would need to already contain.
package stdlib
