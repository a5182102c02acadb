// Package eval implements the Simplex tree-walking evaluator.
//
// The dispatcher shape -- one switch over node kind, delegating identifier
// resolution, literal construction, and application handling to their own
// functions -- is grounded on the teacher's pkg/eval/evaluator.go
// evalExpr switch. What differs is the content: Simplex has one
// Function value kind (no separate builtin/closure split the way the
// teacher's evalApply distinguishes *value.Function from *value.Builtin),
// and its special forms (lambda, let, if, cond) bypass eager argument
// evaluation entirely rather than merely special-casing evaluation order,
// which the teacher's evalIf/evalLet/evalWith in control_flow.go do not
// need to do since Nix has no user-level special-form extension point.
//
// Per the specification's design note on recursion depth, Program-level
// evaluation iterates over top-level expressions with a plain for loop
// rather than recursing, so a long sequence of independent top-level
// forms does not itself consume stack; each expression's own evaluation
// still recurses with its structure, which is bounded by the program's
// nesting, not its length.
package eval
