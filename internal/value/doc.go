// Package value provides the runtime value system for the Simplex
// interpreter.
//
// The design follows the teacher's internal/value package: a small Value
// interface implemented by concrete, mostly-immutable types, with a Kind
// byte for fast type discrimination and an Equals method for structural
// comparison. It departs from the teacher in the variant set itself (Nil,
// Boolean, Integer, Float, Byte, Cons, Dict, Function, Invalid, in place of
// Nix's Null/Bool/Int/Float/String/Path/List/Attrs/Function/Builtin) and in
// two semantic rules the specification calls out explicitly:
//
//   - Cons cells are shared by pointer (original_source uses reference
//     counting; Go's garbage collector makes the refcount itself
//     unnecessary, but the sharing semantics -- two Cons values built from
//     the same sub-list alias the same nodes -- are preserved).
//   - Function values are never comparable: comparing a Function with the
//     package-level Equal function fails with a runtime error rather than
//     silently returning false, matching the specification's "functions
//     cannot be compared" rule. Because the Value interface's Equals method
//     can only return a bool, Function.Equals simply reports false; the
//     authoritative comparison used by the "=" builtin and by evaluator
//     equality checks is Equal, not the interface method.
package value
