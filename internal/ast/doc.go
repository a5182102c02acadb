// Package ast defines the Simplex abstract syntax tree.
//
// Simplex's grammar is small enough that a single tagged Node type (a Kind
// plus children and a payload) represents every production, matching
// original_source's single ASTNode class rather than the teacher's
// one-struct-per-expression-kind internal/types package. Every node carries
// the (line, column) of its first byte for diagnostics.
package ast
