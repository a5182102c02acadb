// Package parser implements a recursive-descent parser for Simplex.
//
// Simplex's grammar is fully prefix and fully parenthesized -- there is no
// infix operator, no precedence, and therefore no Pratt parsing, unlike
// the teacher's pkg/parser (a Pratt parser for Nix's much larger
// expression grammar). What IS adopted from the teacher is its texture:
// heavy per-method documentation, a small Parser struct driving a single
// lookahead source, and a structured parse error raised at each mandatory
// token.
//
// The grammar itself, and the exact parse-error contract (NodeKind,
// expected, actual, line, column), are grounded directly on
// original_source/astnode.cpp's parseProgram/parseExpression/
// parseLiteral/parseNumber/parseString/parseIdentifier, which implement
// this same language in C++.
package parser
