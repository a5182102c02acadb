// Package cursor implements the byte-level input cursor consumed by the
// Simplex parser.
//
// Unlike a conventional lexer that tokenizes ahead of the parser, Simplex's
// grammar is simple enough (fully-prefix, parenthesized, one-byte-lookahead
// dispatch) that the parser walks the raw byte buffer directly. Cursor is
// the single component responsible for that walk: it owns the read-only
// byte buffer and reports position, remaining length, and 1-based line and
// column, so every downstream parse error can carry an exact source
// location.
//
// Newlines reset the column to 1 and increment the line; every other byte
// advances the column by one. The cursor never looks behind itself and
// never mutates the underlying buffer.
package cursor
