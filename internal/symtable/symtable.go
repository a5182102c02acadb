package symtable

import (
	"bufio"
	"io"

	"github.com/go-simplex/simplex/internal/value"
)

// Table is a scoped name -> value mapping plus the interpreter's injected
// input and output streams.
type Table struct {
	vars   map[string]value.Value
	Input  *bufio.Reader
	Output io.Writer
}

// New creates the top-level table, bound to the given input and output
// streams. The top-level table lives for the lifetime of the interpreter;
// everything else is produced by Augment. If input is already a
// *bufio.Reader it is reused as-is rather than wrapped again, so a caller
// that needs to interleave its own reads with the table's (the REPL reading
// one line at a time from the same stream the "read" builtin consumes) sees
// a single buffering layer instead of two racing over the same bytes.
func New(input io.Reader, output io.Writer) *Table {
	br, ok := input.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(input)
	}

	return &Table{
		vars:   make(map[string]value.Value),
		Input:  br,
		Output: output,
	}
}

// Get resolves name, reporting whether it was bound.
func (t *Table) Get(name string) (value.Value, bool) {
	v, ok := t.vars[name]

	return v, ok
}

// Set binds name to v in this table (not a copy). This is how the let
// special form mutates the current scope in place, per the specification:
// "binds name to the result in THIS evaluator's symbol table."
func (t *Table) Set(name string, v value.Value) {
	t.vars[name] = v
}

// Augment returns a new table: a shallow copy of this table's bindings
// with extra's entries overwritten on top, sharing the same I/O streams.
// This is the sole mechanism by which a lambda call constructs the
// environment its body executes in.
func (t *Table) Augment(extra map[string]value.Value) *Table {
	vars := make(map[string]value.Value, len(t.vars)+len(extra))
	for k, v := range t.vars {
		vars[k] = v
	}
	for k, v := range extra {
		vars[k] = v
	}

	return &Table{vars: vars, Input: t.Input, Output: t.Output}
}
