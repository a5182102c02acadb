// Package symtable implements Simplex's lexically-scoped symbol table.
//
// This is deliberately NOT the teacher's internal/value.Env parent-pointer
// chain (Get walking up through a linked list of frames). The
// specification -- and original_source/symboltable.h's augment() -- define
// scoping as snapshot-copy: augmenting a table shallow-copies the current
// name->value mapping and then overwrites entries from the extra bindings,
// producing an independent table with no reference back to its parent.
// A lambda's closure captures one of these snapshots directly, so later
// mutations to an enclosing table's bindings (via a later let) can never
// be observed by a closure created earlier, which is exactly the lexical
// guarantee section 8's closure test exercises.
//
// The table additionally carries the two injected I/O streams so that
// print and read can reach them regardless of call depth, matching
// original_source's SymbolTable : unordered_map<string, Structure> with an
// istream&/ostream& pair.
package symtable
