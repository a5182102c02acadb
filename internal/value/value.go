package value

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/go-simplex/simplex/internal/ast"
	"github.com/go-simplex/simplex/internal/errs"
)

// Kind discriminates the variants of the Simplex value sum type.
type Kind byte

const (
	KindNil Kind = iota
	KindBoolean
	KindInteger
	KindFloat
	KindByte
	KindCons
	KindDict
	KindFunction
	KindInvalid
)

var kindNames = map[Kind]string{
	KindNil:      "nil",
	KindBoolean:  "boolean",
	KindInteger:  "integer",
	KindFloat:    "float",
	KindByte:     "byte",
	KindCons:     "cons",
	KindDict:     "dict",
	KindFunction: "function",
	KindInvalid:  "invalid",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", byte(k))
}

// Value is implemented by every Simplex runtime value.
type Value interface {
	Kind() Kind
	// String renders a debug form; it is NOT the language's own to_string
	// conversion (see ToDisplayString), which has kind-specific rules the
	// specification defines precisely.
	String() string
	// Equals is a best-effort structural comparison for debugging and for
	// Go-side callers (e.g. test helpers). It never errors: two Functions
	// compare unequal here rather than raising, unlike the "=" builtin's
	// semantics, which must surface a RuntimeError per the specification.
	// Use the package-level Equal function for that authoritative check.
	Equals(Value) bool
}

// Nil is the empty value (). The specification calls out explicitly that
// Nil == Nil is true, so Equals does not treat it as incomparable.
type Nil struct{}

func (Nil) Kind() Kind     { return KindNil }
func (Nil) String() string { return "()" }
func (Nil) Equals(v Value) bool {
	_, ok := v.(Nil)

	return ok
}

// Boolean is a true/false value.
type Boolean bool

func (b Boolean) Kind() Kind     { return KindBoolean }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }
func (b Boolean) Equals(v Value) bool {
	other, ok := v.(Boolean)

	return ok && b == other
}

// Integer is a 64-bit signed integer value.
type Integer int64

func (i Integer) Kind() Kind     { return KindInteger }
func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Integer) Equals(v Value) bool {
	other, ok := v.(Integer)

	return ok && i == other
}

// Float is a 64-bit IEEE double value.
type Float float64

func (f Float) Kind() Kind { return KindFloat }

// String renders the shortest decimal representation that round-trips back
// to the same float64, matching the specification's "shortest round-trip
// float" to_string rule.
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (f Float) Equals(v Value) bool {
	other, ok := v.(Float)

	return ok && f == other
}

// Byte is an unsigned 8-bit value, produced by read and used as the
// element type of string-cons chains.
type Byte uint8

func (b Byte) Kind() Kind     { return KindByte }
func (b Byte) String() string { return string([]byte{byte(b)}) }
func (b Byte) Equals(v Value) bool {
	other, ok := v.(Byte)

	return ok && b == other
}

// Cons is a shared-owned pair. Lists and strings are both right-nested
// chains of Cons terminating in Nil; sharing is expressed simply by two
// Cons values pointing at the same *Cons node, which Go's garbage collector
// keeps alive for as long as any value references it.
type Cons struct {
	Car Value
	Cdr Value
}

// NewCons allocates a fresh cons cell.
func NewCons(car, cdr Value) *Cons {
	return &Cons{Car: car, Cdr: cdr}
}

func (c *Cons) Kind() Kind { return KindCons }
func (c *Cons) String() string {
	return fmt.Sprintf("(cons %s %s)", ToDisplayString(c.Car), ToDisplayString(c.Cdr))
}
func (c *Cons) Equals(v Value) bool {
	other, ok := v.(*Cons)

	return ok && c.Car.Equals(other.Car) && c.Cdr.Equals(other.Cdr)
}

// Dict maps byte-string keys to values. It is copy-on-write at the
// language level: Set never mutates the receiver, it returns a fresh Dict
// sharing the unaffected entries, matching dict.set's functional-update
// contract.
type Dict struct {
	entries map[string]Value
}

// NewDict builds a Dict from a set of key/value pairs.
func NewDict(pairs map[string]Value) *Dict {
	entries := make(map[string]Value, len(pairs))
	for k, v := range pairs {
		entries[k] = v
	}

	return &Dict{entries: entries}
}

func (d *Dict) Kind() Kind { return KindDict }

// Get looks up key, reporting whether it was present.
func (d *Dict) Get(key string) (Value, bool) {
	v, ok := d.entries[key]

	return v, ok
}

// Set returns a new Dict with key bound to val, leaving d untouched.
func (d *Dict) Set(key string, val Value) *Dict {
	entries := make(map[string]Value, len(d.entries)+1)
	for k, v := range d.entries {
		entries[k] = v
	}
	entries[key] = val

	return &Dict{entries: entries}
}

// Keys returns the dict's keys in sorted order. The specification allows
// any iteration order; sorting is the simplest way to make printing and
// tests deterministic.
func (d *Dict) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func (d *Dict) String() string {
	keys := d.Keys()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("'%s' %s", k, ToDisplayString(d.entries[k])))
	}
	out := "(dict"
	for _, p := range parts {
		out += " " + p
	}

	return out + ")"
}

func (d *Dict) Equals(v Value) bool {
	other, ok := v.(*Dict)
	if !ok || len(d.entries) != len(other.entries) {
		return false
	}
	for k, val := range d.entries {
		ov, ok := other.entries[k]
		if !ok || !val.Equals(ov) {
			return false
		}
	}

	return true
}

// Function is an opaque callable: an AST node (for diagnostics) plus a
// vector of already-evaluated arguments in, a Value or error out. Both
// native built-ins and Simplex lambda closures are represented uniformly
// this way, matching the specification's single Function variant (there is
// no separate "builtin" kind as in the teacher's value package).
type Function struct {
	Name string
	Call func(node *ast.Node, args []Value) (Value, error)
}

// NewFunction wraps call as a named Function value.
func NewFunction(name string, call func(node *ast.Node, args []Value) (Value, error)) *Function {
	return &Function{Name: name, Call: call}
}

func (f *Function) Kind() Kind { return KindFunction }
func (f *Function) String() string {
	if f.Name == "" {
		return "<lambda>"
	}

	return fmt.Sprintf("<function %s>", f.Name)
}

// Equals always reports false for the best-effort comparison; see Equal
// for the authoritative, error-returning comparison the "=" builtin uses.
func (f *Function) Equals(Value) bool { return false }

// Invalid is the default-constructed sentinel that must never surface to a
// user program. It exists only so partial evaluator code can return a
// well-typed zero Value while signaling "not a real value" to other core
// code during development.
type Invalid struct{}

func (Invalid) Kind() Kind     { return KindInvalid }
func (Invalid) String() string { return "<invalid>" }
func (Invalid) Equals(v Value) bool {
	_, ok := v.(Invalid)

	return ok
}

// Equal is the authoritative comparison used by the "=" builtin and by
// evaluator-level equality checks. It implements the specification's rule
// exactly: values of different kinds are unequal; within a kind, payloads
// are compared, with Cons and Dict comparing recursively; Function values
// can never be compared and produce a RuntimeError instead of a bool.
func Equal(node *ast.Node, a, b Value) (bool, error) {
	if _, ok := a.(*Function); ok {
		return false, &errs.RuntimeError{
			Message: "functions cannot be compared",
			Line:    node.Line, Col: node.Col,
		}
	}
	if _, ok := b.(*Function); ok {
		return false, &errs.RuntimeError{
			Message: "functions cannot be compared",
			Line:    node.Line, Col: node.Col,
		}
	}

	if a.Kind() != b.Kind() {
		return false, nil
	}

	if ca, ok := a.(*Cons); ok {
		cb := b.(*Cons)
		carEq, err := Equal(node, ca.Car, cb.Car)
		if err != nil || !carEq {
			return false, err
		}

		return Equal(node, ca.Cdr, cb.Cdr)
	}

	if da, ok := a.(*Dict); ok {
		db := b.(*Dict)
		if len(da.entries) != len(db.entries) {
			return false, nil
		}
		for k, v := range da.entries {
			ov, ok := db.entries[k]
			if !ok {
				return false, nil
			}
			eq, err := Equal(node, v, ov)
			if err != nil || !eq {
				return false, err
			}
		}

		return true, nil
	}

	return a.Equals(b), nil
}

// AsBoolean coerces v to a Go bool, succeeding only for Boolean values; any
// other kind raises TypeMismatch per the specification's boolean-coercion
// rule.
func AsBoolean(node *ast.Node, v Value) (bool, error) {
	b, ok := v.(Boolean)
	if !ok {
		return false, &errs.TypeMismatchError{
			ExpectedKind: KindBoolean.String(),
			ActualKind:   v.Kind().String(),
			Line:         node.Line, Col: node.Col,
		}
	}

	return bool(b), nil
}

// StringToCons builds a byte-cons chain from raw bytes, producing
// Cons(Nil, Nil) for the empty string per convention.
func StringToCons(s []byte) Value {
	if len(s) == 0 {
		return NewCons(Nil{}, Nil{})
	}

	var result Value = Nil{}
	for i := len(s) - 1; i >= 0; i-- {
		result = NewCons(Byte(s[i]), result)
	}

	return result
}

// ConsToString walks a byte-cons chain, skipping Nil heads and appending
// Byte heads, until it reaches a Nil tail. It reports false if v is not a
// Cons, or if the chain contains anything other than Byte/Nil cars and
// Cons/Nil cdrs.
func ConsToString(v Value) ([]byte, bool) {
	c, ok := v.(*Cons)
	if !ok {
		return nil, false
	}

	var buf []byte
	for {
		switch car := c.Car.(type) {
		case Byte:
			buf = append(buf, byte(car))
		case Nil:
			// skip
		default:
			return nil, false
		}

		switch cdr := c.Cdr.(type) {
		case Nil:
			return buf, true
		case *Cons:
			c = cdr
		default:
			return nil, false
		}
	}
}

// ToDisplayString implements the specification's to_string conversion: a
// deterministic textual form per kind, used by the "string" builtin and by
// dict/cons String() rendering.
func ToDisplayString(v Value) string {
	switch val := v.(type) {
	case Nil:
		return "()"
	case Boolean, Integer, Float, Byte, *Cons, *Dict:
		return val.String()
	case *Function:
		return val.String()
	default:
		return v.String()
	}
}
