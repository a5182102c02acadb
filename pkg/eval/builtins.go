package eval

import (
	"fmt"

	"github.com/go-simplex/simplex/internal/ast"
	"github.com/go-simplex/simplex/internal/errs"
	"github.com/go-simplex/simplex/internal/symtable"
	"github.com/go-simplex/simplex/internal/value"
)

// builtinFunc is the shape every native built-in implements, matching
// value.Function.Call exactly.
type builtinFunc func(node *ast.Node, args []value.Value) (value.Value, error)

// registerBuiltins installs every native built-in and constant named in
// the specification's built-in table into table, before any user or
// bundled-library code runs. The arity-checking wrapper functions below
// (fixed/atLeast/oneOrTwo/even) are grounded on the teacher's
// pkg/eval/builtins.go registerBuiltin(name, arity, fn) pattern: check
// arity once, centrally, rather than at the top of every handler.
func registerBuiltins(table *symtable.Table) {
	register := func(name string, fn builtinFunc) {
		table.Set(name, value.NewFunction(name, fn))
	}

	register("+", oneOrTwo("+", builtinAdd))
	register("-", oneOrTwo("-", builtinSub))
	register("*", atLeast("*", 1, builtinMul))
	register("/", fixed("/", 2, builtinDiv))
	register("=", atLeast("=", 2, builtinEq))
	register("<", fixed("<", 2, builtinLess))
	register(">", fixed(">", 2, builtinGreater))
	register("sequence", atLeast("sequence", 1, builtinSequence))
	register("cons", fixed("cons", 2, builtinCons))
	register("car", fixed("car", 1, builtinCar))
	register("cdr", fixed("cdr", 1, builtinCdr))
	register("list", builtinList)
	register("dict", even("dict", builtinDict))
	register("dict.get", fixed("dict.get", 2, builtinDictGet))
	register("dict.set", fixed("dict.set", 3, builtinDictSet))
	register("string", fixed("string", 1, builtinString))
	register("print", builtinPrint(table))
	register("read", fixed("read", 0, builtinRead(table)))

	table.Set("endl", value.StringToCons([]byte("\n")))
	table.Set("nil", value.Nil{})
	table.Set("true", value.Boolean(true))
	table.Set("false", value.Boolean(false))
}

func arityError(node *ast.Node, name, expected string, got int) error {
	return &errs.RuntimeError{
		Message: fmt.Sprintf("%s expects %s argument(s), got %d", name, expected, got),
		Line:    node.Line, Col: node.Col,
	}
}

func fixed(name string, n int, fn builtinFunc) builtinFunc {
	return func(node *ast.Node, args []value.Value) (value.Value, error) {
		if len(args) != n {
			return nil, arityError(node, name, fmt.Sprintf("%d", n), len(args))
		}

		return fn(node, args)
	}
}

func atLeast(name string, n int, fn builtinFunc) builtinFunc {
	return func(node *ast.Node, args []value.Value) (value.Value, error) {
		if len(args) < n {
			return nil, arityError(node, name, fmt.Sprintf("at least %d", n), len(args))
		}

		return fn(node, args)
	}
}

func oneOrTwo(name string, fn builtinFunc) builtinFunc {
	return func(node *ast.Node, args []value.Value) (value.Value, error) {
		if len(args) != 1 && len(args) != 2 {
			return nil, arityError(node, name, "1 or 2", len(args))
		}

		return fn(node, args)
	}
}

func even(name string, fn builtinFunc) builtinFunc {
	return func(node *ast.Node, args []value.Value) (value.Value, error) {
		if len(args)%2 != 0 {
			return nil, arityError(node, name, "an even number of", len(args))
		}

		return fn(node, args)
	}
}

// numAsFloat widens an Integer or Float value to float64.
func numAsFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.Integer:
		return float64(n), true
	case value.Float:
		return float64(n), true
	default:
		return 0, false
	}
}

func numTypeMismatch(node *ast.Node, v value.Value) error {
	return &errs.TypeMismatchError{
		ExpectedKind: "integer or float",
		ActualKind:   v.Kind().String(),
		Line:         node.Line, Col: node.Col,
	}
}

// numericBinOp implements the "+/-" promotion rule: if both operands are
// Integer, apply intOp and stay Integer; otherwise widen both to float64
// and apply floatOp.
func numericBinOp(node *ast.Node, a, b value.Value, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (value.Value, error) {
	ai, aIsInt := a.(value.Integer)
	bi, bIsInt := b.(value.Integer)
	if aIsInt && bIsInt {
		return value.Integer(intOp(int64(ai), int64(bi))), nil
	}

	af, ok := numAsFloat(a)
	if !ok {
		return nil, numTypeMismatch(node, a)
	}
	bf, ok := numAsFloat(b)
	if !ok {
		return nil, numTypeMismatch(node, b)
	}

	return value.Float(floatOp(af, bf)), nil
}

// builtinAdd implements "+": unary is identity, binary follows the
// integer/float promotion rule.
func builtinAdd(node *ast.Node, args []value.Value) (value.Value, error) {
	if len(args) == 1 {
		switch v := args[0].(type) {
		case value.Integer, value.Float:
			return v, nil
		default:
			return nil, numTypeMismatch(node, args[0])
		}
	}

	return numericBinOp(node, args[0], args[1],
		func(a, b int64) int64 { return a + b },
		func(a, b float64) float64 { return a + b },
	)
}

// builtinSub implements "-": unary negates, preserving kind; binary follows
// the integer/float promotion rule.
func builtinSub(node *ast.Node, args []value.Value) (value.Value, error) {
	if len(args) == 1 {
		switch v := args[0].(type) {
		case value.Integer:
			return -v, nil
		case value.Float:
			return -v, nil
		default:
			return nil, numTypeMismatch(node, args[0])
		}
	}

	return numericBinOp(node, args[0], args[1],
		func(a, b int64) int64 { return a - b },
		func(a, b float64) float64 { return a - b },
	)
}

// builtinMul implements "*": an all-integer argument list multiplies as
// integers, otherwise every argument is widened to float.
func builtinMul(node *ast.Node, args []value.Value) (value.Value, error) {
	allInt := true
	for _, a := range args {
		if _, ok := a.(value.Integer); !ok {
			allInt = false
			break
		}
	}

	if allInt {
		var product int64 = 1
		for _, a := range args {
			product *= int64(a.(value.Integer))
		}

		return value.Integer(product), nil
	}

	product := 1.0
	for _, a := range args {
		f, ok := numAsFloat(a)
		if !ok {
			return nil, numTypeMismatch(node, a)
		}
		product *= f
	}

	return value.Float(product), nil
}

// builtinDiv implements "/": integer division truncates toward zero (Go's
// native "/" on signed integers already does this), matching
// original_source/stdlib.cpp's -58/3 == -19 rule; any other combination
// divides as float.
func builtinDiv(node *ast.Node, args []value.Value) (value.Value, error) {
	ai, aInt := args[0].(value.Integer)
	bi, bInt := args[1].(value.Integer)
	if aInt && bInt {
		if bi == 0 {
			return nil, &errs.RuntimeError{Message: "division by zero", Line: node.Line, Col: node.Col}
		}

		return value.Integer(int64(ai) / int64(bi)), nil
	}

	af, ok := numAsFloat(args[0])
	if !ok {
		return nil, numTypeMismatch(node, args[0])
	}
	bf, ok := numAsFloat(args[1])
	if !ok {
		return nil, numTypeMismatch(node, args[1])
	}

	return value.Float(af / bf), nil
}

// builtinEq implements "=": true iff every argument equals the first, via
// the authoritative value.Equal (which raises on Function operands).
func builtinEq(node *ast.Node, args []value.Value) (value.Value, error) {
	for i := 1; i < len(args); i++ {
		eq, err := value.Equal(node, args[0], args[i])
		if err != nil {
			return nil, err
		}
		if !eq {
			return value.Boolean(false), nil
		}
	}

	return value.Boolean(true), nil
}

func kindMismatch(node *ast.Node, a, b value.Value) error {
	return &errs.TypeMismatchError{
		ExpectedKind: a.Kind().String(),
		ActualKind:   b.Kind().String(),
		Line:         node.Line, Col: node.Col,
	}
}

// builtinLess implements "<": same-kind numeric comparison only, matching
// the specification's stricter rule than arithmetic's cross-kind
// promotion.
func builtinLess(node *ast.Node, args []value.Value) (value.Value, error) {
	switch a := args[0].(type) {
	case value.Integer:
		b, ok := args[1].(value.Integer)
		if !ok {
			return nil, kindMismatch(node, args[0], args[1])
		}

		return value.Boolean(a < b), nil
	case value.Float:
		b, ok := args[1].(value.Float)
		if !ok {
			return nil, kindMismatch(node, args[0], args[1])
		}

		return value.Boolean(a < b), nil
	default:
		return nil, numTypeMismatch(node, args[0])
	}
}

// builtinGreater implements ">", symmetric with builtinLess.
func builtinGreater(node *ast.Node, args []value.Value) (value.Value, error) {
	switch a := args[0].(type) {
	case value.Integer:
		b, ok := args[1].(value.Integer)
		if !ok {
			return nil, kindMismatch(node, args[0], args[1])
		}

		return value.Boolean(a > b), nil
	case value.Float:
		b, ok := args[1].(value.Float)
		if !ok {
			return nil, kindMismatch(node, args[0], args[1])
		}

		return value.Boolean(a > b), nil
	default:
		return nil, numTypeMismatch(node, args[0])
	}
}

// builtinSequence implements "sequence": arguments are evaluated
// left-to-right by the caller before this is invoked, so this need only
// return the last one.
func builtinSequence(_ *ast.Node, args []value.Value) (value.Value, error) {
	return args[len(args)-1], nil
}

func builtinCons(_ *ast.Node, args []value.Value) (value.Value, error) {
	return value.NewCons(args[0], args[1]), nil
}

func builtinCar(node *ast.Node, args []value.Value) (value.Value, error) {
	c, ok := args[0].(*value.Cons)
	if !ok {
		return nil, &errs.TypeMismatchError{
			ExpectedKind: value.KindCons.String(),
			ActualKind:   args[0].Kind().String(),
			Line:         node.Line, Col: node.Col,
		}
	}

	return c.Car, nil
}

func builtinCdr(node *ast.Node, args []value.Value) (value.Value, error) {
	c, ok := args[0].(*value.Cons)
	if !ok {
		return nil, &errs.TypeMismatchError{
			ExpectedKind: value.KindCons.String(),
			ActualKind:   args[0].Kind().String(),
			Line:         node.Line, Col: node.Col,
		}
	}

	return c.Cdr, nil
}

// builtinList implements "list": right-folds its arguments into a cons
// chain terminated by Nil; zero arguments produce Cons(Nil, Nil), the same
// convention as the empty string.
func builtinList(_ *ast.Node, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.NewCons(value.Nil{}, value.Nil{}), nil
	}

	var result value.Value = value.Nil{}
	for i := len(args) - 1; i >= 0; i-- {
		result = value.NewCons(args[i], result)
	}

	return result, nil
}

func stringTypeMismatch(node *ast.Node, v value.Value) error {
	return &errs.TypeMismatchError{
		ExpectedKind: "string",
		ActualKind:   v.Kind().String(),
		Line:         node.Line, Col: node.Col,
	}
}

// builtinDict implements "dict": pairs of (string key, value) arguments
// into a Dict.
func builtinDict(node *ast.Node, args []value.Value) (value.Value, error) {
	pairs := make(map[string]value.Value, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := value.ConsToString(args[i])
		if !ok {
			return nil, stringTypeMismatch(node, args[i])
		}
		pairs[string(key)] = args[i+1]
	}

	return value.NewDict(pairs), nil
}

// builtinDictGet implements "dict.get key dict": Nil when the key is
// absent rather than an error, so the specification's functional-update
// property can read a key from the original dict even when only the
// updated dict binds it.
func builtinDictGet(node *ast.Node, args []value.Value) (value.Value, error) {
	key, ok := value.ConsToString(args[0])
	if !ok {
		return nil, stringTypeMismatch(node, args[0])
	}

	d, ok := args[1].(*value.Dict)
	if !ok {
		return nil, &errs.TypeMismatchError{
			ExpectedKind: value.KindDict.String(),
			ActualKind:   args[1].Kind().String(),
			Line:         node.Line, Col: node.Col,
		}
	}

	v, ok := d.Get(string(key))
	if !ok {
		return value.Nil{}, nil
	}

	return v, nil
}

// builtinDictSet implements "dict.set key value dict": a functional
// update, returning a new Dict and leaving the argument untouched.
func builtinDictSet(node *ast.Node, args []value.Value) (value.Value, error) {
	key, ok := value.ConsToString(args[0])
	if !ok {
		return nil, stringTypeMismatch(node, args[0])
	}

	d, ok := args[2].(*value.Dict)
	if !ok {
		return nil, &errs.TypeMismatchError{
			ExpectedKind: value.KindDict.String(),
			ActualKind:   args[2].Kind().String(),
			Line:         node.Line, Col: node.Col,
		}
	}

	return d.Set(string(key), args[1]), nil
}

func builtinString(_ *ast.Node, args []value.Value) (value.Value, error) {
	return value.StringToCons([]byte(value.ToDisplayString(args[0]))), nil
}

// builtinPrint closes over the table's output stream: "print" requires
// reaching the same injected stream regardless of call depth, per the
// specification's symbol-table design.
func builtinPrint(table *symtable.Table) builtinFunc {
	return func(node *ast.Node, args []value.Value) (value.Value, error) {
		for _, a := range args {
			b, ok := value.ConsToString(a)
			if !ok {
				return nil, stringTypeMismatch(node, a)
			}
			if _, err := table.Output.Write(b); err != nil {
				return nil, &errs.RuntimeError{
					Message: fmt.Sprintf("print: %v", err),
					Line:    node.Line, Col: node.Col,
				}
			}
		}

		return value.Boolean(true), nil
	}
}

// builtinRead closes over the table's input stream and reads a single
// byte, reporting Nil on EOF per the specification rather than an error.
func builtinRead(table *symtable.Table) builtinFunc {
	return func(_ *ast.Node, _ []value.Value) (value.Value, error) {
		b, err := table.Input.ReadByte()
		if err != nil {
			return value.Nil{}, nil
		}

		return value.Byte(b), nil
	}
}
