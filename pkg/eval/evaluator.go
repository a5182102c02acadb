package eval

import (
	"fmt"
	"io"

	"github.com/go-simplex/simplex/internal/ast"
	"github.com/go-simplex/simplex/internal/errs"
	"github.com/go-simplex/simplex/internal/symtable"
	"github.com/go-simplex/simplex/internal/value"
	"github.com/go-simplex/simplex/pkg/parser"
	"github.com/go-simplex/simplex/stdlib"
)

// Evaluator owns the top-level symbol table and the two streams injected
// into it. One Evaluator is created per interpreter run and persists
// across REPL iterations, so lets at the top level accumulate exactly as
// the specification's closure test requires.
type Evaluator struct {
	table *symtable.Table
}

// New builds an Evaluator wired to input and output, installs the native
// built-ins, then bootstraps the bundled Simplex-source standard library on
// top of them. A failure while parsing or evaluating the bundled library
// is a programmer error in this module, not a user-facing one, but it is
// still reported as an ordinary error rather than a panic.
func New(input io.Reader, output io.Writer) (*Evaluator, error) {
	table := symtable.New(input, output)
	registerBuiltins(table)

	e := &Evaluator{table: table}
	if _, err := e.EvalSource(stdlib.Source, "<stdlib>"); err != nil {
		return nil, fmt.Errorf("bootstrapping bundled standard library: %w", err)
	}

	return e, nil
}

// EvalSource parses src as a complete program and evaluates it.
func (e *Evaluator) EvalSource(src []byte, filename string) (value.Value, error) {
	node, err := parser.Parse(src, filename)
	if err != nil {
		return nil, err
	}

	return e.EvalNode(node)
}

// EvalNode evaluates an already-parsed AST node (ordinarily a Program
// produced by the parser) against the evaluator's top-level table.
func (e *Evaluator) EvalNode(node *ast.Node) (value.Value, error) {
	return evalNode(node, e.table)
}

// evalNode is the central dispatcher, switching on node.Kind. It is a free
// function rather than a method because every special form and built-in
// needs to recursively evaluate sub-expressions against a table that is
// not necessarily the Evaluator's top-level one (a lambda call's augmented
// table, for instance).
func evalNode(node *ast.Node, table *symtable.Table) (value.Value, error) {
	switch node.Kind {
	case ast.Program:
		return evalProgram(node, table)
	case ast.Literal:
		return evalLiteral(node)
	case ast.Identifier:
		return evalIdentifier(node, table)
	case ast.Application:
		return evalApplication(node, table)
	default:
		return nil, &errs.RuntimeError{
			Message: fmt.Sprintf("cannot evaluate %s node", node.Kind),
			Line:    node.Line, Col: node.Col,
		}
	}
}

// evalProgram evaluates each top-level expression in order and returns the
// last result, iterating rather than recursing over the sequence itself
// (see the package doc comment).
func evalProgram(node *ast.Node, table *symtable.Table) (value.Value, error) {
	var result value.Value = value.Invalid{}
	for _, child := range node.Children {
		v, err := evalNode(child, table)
		if err != nil {
			return nil, err
		}
		result = v
	}

	return result, nil
}

// evalLiteral constructs the value denoted by a Literal node's sole child.
func evalLiteral(node *ast.Node) (value.Value, error) {
	child := node.Children[0]
	switch child.Kind {
	case ast.Integer:
		return value.Integer(child.IntValue), nil
	case ast.Float:
		return value.Float(child.FloatValue), nil
	case ast.String:
		return value.StringToCons([]byte(child.StrValue)), nil
	default:
		return nil, &errs.RuntimeError{
			Message: fmt.Sprintf("malformed literal node with child kind %s", child.Kind),
			Line:    node.Line, Col: node.Col,
		}
	}
}

// evalIdentifier resolves an Identifier node against table. true, false,
// and nil are ordinary entries installed by registerBuiltins, so this is a
// single lookup rather than a special case.
func evalIdentifier(node *ast.Node, table *symtable.Table) (value.Value, error) {
	v, ok := table.Get(node.StrValue)
	if !ok {
		return nil, &errs.RuntimeError{
			Message: "undeclared identifier: " + node.StrValue,
			Line:    node.Line, Col: node.Col,
		}
	}

	return v, nil
}

// evalApplication evaluates an Application node. If the head names a
// special form, its arguments are passed as raw AST nodes and evaluation
// order is entirely up to the handler. Otherwise the head is evaluated to
// a Function, the arguments are evaluated left-to-right, and the function
// is invoked.
func evalApplication(node *ast.Node, table *symtable.Table) (value.Value, error) {
	fnNode := node.Children[0]
	params := paramExprs(node.Children[1])

	if fnNode.Kind == ast.Identifier {
		if handler, ok := specialForms[fnNode.StrValue]; ok {
			return handler(node, params, table)
		}
	}

	fnVal, err := evalNode(fnNode, table)
	if err != nil {
		return nil, err
	}

	fn, ok := fnVal.(*value.Function)
	if !ok {
		return nil, &errs.TypeMismatchError{
			ExpectedKind: value.KindFunction.String(),
			ActualKind:   fnVal.Kind().String(),
			Line:         fnNode.Line, Col: fnNode.Col,
		}
	}

	args := make([]value.Value, len(params))
	for i, p := range params {
		v, err := evalNode(p, table)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	return fn.Call(node, args)
}

// paramExprs unwraps an OptionalParameterList node into the expressions it
// wraps, returning nil when the application has no arguments.
func paramExprs(optParamList *ast.Node) []*ast.Node {
	if len(optParamList.Children) == 0 {
		return nil
	}

	return optParamList.Children[0].Children
}
