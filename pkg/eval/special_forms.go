package eval

import (
	"fmt"

	"github.com/go-simplex/simplex/internal/ast"
	"github.com/go-simplex/simplex/internal/errs"
	"github.com/go-simplex/simplex/internal/symtable"
	"github.com/go-simplex/simplex/internal/value"
)

// specialFormHandler receives the raw argument nodes of an application
// whose head named it, unevaluated, plus the table the application is
// being evaluated in.
type specialFormHandler func(node *ast.Node, params []*ast.Node, table *symtable.Table) (value.Value, error)

// specialForms lists every reserved head identifier that bypasses normal
// application evaluation. This is the full set named by the
// specification; there is no user-level mechanism to add to it.
var specialForms map[string]specialFormHandler

func init() {
	specialForms = map[string]specialFormHandler{
		"lambda": evalLambda,
		"let":    evalLet,
		"if":     evalIf,
		"cond":   evalCond,
	}
}

// evalLambda implements "(lambda p1 p2 … pn body)". The table is captured
// by snapshot at this point, via Augment with no extra bindings, so that
// later lets in the defining scope cannot alter what the closure sees --
// this is the mechanism the specification's lexical-closure test exercises.
func evalLambda(node *ast.Node, params []*ast.Node, table *symtable.Table) (value.Value, error) {
	if len(params) == 0 {
		return nil, &errs.RuntimeError{
			Message: "lambda requires a body",
			Line:    node.Line, Col: node.Col,
		}
	}

	paramNames := make([]string, len(params)-1)
	for i, p := range params[:len(params)-1] {
		if p.Kind != ast.Identifier {
			return nil, &errs.RuntimeError{
				Message: "lambda parameter must be an identifier",
				Line:    p.Line, Col: p.Col,
			}
		}
		paramNames[i] = p.StrValue
	}
	body := params[len(params)-1]

	captured := table.Augment(nil)

	call := func(callNode *ast.Node, args []value.Value) (value.Value, error) {
		if len(args) != len(paramNames) {
			return nil, &errs.RuntimeError{
				Message: fmt.Sprintf("lambda expects %d argument(s), got %d", len(paramNames), len(args)),
				Line:    callNode.Line, Col: callNode.Col,
			}
		}

		bindings := make(map[string]value.Value, len(paramNames))
		for i, name := range paramNames {
			bindings[name] = args[i]
		}

		return evalNode(body, captured.Augment(bindings))
	}

	return value.NewFunction("", call), nil
}

// evalLet implements "(let name expr)": evaluates expr in the current
// table and binds name to the result in that SAME table, then returns
// true. It does not introduce a new scope.
func evalLet(node *ast.Node, params []*ast.Node, table *symtable.Table) (value.Value, error) {
	if len(params) != 2 {
		return nil, &errs.RuntimeError{
			Message: fmt.Sprintf("let expects 2 arguments, got %d", len(params)),
			Line:    node.Line, Col: node.Col,
		}
	}

	nameNode := params[0]
	if nameNode.Kind != ast.Identifier {
		return nil, &errs.RuntimeError{
			Message: "let name must be an identifier",
			Line:    nameNode.Line, Col: nameNode.Col,
		}
	}

	v, err := evalNode(params[1], table)
	if err != nil {
		return nil, err
	}

	table.Set(nameNode.StrValue, v)

	return value.Boolean(true), nil
}

// evalIf implements "(if cond then else)".
func evalIf(node *ast.Node, params []*ast.Node, table *symtable.Table) (value.Value, error) {
	if len(params) != 3 {
		return nil, &errs.RuntimeError{
			Message: fmt.Sprintf("if expects 3 arguments, got %d", len(params)),
			Line:    node.Line, Col: node.Col,
		}
	}

	condNode := params[0]
	condVal, err := evalNode(condNode, table)
	if err != nil {
		return nil, err
	}

	cond, err := value.AsBoolean(condNode, condVal)
	if err != nil {
		return nil, err
	}

	if cond {
		return evalNode(params[1], table)
	}

	return evalNode(params[2], table)
}

// evalCond implements "(cond c1 e1 c2 e2 … ck ek)": tries each condition in
// order, evaluating and returning the matching branch. An odd argument
// count, or a run where no condition is true, is a runtime error.
func evalCond(node *ast.Node, params []*ast.Node, table *symtable.Table) (value.Value, error) {
	if len(params) == 0 || len(params)%2 != 0 {
		return nil, &errs.RuntimeError{
			Message: "cond requires a non-zero even number of arguments",
			Line:    node.Line, Col: node.Col,
		}
	}

	for i := 0; i < len(params); i += 2 {
		condNode := params[i]
		condVal, err := evalNode(condNode, table)
		if err != nil {
			return nil, err
		}

		cond, err := value.AsBoolean(condNode, condVal)
		if err != nil {
			return nil, err
		}

		if cond {
			return evalNode(params[i+1], table)
		}
	}

	return nil, &errs.RuntimeError{
		Message: "cond: no condition was true",
		Line:    node.Line, Col: node.Col,
	}
}
