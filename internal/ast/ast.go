package ast

import "fmt"

// Kind enumerates the categories of AST node. The set matches
// original_source's NodeKind enum, with Application added per the
// specification's grammar (the original's early NodeKind predates
// Application as a distinct node; later revisions and the language grammar
// both name it explicitly).
type Kind int

const (
	Program Kind = iota
	Expression
	Application
	OptionalParameterList
	ParameterList
	Literal
	Number
	Integer
	Float
	String
	Identifier
	Whitespace
	Invalid
)

// names mirrors original_source's NodeKindName() switch, giving every kind
// a printable, human-readable label for use in parse error messages.
var names = map[Kind]string{
	Program:               "program",
	Expression:            "expression",
	Application:           "application",
	OptionalParameterList: "optional parameter list",
	ParameterList:         "parameter list",
	Literal:               "literal",
	Number:                "number",
	Integer:               "integer",
	Float:                 "float",
	String:                "string",
	Identifier:            "identifier",
	Whitespace:            "whitespace",
	Invalid:               "invalid",
}

// String renders a Kind using the name table above, falling back to a
// numeric form for any value outside the known set (which should never
// occur in a well-formed tree).
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is a single AST node. Composite kinds (Program, Application,
// OptionalParameterList, ParameterList, Literal, Expression) carry
// Children; leaf kinds carry exactly one of the payload fields relevant to
// their Kind (IntValue for Integer, FloatValue for Float, StrValue for
// String and Identifier).
type Node struct {
	Kind     Kind
	Line     int
	Col      int
	Children []*Node

	IntValue   int64
	FloatValue float64
	StrValue   string
}

// NewProgram builds a Program node from its ordered child expressions.
func NewProgram(children []*Node, line, col int) *Node {
	return &Node{Kind: Program, Children: children, Line: line, Col: col}
}

// NewApplication builds an Application node: fn is the function
// expression, params is the (possibly nil) OptionalParameterList.
func NewApplication(fn, params *Node, line, col int) *Node {
	return &Node{Kind: Application, Children: []*Node{fn, params}, Line: line, Col: col}
}

// NewOptionalParameterList wraps an optional ParameterList child. inner is
// nil when the application has no arguments.
func NewOptionalParameterList(inner *Node, line, col int) *Node {
	n := &Node{Kind: OptionalParameterList, Line: line, Col: col}
	if inner != nil {
		n.Children = []*Node{inner}
	}

	return n
}

// NewParameterList builds a ParameterList node from its expressions.
func NewParameterList(children []*Node, line, col int) *Node {
	return &Node{Kind: ParameterList, Children: children, Line: line, Col: col}
}

// NewInteger builds an Integer literal payload node.
func NewInteger(v int64, line, col int) *Node {
	return &Node{Kind: Integer, IntValue: v, Line: line, Col: col}
}

// NewFloat builds a Float literal payload node.
func NewFloat(v float64, line, col int) *Node {
	return &Node{Kind: Float, FloatValue: v, Line: line, Col: col}
}

// NewString builds a String literal payload node. v is the string content
// with escapes already applied per the grammar's escape rule.
func NewString(v string, line, col int) *Node {
	return &Node{Kind: String, StrValue: v, Line: line, Col: col}
}

// NewLiteral wraps a Number-family or String child under a Literal node.
func NewLiteral(child *Node, line, col int) *Node {
	return &Node{Kind: Literal, Children: []*Node{child}, Line: line, Col: col}
}

// NewIdentifier builds an Identifier node carrying its name.
func NewIdentifier(name string, line, col int) *Node {
	return &Node{Kind: Identifier, StrValue: name, Line: line, Col: col}
}

// Equals reports structural, kind-sensitive equality: nodes of different
// kinds are never equal; within a kind, payloads are compared directly and
// composite kinds compare children recursively in order.
func (n *Node) Equals(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind {
		return false
	}

	switch n.Kind {
	case Integer:
		return n.IntValue == other.IntValue
	case Float:
		return n.FloatValue == other.FloatValue
	case String, Identifier:
		return n.StrValue == other.StrValue
	}

	if len(n.Children) != len(other.Children) {
		return false
	}
	for i, c := range n.Children {
		if !c.Equals(other.Children[i]) {
			return false
		}
	}

	return true
}
