package parser

import (
	"strconv"

	"github.com/go-simplex/simplex/internal/ast"
	"github.com/go-simplex/simplex/internal/errs"
	"github.com/go-simplex/simplex/pkg/cursor"
)

// Parser drives a Cursor to build a Simplex AST. Unlike the teacher's
// parser, there is no separate token stream: the parser consumes bytes
// directly, since the grammar's dispatch decision at every expression
// start needs only a single byte of lookahead.
type Parser struct {
	cur *cursor.Cursor
}

// New creates a Parser over src. filename is carried through to the
// underlying Cursor purely as a diagnostics tag.
func New(src []byte, filename string) *Parser {
	return &Parser{cur: cursor.New(src, filename)}
}

// Parse parses src as a complete program and returns its AST, or the first
// parse error encountered.
func Parse(src []byte, filename string) (*ast.Node, error) {
	return New(src, filename).ParseProgram()
}

// ParseProgram parses the "program = expression { expression }" production.
// A well-formed program has at least one expression; an input containing
// only whitespace (or nothing) is a parse error, not an empty program.
func (p *Parser) ParseProgram() (*ast.Node, error) {
	line, col := p.cur.Line(), p.cur.Col()

	p.skipWhitespace()

	var children []*ast.Node
	for p.cur.Size() > 0 {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		children = append(children, expr)
		p.skipWhitespace()
	}

	if len(children) == 0 {
		return nil, &errs.ParseError{
			NodeKind: ast.Program.String(),
			Expected: "at least one expression",
			Actual:   "EOF",
			Line:     line, Col: col,
		}
	}

	return ast.NewProgram(children, line, col), nil
}

// parseExpression implements "expression = opt_ws, (application | literal |
// identifier), opt_ws". Per the specification's node-simplification rule,
// no Expression wrapper node is constructed here: the inner form is
// returned directly, so callers never need to chase a trivial wrapper.
func (p *Parser) parseExpression() (*ast.Node, error) {
	p.skipWhitespace()

	if p.cur.Size() == 0 {
		return nil, &errs.ParseError{
			NodeKind: ast.Expression.String(),
			Expected: "expression",
			Actual:   "EOF",
			Line:     p.cur.Line(), Col: p.cur.Col(),
		}
	}

	b := p.cur.Peek()

	var (
		node *ast.Node
		err  error
	)

	switch {
	case b == '(':
		node, err = p.parseApplication()
	case b == '\'' || isDigit(b):
		node, err = p.parseLiteral()
	default:
		node, err = p.parseIdentifier()
	}
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	return node, nil
}

// parseApplication implements "application = '(' , expression ,
// [parameter_list] , opt_ws , ')'".
func (p *Parser) parseApplication() (*ast.Node, error) {
	line, col := p.cur.Line(), p.cur.Col()
	p.cur.Next() // consume '('

	fn, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	var params *ast.Node
	if p.cur.Size() > 0 && p.cur.Peek() != ')' {
		inner, err := p.parseParameterList()
		if err != nil {
			return nil, err
		}
		params = ast.NewOptionalParameterList(inner, inner.Line, inner.Col)
	} else {
		params = ast.NewOptionalParameterList(nil, line, col)
	}

	p.skipWhitespace()

	if p.cur.Size() == 0 || p.cur.Peek() != ')' {
		return nil, &errs.ParseError{
			NodeKind: ast.Application.String(),
			Expected: "')'",
			Actual:   p.describeCurrent(),
			Line:     p.cur.Line(), Col: p.cur.Col(),
		}
	}
	p.cur.Next() // consume ')'

	return ast.NewApplication(fn, params, line, col), nil
}

// parseParameterList implements "parameter_list = expression, {expression}",
// reading expressions until the closing ')' or end of input.
func (p *Parser) parseParameterList() (*ast.Node, error) {
	line, col := p.cur.Line(), p.cur.Col()

	var children []*ast.Node
	for {
		p.skipWhitespace()
		if p.cur.Size() == 0 || p.cur.Peek() == ')' {
			break
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		children = append(children, expr)
	}

	return ast.NewParameterList(children, line, col), nil
}

// parseLiteral implements "literal = string | number".
func (p *Parser) parseLiteral() (*ast.Node, error) {
	line, col := p.cur.Line(), p.cur.Col()

	var (
		inner *ast.Node
		err   error
	)
	if p.cur.Peek() == '\'' {
		inner, err = p.parseString()
	} else {
		inner, err = p.parseNumber()
	}
	if err != nil {
		return nil, err
	}

	return ast.NewLiteral(inner, line, col), nil
}

// parseString implements "string = \"'\", {escape | non_quote_byte}, \"'\"".
// A backslash keeps itself in the output and takes the following byte
// literally, per the grammar's escape rule -- Simplex does not translate
// \n to a newline the way most languages do.
func (p *Parser) parseString() (*ast.Node, error) {
	line, col := p.cur.Line(), p.cur.Col()
	p.cur.Next() // consume opening '\''

	var buf []byte
	for {
		if p.cur.Size() == 0 {
			return nil, &errs.ParseError{
				NodeKind: ast.String.String(),
				Expected: "closing \"'\"",
				Actual:   "EOF",
				Line:     p.cur.Line(), Col: p.cur.Col(),
			}
		}

		b := p.cur.Next()
		if b == '\'' {
			break
		}
		if b == '\\' {
			buf = append(buf, b)
			if p.cur.Size() == 0 {
				return nil, &errs.ParseError{
					NodeKind: ast.String.String(),
					Expected: "byte following escape",
					Actual:   "EOF",
					Line:     p.cur.Line(), Col: p.cur.Col(),
				}
			}
			buf = append(buf, p.cur.Next())

			continue
		}
		buf = append(buf, b)
	}

	return ast.NewString(string(buf), line, col), nil
}

// parseNumber implements "number = digit, {digit | '.'}", stopping at
// whitespace or ')' and raising a parse error on any other byte, per the
// specification's accumulate-until-terminator rule.
func (p *Parser) parseNumber() (*ast.Node, error) {
	line, col := p.cur.Line(), p.cur.Col()

	var buf []byte
	isFloat := false

numberLoop:
	for p.cur.Size() > 0 {
		b := p.cur.Peek()
		switch {
		case isDigit(b):
			buf = append(buf, b)
			p.cur.Next()
		case b == '.' && !isFloat:
			isFloat = true
			buf = append(buf, b)
			p.cur.Next()
		case isWhitespace(b) || b == ')':
			break numberLoop
		default:
			return nil, &errs.ParseError{
				NodeKind: ast.Number.String(),
				Expected: "digits 0 through 9",
				Actual:   string(b),
				Line:     p.cur.Line(), Col: p.cur.Col(),
			}
		}
	}

	if isFloat {
		f, err := strconv.ParseFloat(string(buf), 64)
		if err != nil {
			return nil, &errs.ParseError{
				NodeKind: ast.Float.String(),
				Expected: "well-formed floating point literal",
				Actual:   string(buf),
				Line:     line, Col: col,
			}
		}

		return ast.NewFloat(f, line, col), nil
	}

	i, err := strconv.ParseInt(string(buf), 10, 64)
	if err != nil {
		return nil, &errs.ParseError{
			NodeKind: ast.Integer.String(),
			Expected: "well-formed integer literal",
			Actual:   string(buf),
			Line:     line, Col: col,
		}
	}

	return ast.NewInteger(i, line, col), nil
}

// parseIdentifier implements "identifier = non_special, {non_special}",
// where non_special excludes whitespace, '(', ')', and '\''.
func (p *Parser) parseIdentifier() (*ast.Node, error) {
	line, col := p.cur.Line(), p.cur.Col()

	var buf []byte
	for p.cur.Size() > 0 {
		b := p.cur.Peek()
		if isWhitespace(b) || b == ')' {
			break
		}
		if b == '(' || b == '\'' {
			return nil, &errs.ParseError{
				NodeKind: ast.Identifier.String(),
				Expected: "non-whitespace characters other than (, ), and '",
				Actual:   string(b),
				Line:     p.cur.Line(), Col: p.cur.Col(),
			}
		}
		buf = append(buf, b)
		p.cur.Next()
	}

	if len(buf) == 0 {
		return nil, &errs.ParseError{
			NodeKind: ast.Identifier.String(),
			Expected: "non-whitespace characters other than (, ), and '",
			Actual:   p.describeCurrent(),
			Line:     line, Col: col,
		}
	}

	return ast.NewIdentifier(string(buf), line, col), nil
}

// skipWhitespace implements "opt_ws = { ' ' | '\t' | '\n' | '\r' }".
func (p *Parser) skipWhitespace() {
	for p.cur.Size() > 0 && isWhitespace(p.cur.Peek()) {
		p.cur.Next()
	}
}

// describeCurrent renders the current byte for error messages, or "EOF" at
// end of input.
func (p *Parser) describeCurrent() string {
	if p.cur.Size() == 0 {
		return "EOF"
	}

	return string(p.cur.Peek())
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
