package parser

import (
	"testing"

	"github.com/go-simplex/simplex/internal/ast"
	"github.com/go-simplex/simplex/internal/errs"
)

func mustParse(t *testing.T, src string) *ast.Node {
	t.Helper()
	node, err := Parse([]byte(src), "test")
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", src, err)
	}

	return node
}

func TestParseIntegerLiteral(t *testing.T) {
	prog := mustParse(t, "42")
	if len(prog.Children) != 1 {
		t.Fatalf("got %d top-level expressions, want 1", len(prog.Children))
	}
	lit := prog.Children[0]
	if lit.Kind != ast.Literal {
		t.Fatalf("got kind %s, want literal", lit.Kind)
	}
	inner := lit.Children[0]
	if inner.Kind != ast.Integer || inner.IntValue != 42 {
		t.Fatalf("got %#v, want integer 42", inner)
	}
}

func TestParseFloatLiteral(t *testing.T) {
	prog := mustParse(t, "3.5")
	inner := prog.Children[0].Children[0]
	if inner.Kind != ast.Float || inner.FloatValue != 3.5 {
		t.Fatalf("got %#v, want float 3.5", inner)
	}
}

func TestParseStringLiteralWithEscape(t *testing.T) {
	prog := mustParse(t, `'a\'b'`)
	inner := prog.Children[0].Children[0]
	if inner.Kind != ast.String {
		t.Fatalf("got kind %s, want string", inner.Kind)
	}
	// The backslash is kept literally and the following byte is taken
	// verbatim, so \' becomes the two bytes \ and ', not a bare '.
	if inner.StrValue != `a\'b` {
		t.Fatalf("got %q, want %q", inner.StrValue, `a\'b`)
	}
}

func TestParseIdentifier(t *testing.T) {
	prog := mustParse(t, "foo")
	inner := prog.Children[0]
	if inner.Kind != ast.Identifier || inner.StrValue != "foo" {
		t.Fatalf("got %#v, want identifier foo", inner)
	}
}

func TestParseApplicationWithArguments(t *testing.T) {
	prog := mustParse(t, "(+ 3 4)")
	app := prog.Children[0]
	if app.Kind != ast.Application {
		t.Fatalf("got kind %s, want application", app.Kind)
	}

	fn := app.Children[0]
	if fn.Kind != ast.Identifier || fn.StrValue != "+" {
		t.Fatalf("got %#v, want identifier +", fn)
	}

	optParams := app.Children[1]
	if optParams.Kind != ast.OptionalParameterList || len(optParams.Children) != 1 {
		t.Fatalf("got %#v, want a populated optional parameter list", optParams)
	}

	params := optParams.Children[0]
	if params.Kind != ast.ParameterList || len(params.Children) != 2 {
		t.Fatalf("got %d params, want 2", len(params.Children))
	}
	if params.Children[0].Children[0].IntValue != 3 || params.Children[1].Children[0].IntValue != 4 {
		t.Fatalf("got %#v, want [3, 4]", params.Children)
	}
}

func TestParseApplicationWithNoArguments(t *testing.T) {
	prog := mustParse(t, "(foo)")
	app := prog.Children[0]
	optParams := app.Children[1]
	if len(optParams.Children) != 0 {
		t.Fatalf("got %d children, want 0 for a no-argument application", len(optParams.Children))
	}
}

func TestWhitespaceInsensitivity(t *testing.T) {
	compact := mustParse(t, "(+ 3 4)")
	spaced := mustParse(t, "  (  +   3    4   )  ")
	if !compact.Equals(spaced) {
		t.Fatal("whitespace differences must not change the parsed tree")
	}
}

func TestParseDeterminism(t *testing.T) {
	src := "((lambda x y (+ x y)) 3 4)"
	a := mustParse(t, src)
	b := mustParse(t, src)
	if !a.Equals(b) {
		t.Fatal("parsing the same input twice must yield equal trees")
	}
}

func TestParseNestedApplication(t *testing.T) {
	prog := mustParse(t, "((lambda x y (+ x y)) 3 4)")
	outer := prog.Children[0]
	if outer.Kind != ast.Application {
		t.Fatalf("got kind %s, want application", outer.Kind)
	}
	inner := outer.Children[0]
	if inner.Kind != ast.Application {
		t.Fatalf("got kind %s, want application (the lambda form)", inner.Kind)
	}
	if inner.Children[0].StrValue != "lambda" {
		t.Fatalf("got head %q, want lambda", inner.Children[0].StrValue)
	}
}

func TestUnterminatedApplicationIsParseError(t *testing.T) {
	// Mirrors the specification's scenario 8: an unterminated application
	// is a parse error, with 'asdf' correctly consumed as a string
	// literal (not an identifier, since a leading apostrophe cannot start
	// one) before the missing ')' is discovered.
	_, err := Parse([]byte(`(let 'asdf' 3`), "test")
	if err == nil {
		t.Fatal("expected a parse error for an unterminated application")
	}

	var parseErr *errs.ParseError
	if pe, ok := err.(*errs.ParseError); ok {
		parseErr = pe
	} else {
		t.Fatalf("got error of type %T, want *errs.ParseError", err)
	}
	if parseErr.Expected != "')'" {
		t.Fatalf("got expected=%q, want %q", parseErr.Expected, "')'")
	}
}

func TestUnterminatedStringIsParseError(t *testing.T) {
	if _, err := Parse([]byte(`'abc`), "test"); err == nil {
		t.Fatal("expected a parse error for an unterminated string")
	}
}

func TestMalformedNumberIsParseError(t *testing.T) {
	if _, err := Parse([]byte(`1a`), "test"); err == nil {
		t.Fatal("expected a parse error for a malformed number literal")
	}
}

func TestEmptyProgramIsParseError(t *testing.T) {
	if _, err := Parse([]byte("   "), "test"); err == nil {
		t.Fatal("expected a parse error for a program with no expressions")
	}
}
