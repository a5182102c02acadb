package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-simplex/simplex/internal/errs"
	"github.com/go-simplex/simplex/internal/value"
)

// testEval builds a fresh Evaluator with an empty input stream and a
// discarded output stream, then evaluates src, following the teacher's
// eval_test.go testEval helper pattern of a one-line setup-and-run helper
// shared across table-driven cases.
func testEval(t *testing.T, src string) value.Value {
	t.Helper()

	ev, err := New(strings.NewReader(""), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("failed to bootstrap evaluator: %v", err)
	}

	v, err := ev.EvalSource([]byte(src), "test")
	if err != nil {
		t.Fatalf("unexpected evaluation error for %q: %v", src, err)
	}

	return v
}

func testEvalErr(t *testing.T, src string) error {
	t.Helper()

	ev, err := New(strings.NewReader(""), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("failed to bootstrap evaluator: %v", err)
	}

	_, err = ev.EvalSource([]byte(src), "test")
	if err == nil {
		t.Fatalf("expected an evaluation error for %q", src)
	}

	return err
}

func testIntegerValue(t *testing.T, v value.Value, want int64) {
	t.Helper()
	i, ok := v.(value.Integer)
	if !ok || int64(i) != want {
		t.Fatalf("got %v, want integer %d", v, want)
	}
}

func testFloatValue(t *testing.T, v value.Value, want float64) {
	t.Helper()
	f, ok := v.(value.Float)
	if !ok || float64(f) != want {
		t.Fatalf("got %v, want float %v", v, want)
	}
}

func testStringValue(t *testing.T, v value.Value, want string) {
	t.Helper()
	got, ok := value.ConsToString(v)
	if !ok || string(got) != want {
		t.Fatalf("got %v, want string %q", v, want)
	}
}

// Concrete scenarios, per the specification's testable properties section.

func TestScenarioAddition(t *testing.T) {
	testIntegerValue(t, testEval(t, "(+ 3 4)"), 7)
}

func TestScenarioFloatPromotion(t *testing.T) {
	testFloatValue(t, testEval(t, "(+ 34.2 5)"), 39.2)
}

func TestScenarioLambdaApplication(t *testing.T) {
	testIntegerValue(t, testEval(t, "((lambda x y (+ x y)) 3 4)"), 7)
}

func TestScenarioSequenceAndLet(t *testing.T) {
	testIntegerValue(t, testEval(t, "(sequence (let a 2) (let b 9) (+ a b))"), 11)
}

func TestScenarioIf(t *testing.T) {
	testStringValue(t, testEval(t, "(if false 'hello' 'world')"), "world")
}

func TestScenarioCondMatch(t *testing.T) {
	testStringValue(t, testEval(t, "(cond false 'foo' true 'bar' false 'baz')"), "bar")
}

func TestScenarioCondNoMatchIsRuntimeError(t *testing.T) {
	err := testEvalErr(t, "(cond false 'foo' false 'bar')")
	if _, ok := err.(*errs.RuntimeError); !ok {
		t.Fatalf("got error of type %T, want *errs.RuntimeError", err)
	}
}

func TestScenarioRead(t *testing.T) {
	ev, err := New(strings.NewReader("a\nb"), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("failed to bootstrap evaluator: %v", err)
	}

	want := []byte{'a', '\n', 'b'}
	for _, w := range want {
		v, err := ev.EvalSource([]byte("(read)"), "test")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, ok := v.(value.Byte)
		if !ok || byte(b) != w {
			t.Fatalf("got %v, want byte %q", v, w)
		}
	}

	v, err := ev.EvalSource([]byte("(read)"), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(value.Nil); !ok {
		t.Fatalf("got %v, want Nil at EOF", v)
	}
}

func TestScenarioUnterminatedApplicationIsParseError(t *testing.T) {
	_, err := (&Evaluator{}).EvalSource([]byte(`(let 'asdf' 3`), "test")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if _, ok := err.(*errs.ParseError); !ok {
		t.Fatalf("got error of type %T, want *errs.ParseError", err)
	}
}

// Quantified invariants.

func TestInvariantIntegerArithmeticCloses(t *testing.T) {
	testIntegerValue(t, testEval(t, "(* 2 3 4)"), 24)
	testIntegerValue(t, testEval(t, "(- 10 3)"), 7)
}

func TestInvariantNumericPromotion(t *testing.T) {
	testFloatValue(t, testEval(t, "(* 2 3.0)"), 6)
	testFloatValue(t, testEval(t, "(/ 7 2.0)"), 3.5)
}

func TestInvariantTruncatingIntegerDivision(t *testing.T) {
	testIntegerValue(t, testEval(t, "(/ (- 58) 3)"), -19)
}

func TestInvariantComparisonSymmetry(t *testing.T) {
	a := testEval(t, "(= 3 4)")
	b := testEval(t, "(= 4 3)")
	if a != b {
		t.Fatalf("(= a b) and (= b a) must agree, got %v and %v", a, b)
	}
}

func TestInvariantLexicalClosure(t *testing.T) {
	testIntegerValue(t, testEval(t, "(sequence (let x 1) (let f (lambda () x)) (let x 2) (f))"), 1)
}

func TestInvariantConsListEquivalence(t *testing.T) {
	v := testEval(t, "(= (list 1 2 3) (cons 1 (cons 2 (cons 3 nil))))")
	b, ok := v.(value.Boolean)
	if !ok || !bool(b) {
		t.Fatalf("got %v, want true", v)
	}
}

func TestInvariantDictFunctionalUpdate(t *testing.T) {
	v := testEval(t, "(sequence (let d1 (dict 'k' 1)) (let d2 (dict.set 'k' 2 d1)) (list (dict.get 'k' d1) (dict.get 'k' d2)))")
	pair, ok := v.(*value.Cons)
	if !ok {
		t.Fatalf("got %v, want a cons pair", v)
	}
	testIntegerValue(t, pair.Car, 1)
	rest, ok := pair.Cdr.(*value.Cons)
	if !ok {
		t.Fatalf("got %v, want a cons pair", pair.Cdr)
	}
	testIntegerValue(t, rest.Car, 2)
}

func TestStdlibAppendLenReverse(t *testing.T) {
	testIntegerValue(t, testEval(t, "(len (list 1 2 3))"), 3)
	testIntegerValue(t, testEval(t, "(len (append (list 1 2) 3))"), 3)

	v := testEval(t, "(= (reverse (list 1 2 3)) (list 3 2 1))")
	b, ok := v.(value.Boolean)
	if !ok || !bool(b) {
		t.Fatalf("got %v, want true", v)
	}
}

func TestStdlibLessEqualGreaterEqual(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"(<= 3 3)", true},
		{"(<= 4 3)", false},
		{"(>= 3 3)", true},
		{"(>= 2 3)", false},
	}
	for _, c := range cases {
		v := testEval(t, c.src)
		b, ok := v.(value.Boolean)
		if !ok || bool(b) != c.want {
			t.Errorf("%s = %v, want %v", c.src, v, c.want)
		}
	}
}

func TestTypeMismatchOnBadComparison(t *testing.T) {
	err := testEvalErr(t, "(< 1 'a')")
	if _, ok := err.(*errs.TypeMismatchError); !ok {
		t.Fatalf("got error of type %T, want *errs.TypeMismatchError", err)
	}
}

func TestUndeclaredIdentifierIsRuntimeError(t *testing.T) {
	err := testEvalErr(t, "(this-is-not-bound)")
	if _, ok := err.(*errs.RuntimeError); !ok {
		t.Fatalf("got error of type %T, want *errs.RuntimeError", err)
	}
}
