package ast

import "testing"

func TestKindStringKnownAndUnknown(t *testing.T) {
	if got := Program.String(); got != "program" {
		t.Fatalf("got %q, want %q", got, "program")
	}
	if got := Kind(999).String(); got != "Kind(999)" {
		t.Fatalf("got %q, want %q", got, "Kind(999)")
	}
}

func TestEqualsDistinguishesKind(t *testing.T) {
	i := NewInteger(3, 1, 1)
	f := NewFloat(3, 1, 1)
	if i.Equals(f) {
		t.Fatal("nodes of different kinds must not be equal")
	}
}

func TestEqualsComparesPayloads(t *testing.T) {
	a := NewInteger(7, 1, 1)
	b := NewInteger(7, 9, 9)
	c := NewInteger(8, 1, 1)
	if !a.Equals(b) {
		t.Fatal("integers with equal payloads and different positions should be equal")
	}
	if a.Equals(c) {
		t.Fatal("integers with different payloads should not be equal")
	}
}

func TestEqualsComparesStringAndIdentifierPayloads(t *testing.T) {
	if !NewString("hi", 1, 1).Equals(NewString("hi", 2, 2)) {
		t.Fatal("equal string payloads should compare equal")
	}
	if NewIdentifier("x", 1, 1).Equals(NewIdentifier("y", 1, 1)) {
		t.Fatal("different identifier payloads should not compare equal")
	}
}

func TestEqualsRecursesOverChildren(t *testing.T) {
	left := NewApplication(
		NewIdentifier("+", 1, 1),
		NewOptionalParameterList(NewParameterList([]*Node{NewInteger(1, 1, 1), NewInteger(2, 1, 1)}, 1, 1), 1, 1),
		1, 1,
	)
	right := NewApplication(
		NewIdentifier("+", 5, 5),
		NewOptionalParameterList(NewParameterList([]*Node{NewInteger(1, 5, 5), NewInteger(2, 5, 5)}, 5, 5), 5, 5),
		5, 5,
	)
	different := NewApplication(
		NewIdentifier("+", 1, 1),
		NewOptionalParameterList(NewParameterList([]*Node{NewInteger(1, 1, 1), NewInteger(3, 1, 1)}, 1, 1), 1, 1),
		1, 1,
	)

	if !left.Equals(right) {
		t.Fatal("structurally identical applications should be equal regardless of source position")
	}
	if left.Equals(different) {
		t.Fatal("applications with different argument payloads should not be equal")
	}
}

func TestNewOptionalParameterListEmpty(t *testing.T) {
	n := NewOptionalParameterList(nil, 1, 1)
	if len(n.Children) != 0 {
		t.Fatalf("got %d children, want 0", len(n.Children))
	}
}
