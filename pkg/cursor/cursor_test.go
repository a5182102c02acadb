package cursor

import "testing"

func TestNewStartsAtLineOneColOne(t *testing.T) {
	c := New([]byte("ab"), "test")
	if c.Line() != 1 || c.Col() != 1 {
		t.Fatalf("got line=%d col=%d, want line=1 col=1", c.Line(), c.Col())
	}
	if c.Size() != 2 {
		t.Fatalf("got size=%d, want 2", c.Size())
	}
}

func TestNextAdvancesColumn(t *testing.T) {
	c := New([]byte("abc"), "test")

	if b := c.Next(); b != 'a' {
		t.Fatalf("got %q, want 'a'", b)
	}
	if c.Col() != 2 {
		t.Fatalf("got col=%d, want 2", c.Col())
	}
	if c.Size() != 2 {
		t.Fatalf("got size=%d, want 2", c.Size())
	}
}

func TestNewlineResetsColumnAndIncrementsLine(t *testing.T) {
	c := New([]byte("a\nb"), "test")
	c.Next() // 'a'
	c.Next() // '\n'

	if c.Line() != 2 || c.Col() != 1 {
		t.Fatalf("got line=%d col=%d, want line=2 col=1", c.Line(), c.Col())
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	c := New([]byte("xy"), "test")

	if b := c.Peek(); b != 'x' {
		t.Fatalf("got %q, want 'x'", b)
	}
	if c.Size() != 2 {
		t.Fatalf("peek must not advance, got size=%d, want 2", c.Size())
	}
}

func TestPeekAtOutOfBoundsReturnsZero(t *testing.T) {
	c := New([]byte("x"), "test")

	if b := c.PeekAt(5); b != 0 {
		t.Fatalf("got %d, want 0", b)
	}
	if b := c.PeekAt(-1); b != 0 {
		t.Fatalf("got %d, want 0", b)
	}
}

func TestAdvanceTracksLineColumnAcrossNewlines(t *testing.T) {
	c := New([]byte("ab\ncd"), "test")
	c.Advance(4) // consumes "ab\nc"

	if c.Line() != 2 || c.Col() != 2 {
		t.Fatalf("got line=%d col=%d, want line=2 col=2", c.Line(), c.Col())
	}
}

func TestRemainingReflectsPosition(t *testing.T) {
	c := New([]byte("hello"), "test")
	c.Advance(2)

	if got := string(c.Remaining()); got != "llo" {
		t.Fatalf("got %q, want %q", got, "llo")
	}
}
