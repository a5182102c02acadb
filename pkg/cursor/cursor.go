package cursor

// Cursor is a read-only walk over a byte buffer with line/column tracking.
//
// It mirrors the teacher's pkg/lexer.Lexer in its readChar/peekChar shape,
// but exposes the flatter peek/next/advance/size/remaining surface Simplex's
// parser expects, and tracks 1-based columns (the teacher's lexer starts
// columns at 0 and resets to 0 on newline; Simplex's diagnostics are
// 1-based in both dimensions, matching original_source's ASTInput/ASTNode).
type Cursor struct {
	buf      []byte
	pos      int
	line     int
	col      int
	filename string
}

// New creates a Cursor over buf. filename is an opaque tag carried through
// to diagnostics; it is never interpreted or opened by the cursor itself.
func New(buf []byte, filename string) *Cursor {
	return &Cursor{
		buf:      buf,
		line:     1,
		col:      1,
		filename: filename,
	}
}

// Peek returns the current byte without advancing. Callers must check
// Size() > 0 first; peeking past the end of the buffer is a programmer
// error, not a recoverable one, matching the teacher's style of precondition
// by panic on an invariant no well-formed caller can violate.
func (c *Cursor) Peek() byte {
	return c.buf[c.pos]
}

// PeekAt returns the byte n positions ahead of the current one without
// advancing, or 0 if that position lies outside the buffer. It is the same
// lookahead idiom as the teacher's peekChar.
func (c *Cursor) PeekAt(n int) byte {
	idx := c.pos + n
	if idx < 0 || idx >= len(c.buf) {
		return 0
	}

	return c.buf[idx]
}

// Next returns the current byte and advances the cursor by one.
func (c *Cursor) Next() byte {
	b := c.buf[c.pos]
	c.step(b)

	return b
}

// Advance consumes up to n bytes, updating line and column for each one.
// Advancing past the end of the buffer stops silently at the end; Simplex's
// grammar never calls Advance with an n larger than Size() in a well-formed
// parse, and the parser treats reaching Size() == 0 as EOF on its own.
func (c *Cursor) Advance(n int) {
	for range n {
		if c.pos >= len(c.buf) {
			return
		}
		c.step(c.buf[c.pos])
	}
}

// step advances the cursor past byte b, which must be buf[pos], and
// maintains the line/column invariant described in the package doc.
func (c *Cursor) step(b byte) {
	c.pos++
	if b == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
}

// Size returns the number of bytes remaining, including the current one.
func (c *Cursor) Size() int {
	return len(c.buf) - c.pos
}

// Remaining returns the unconsumed tail of the buffer. The returned slice
// aliases the cursor's backing array and must not be mutated.
func (c *Cursor) Remaining() []byte {
	return c.buf[c.pos:]
}

// Line returns the current 1-based line number.
func (c *Cursor) Line() int {
	return c.line
}

// Col returns the current 1-based column number.
func (c *Cursor) Col() int {
	return c.col
}

// Filename returns the opaque filename tag this cursor was created with.
func (c *Cursor) Filename() string {
	return c.filename
}
