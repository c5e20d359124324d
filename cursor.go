package main

// Cursor positions and motions. Every motion is a pure function of the
// current cursor and the buffer and always returns a position inside the
// buffer.

// Cursor is a buffer-relative position. Col counts characters and may equal
// the line length (insertion point after the last character).
type Cursor struct {
	Row int
	Col int
}

func repeatCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Clamp pulls the cursor back inside the buffer.
func (c Cursor) Clamp(b *TextBuffer) Cursor {
	c.Row = clamp(c.Row, 0, b.LineCount()-1)
	c.Col = clamp(c.Col, 0, b.LineLen(c.Row))
	return c
}

// MoveRight never crosses to the next line.
func (c Cursor) MoveRight(b *TextBuffer, n int) Cursor {
	c = c.Clamp(b)
	c.Col = min(c.Col+repeatCount(n), b.LineLen(c.Row))
	return c
}

// MoveLeft never crosses to the previous line.
func (c Cursor) MoveLeft(b *TextBuffer, n int) Cursor {
	c = c.Clamp(b)
	c.Col = max(c.Col-repeatCount(n), 0)
	return c
}

// MoveDown clamps the row to the last line and the column to the new line.
// No desired column is remembered.
func (c Cursor) MoveDown(b *TextBuffer, n int) Cursor {
	c = c.Clamp(b)
	c.Row = min(c.Row+repeatCount(n), b.LineCount()-1)
	c.Col = min(c.Col, b.LineLen(c.Row))
	return c
}

// MoveUp clamps the row to the first line and the column to the new line.
func (c Cursor) MoveUp(b *TextBuffer, n int) Cursor {
	c = c.Clamp(b)
	c.Row = max(c.Row-repeatCount(n), 0)
	c.Col = min(c.Col, b.LineLen(c.Row))
	return c
}

// LineEnd moves to the insertion point after the last character.
func (c Cursor) LineEnd(b *TextBuffer) Cursor {
	c = c.Clamp(b)
	c.Col = b.LineLen(c.Row)
	return c
}
