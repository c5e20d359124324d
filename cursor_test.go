package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCursorClamp(t *testing.T) {
	b := bufferOf("abc", "de")

	tests := []struct {
		name string
		in   Cursor
		want Cursor
	}{
		{"inside", Cursor{1, 1}, Cursor{1, 1}},
		{"line end is valid", Cursor{0, 3}, Cursor{0, 3}},
		{"past line end", Cursor{1, 9}, Cursor{1, 2}},
		{"past last row", Cursor{7, 1}, Cursor{1, 1}},
		{"negative", Cursor{-2, -5}, Cursor{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Clamp(b))
		})
	}
}

func TestCursorMoveRight_StopsAtLineEnd(t *testing.T) {
	b := bufferOf("abc", "defgh")

	assert.Equal(t, Cursor{0, 1}, Cursor{0, 0}.MoveRight(b, 1))
	assert.Equal(t, Cursor{0, 3}, Cursor{0, 0}.MoveRight(b, 10))
	assert.Equal(t, Cursor{0, 3}, Cursor{0, 3}.MoveRight(b, 1), "does not wrap to the next line")
}

func TestCursorMoveLeft_StopsAtColumnZero(t *testing.T) {
	b := bufferOf("abc", "de")

	assert.Equal(t, Cursor{1, 1}, Cursor{1, 2}.MoveLeft(b, 1))
	assert.Equal(t, Cursor{1, 0}, Cursor{1, 2}.MoveLeft(b, 5))
	assert.Equal(t, Cursor{1, 0}, Cursor{1, 0}.MoveLeft(b, 1), "does not wrap to the previous line")
}

func TestCursorMoveDown_ClampsColumn(t *testing.T) {
	b := bufferOf("abcdef", "ab", "abcdef")

	c := Cursor{0, 5}.MoveDown(b, 1)
	assert.Equal(t, Cursor{1, 2}, c)

	// No remembered column: moving on keeps the clamped value.
	assert.Equal(t, Cursor{2, 2}, c.MoveDown(b, 1))
	assert.Equal(t, Cursor{2, 2}, c.MoveDown(b, 100))
}

func TestCursorMoveUp_ClampsAtFirstLine(t *testing.T) {
	b := bufferOf("a", "bcd", "efg")

	assert.Equal(t, Cursor{1, 3}, Cursor{2, 3}.MoveUp(b, 1))
	assert.Equal(t, Cursor{0, 1}, Cursor{2, 3}.MoveUp(b, 50))
}

func TestCursorMove_ZeroCountMeansOne(t *testing.T) {
	b := bufferOf("abc", "def")

	assert.Equal(t, Cursor{0, 1}, Cursor{0, 0}.MoveRight(b, 0))
	assert.Equal(t, Cursor{1, 0}, Cursor{0, 0}.MoveDown(b, 0))
}

func TestCursorLineEnd(t *testing.T) {
	b := bufferOf("hello", "")

	assert.Equal(t, Cursor{0, 5}, Cursor{0, 1}.LineEnd(b))
	assert.Equal(t, Cursor{1, 0}, Cursor{1, 0}.LineEnd(b))
}

func TestCursorMotions_StayInsideBuffer(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z]{0,12}`), 1, 20).Draw(t, "lines")
		b := bufferOf(lines...)
		c := Cursor{
			Row: rapid.IntRange(0, b.LineCount()-1).Draw(t, "row"),
		}
		c.Col = rapid.IntRange(0, b.LineLen(c.Row)).Draw(t, "col")

		moves := rapid.SliceOf(rapid.SampledFrom([]string{"h", "j", "k", "l", "$"})).Draw(t, "moves")
		for _, m := range moves {
			n := rapid.IntRange(1, 30).Draw(t, "n")
			prev := c
			switch m {
			case "h":
				c = c.MoveLeft(b, n)
				if c.Row != prev.Row {
					t.Fatalf("h changed row")
				}
			case "l":
				c = c.MoveRight(b, n)
				if c.Row != prev.Row {
					t.Fatalf("l changed row")
				}
			case "j":
				c = c.MoveDown(b, n)
			case "k":
				c = c.MoveUp(b, n)
			case "$":
				c = c.LineEnd(b)
			}
			if c.Row < 0 || c.Row >= b.LineCount() {
				t.Fatalf("row %d out of range after %s", c.Row, m)
			}
			if c.Col < 0 || c.Col > b.LineLen(c.Row) {
				t.Fatalf("col %d out of range on row %d after %s", c.Col, c.Row, m)
			}
		}
	})
}
