package main

import (
	"strings"
	"testing"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridCanvas records what the renderer paints.
type gridCanvas struct {
	w, h    int
	cells   [][]rune
	fg      [][]termbox.Attribute
	cursorX int
	cursorY int
	flushed int
}

func newGridCanvas(w, h int) *gridCanvas {
	return &gridCanvas{w: w, h: h}
}

func (g *gridCanvas) Clear(fg, bg termbox.Attribute) {
	g.cells = make([][]rune, g.h)
	g.fg = make([][]termbox.Attribute, g.h)
	for y := range g.cells {
		g.cells[y] = []rune(strings.Repeat(" ", g.w))
		g.fg[y] = make([]termbox.Attribute, g.w)
	}
}

func (g *gridCanvas) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	if y < 0 || y >= g.h || x < 0 || x >= g.w {
		return
	}
	g.cells[y][x] = ch
	g.fg[y][x] = fg
}

func (g *gridCanvas) SetCursor(x, y int) { g.cursorX, g.cursorY = x, y }
func (g *gridCanvas) Flush() error       { g.flushed++; return nil }

func (g *gridCanvas) row(y int) string {
	return strings.TrimRight(string(g.cells[y]), " ")
}

func drawSession(t *testing.T, s *Session) *gridCanvas {
	t.Helper()
	f := s.Frame()
	g := newGridCanvas(f.Width, f.Height)
	NewRenderer(g).Draw(f)
	require.Equal(t, 1, g.flushed)
	return g
}

func TestDraw_Layout(t *testing.T) {
	s := newTestSession(t, editorOf("a.txt", "hello", "world"), editorOf("b.txt"))
	s.Resize(40, 8)
	g := drawSession(t, s)

	assert.Equal(t, " 0: a.txt  1: b.txt", g.row(0))
	assert.Equal(t, "  1 hello", g.row(1))
	assert.Equal(t, "  2 world", g.row(2))
	assert.Equal(t, "~", g.row(3))
	assert.True(t, strings.HasPrefix(g.row(6), " NORMAL  a.txt"))
	assert.True(t, strings.HasSuffix(g.row(6), "[1/2] 1,1"))
	assert.Equal(t, "", g.row(7))
	assert.Equal(t, 4, g.cursorX)
	assert.Equal(t, 1, g.cursorY)
}

func TestDraw_DirtyMarker(t *testing.T) {
	s := newTestSession(t, dirty(editorOf("a.txt", "x")))
	s.Resize(40, 6)
	g := drawSession(t, s)

	assert.Equal(t, " 0: a.txt [+]", g.row(0))
	assert.Contains(t, g.row(4), "a.txt [+]")
}

func TestDraw_RelativeLineNumbers(t *testing.T) {
	s := NewSession(SessionOptions{LineNumbers: LineNumbersRelative})
	s.tabs.Add(editorOf("a.txt", "a", "b", "c", "d"))
	s.Resize(20, 8)
	typeKeys(s, "2j")
	g := drawSession(t, s)

	assert.Equal(t, "  2 a", g.row(1))
	assert.Equal(t, "  1 b", g.row(2))
	assert.Equal(t, "  3 c", g.row(3))
	assert.Equal(t, "  1 d", g.row(4))
}

func TestDraw_NoLineNumbers(t *testing.T) {
	s := NewSession(SessionOptions{LineNumbers: LineNumbersNone})
	s.tabs.Add(editorOf("a.txt", "abc"))
	s.Resize(20, 6)
	typeKeys(s, "$")
	g := drawSession(t, s)

	assert.Equal(t, "abc", g.row(1))
	assert.Equal(t, 3, g.cursorX)
}

func TestDraw_CommandLineAndStatus(t *testing.T) {
	s := newTestSession(t, editorOf("a.txt"))
	s.Resize(30, 6)

	typeKeys(s, ":wq")
	g := drawSession(t, s)
	assert.Equal(t, ":wq", g.row(5))
	assert.Equal(t, 3, g.cursorX)
	assert.Equal(t, 5, g.cursorY)
	assert.True(t, strings.HasPrefix(g.row(4), " COMMAND "))

	s.HandleKey(Key{Code: KeyEsc})
	s.setError("Command not found: x")
	g = drawSession(t, s)
	assert.Equal(t, "Command not found: x", g.row(5))
	errFg, _ := GetThemeColor(ColorMessageError)
	assert.Equal(t, errFg, g.fg[5][0])
}

func TestDraw_HorizontalScroll(t *testing.T) {
	s := NewSession(SessionOptions{LineNumbers: LineNumbersNone})
	s.tabs.Add(editorOf("a.txt", "0123456789abcdef"))
	s.Resize(10, 6)
	typeKeys(s, "$")
	g := drawSession(t, s)

	assert.Equal(t, "789abcdef", g.row(1))
	assert.Equal(t, 9, g.cursorX)
}

func TestDraw_WideRunes(t *testing.T) {
	s := NewSession(SessionOptions{LineNumbers: LineNumbersNone})
	s.tabs.Add(editorOf("a.txt", "日本x"))
	s.Resize(20, 6)
	typeKeys(s, "2l")
	g := drawSession(t, s)

	assert.Equal(t, 4, g.cursorX)
}

func TestDraw_WideRunesScrollHorizontally(t *testing.T) {
	s := NewSession(SessionOptions{LineNumbers: LineNumbersNone})
	s.tabs.Add(editorOf("a.txt", strings.Repeat("日", 60)))
	s.Resize(80, 6)
	typeKeys(s, "50l")

	e := s.Active()
	require.Equal(t, 50, e.Cursor().Col)
	assert.Equal(t, 100, e.CursorCell())
	assert.Equal(t, 22, e.Viewport().ColOffset)

	g := drawSession(t, s)
	assert.Equal(t, 78, g.cursorX)
	assert.Equal(t, '日', g.cells[1][78])
	assert.Equal(t, '日', g.cells[1][0])
	assert.True(t, strings.HasSuffix(g.row(4), " 1,51"))
}

func TestDraw_WideRuneCutAtLeftEdge(t *testing.T) {
	s := NewSession(SessionOptions{LineNumbers: LineNumbersNone})
	s.tabs.Add(editorOf("a.txt", "a"+strings.Repeat("日", 20)))
	s.Resize(10, 6)
	typeKeys(s, "$")

	// Line end sits at cell 41, so cells 32..41 are visible and the
	// character spanning cells 31-32 is cut.
	e := s.Active()
	require.Equal(t, 32, e.Viewport().ColOffset)

	g := drawSession(t, s)
	assert.Equal(t, ' ', g.cells[1][0])
	assert.Equal(t, '日', g.cells[1][1])
	assert.Equal(t, 9, g.cursorX)
}

func TestDraw_Intro(t *testing.T) {
	chdir(t, t.TempDir())
	s := NewSession(SessionOptions{})
	require.NoError(t, s.Open())
	s.Resize(60, 20)
	g := drawSession(t, s)

	var found bool
	for y := 1; y < 17; y++ {
		if strings.HasSuffix(g.row(y), " kass") {
			found = true
		}
	}
	assert.True(t, found, "intro title is drawn")
}

func TestDraw_TinyTerminal(t *testing.T) {
	g := newGridCanvas(0, 0)
	NewRenderer(g).Draw(Frame{})
	assert.Equal(t, 1, g.flushed)
}
