package main

// An Editor is one open tab: a TextBuffer with its cursor, viewport and file
// identity. All edits go through the Editor so the cursor and viewport stay
// consistent with the buffer after every change.

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Editor is a single tab.
type Editor struct {
	buffer   *TextBuffer
	cursor   Cursor
	viewport Viewport
	title    string // Shown in the tab bar; the path the tab was opened with.
}

// NewEditor creates a tab with an empty buffer bound to path. Nothing is
// read from disk.
func NewEditor(path string) *Editor {
	return &Editor{
		buffer:   NewTextBuffer(path),
		viewport: NewViewport(1, 1),
		title:    path,
	}
}

// OpenEditor creates a tab and loads path into it.
func OpenEditor(path string) (*Editor, error) {
	e := NewEditor(path)
	if err := e.buffer.Load(path); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Editor) Buffer() *TextBuffer { return e.buffer }
func (e *Editor) Cursor() Cursor      { return e.cursor }
func (e *Editor) Viewport() Viewport  { return e.viewport }
func (e *Editor) Title() string       { return e.title }
func (e *Editor) Path() string        { return e.buffer.Path() }

// IsDirty reports unsaved changes.
func (e *Editor) IsDirty() bool {
	return e.buffer.IsDirty()
}

// SetCursor moves the cursor to c, clamped to the buffer, and scrolls to it.
func (e *Editor) SetCursor(c Cursor) {
	e.cursor = c.Clamp(e.buffer)
	e.reveal()
}

// CursorCell returns the screen cell column where the cursor character
// starts.
func (e *Editor) CursorCell() int {
	start, _ := e.cursorCells()
	return start
}

// cursorCells returns the half-open cell span of the character under the
// cursor. Past the end of the line the span is one cell wide.
func (e *Editor) cursorCells() (int, int) {
	line := e.buffer.Line(e.cursor.Row)
	col := clamp(e.cursor.Col, 0, len(line))
	start := runewidth.StringWidth(string(line[:col]))
	w := 1
	if col < len(line) {
		w = max(runewidth.RuneWidth(line[col]), 1)
	}
	return start, start + w
}

// reveal scrolls so the whole cursor cell span is inside the window.
// Horizontal offsets are in cells.
func (e *Editor) reveal() {
	start, end := e.cursorCells()
	n := e.buffer.LineCount()
	e.viewport.Reveal(Cursor{Row: e.cursor.Row, Col: end - 1}, n)
	e.viewport.Reveal(Cursor{Row: e.cursor.Row, Col: start}, n)
}

// Load points the tab at path and reloads the buffer from it. The tab is
// left untouched when the file cannot be read.
func (e *Editor) Load(path string) error {
	buf := NewTextBuffer(path)
	if err := buf.Load(path); err != nil {
		return err
	}
	e.buffer = buf
	e.title = path
	e.cursor = Cursor{}
	e.viewport.RowOffset = 0
	e.viewport.ColOffset = 0
	return nil
}

// Save writes the buffer to its backing path.
func (e *Editor) Save() error {
	return e.buffer.Save(e.buffer.Path())
}

// Resize applies the text area size available to this tab.
func (e *Editor) Resize(height, width int) {
	start, end := e.cursorCells()
	n := e.buffer.LineCount()
	e.viewport.Resize(height, width, Cursor{Row: e.cursor.Row, Col: end - 1}, n)
	e.viewport.Reveal(Cursor{Row: e.cursor.Row, Col: start}, n)
}

func (e *Editor) MoveLeft(n int)  { e.SetCursor(e.cursor.MoveLeft(e.buffer, n)) }
func (e *Editor) MoveRight(n int) { e.SetCursor(e.cursor.MoveRight(e.buffer, n)) }
func (e *Editor) MoveUp(n int)    { e.SetCursor(e.cursor.MoveUp(e.buffer, n)) }
func (e *Editor) MoveDown(n int)  { e.SetCursor(e.cursor.MoveDown(e.buffer, n)) }
func (e *Editor) LineEnd()        { e.SetCursor(e.cursor.LineEnd(e.buffer)) }

// GotoLine moves to the 0-based row. The last line is reached directly and
// aligned to the bottom of the window; other rows are reached by moving up or
// down by the distance from the current row.
func (e *Editor) GotoLine(row int) {
	last := e.buffer.LineCount() - 1
	row = clamp(row, 0, last)

	if row == last {
		e.cursor = Cursor{Row: last, Col: min(e.cursor.Col, e.buffer.LineLen(last))}
		e.viewport.AlignBottom(last)
		e.reveal()
		return
	}

	delta := row - e.cursor.Row
	switch {
	case delta > 0:
		e.MoveDown(delta)
	case delta < 0:
		e.MoveUp(-delta)
	}
}

// InsertRune types r at the cursor and advances past it.
func (e *Editor) InsertRune(r rune) {
	e.buffer.InsertChar(e.cursor.Row, e.cursor.Col, r)
	e.SetCursor(Cursor{Row: e.cursor.Row, Col: e.cursor.Col + 1})
}

// InsertTab types spaces up to the next multiple of width.
func (e *Editor) InsertTab(width int) {
	width = max(width, 1)
	n := width - e.cursor.Col%width
	for _, r := range strings.Repeat(" ", n) {
		e.InsertRune(r)
	}
}

// Backspace deletes left of the cursor, joining lines at column zero.
func (e *Editor) Backspace() {
	row, col := e.cursor.Row, e.cursor.Col
	prevLen := e.buffer.LineLen(row - 1)

	switch e.buffer.DeleteCharBefore(row, col) {
	case DeletedChar:
		e.SetCursor(Cursor{Row: row, Col: col - 1})
	case JoinedPrevious:
		e.SetCursor(Cursor{Row: row - 1, Col: prevLen})
	}
}

// Newline splits the line at the cursor and moves to the start of the new
// line.
func (e *Editor) Newline() {
	e.buffer.SplitLine(e.cursor.Row, e.cursor.Col)
	e.SetCursor(Cursor{Row: e.cursor.Row + 1, Col: 0})
}

// OpenLineBelow inserts an empty line under the cursor and moves onto it.
func (e *Editor) OpenLineBelow() {
	e.buffer.InsertLine(e.cursor.Row + 1)
	e.SetCursor(Cursor{Row: e.cursor.Row + 1, Col: 0})
}

// DeleteUnderCursor removes up to n characters starting at the cursor.
func (e *Editor) DeleteUnderCursor(n int) {
	for i := 0; i < repeatCount(n); i++ {
		if !e.buffer.DeleteCharAt(e.cursor.Row, e.cursor.Col) {
			break
		}
	}
	e.SetCursor(e.cursor)
}
