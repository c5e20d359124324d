package main

// Viewport keeps a window of rows and columns over a buffer. Offsets are
// stateful: they only move when the cursor would leave the window.

// Viewport maps the visible text area onto buffer coordinates.
type Viewport struct {
	RowOffset int // Topmost visible buffer line.
	ColOffset int // Leftmost visible screen cell.
	Height    int // Visible rows, at least 1.
	Width     int // Visible cells, at least 1.
}

// NewViewport returns a viewport of the given size scrolled to the origin.
func NewViewport(height, width int) Viewport {
	v := Viewport{}
	v.setSize(height, width)
	return v
}

func (v *Viewport) setSize(height, width int) {
	v.Height = max(height, 1)
	v.Width = max(width, 1)
}

// Reveal adjusts the offsets so the cursor is inside the window. c.Col is a
// screen cell column, not a character index.
func (v *Viewport) Reveal(c Cursor, lineCount int) {
	if c.Row < v.RowOffset {
		v.RowOffset = c.Row
	}
	if c.Row >= v.RowOffset+v.Height {
		v.RowOffset = c.Row - v.Height + 1
	}
	// Do not leave blank rows below the last line.
	v.RowOffset = min(v.RowOffset, max(lineCount-v.Height, 0))
	v.RowOffset = max(v.RowOffset, 0)

	if c.Col < v.ColOffset {
		v.ColOffset = c.Col
	}
	if c.Col >= v.ColOffset+v.Width {
		v.ColOffset = c.Col - v.Width + 1
	}
	v.ColOffset = max(v.ColOffset, 0)
}

// Resize applies a new visible size and reveals the cursor again.
func (v *Viewport) Resize(height, width int, c Cursor, lineCount int) {
	v.setSize(height, width)
	v.Reveal(c, lineCount)
}

// AlignBottom scrolls so that row is the last visible line.
func (v *Viewport) AlignBottom(row int) {
	v.RowOffset = max(row-v.Height+1, 0)
}

// VisibleRange returns the half-open range of buffer lines in the window.
func (v Viewport) VisibleRange(lineCount int) (int, int) {
	start := min(v.RowOffset, lineCount)
	end := min(v.RowOffset+v.Height, lineCount)
	return start, end
}

// ScreenPosition returns the cursor relative to the window origin.
func (v Viewport) ScreenPosition(c Cursor) (int, int) {
	return c.Row - v.RowOffset, c.Col - v.ColOffset
}
