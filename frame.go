package main

// Frame is everything the renderer needs for one screen update. The
// renderer never reaches into the session or the buffers.
type Frame struct {
	Width, Height int // Terminal size.

	Lines       [][]rune // Visible buffer lines, uncropped.
	FirstLine   int      // Buffer row of Lines[0].
	ColOffset   int      // First visible cell of every line.
	CursorLine  int      // Buffer row of the cursor, for relative numbers.
	CursorRow   int      // Cursor position relative to the text area.
	CursorCol   int      // In cells, relative to the text area.
	Column      int      // Character column of the cursor in its line.
	TextHeight  int      // Rows of the text area.
	LineNumbers LineNumberMode
	GutterWidth int

	Mode        Mode
	CommandLine string
	Status      Status

	Tabs      []TabInfo
	ActiveTab int

	Title     string
	Dirty     bool
	LineCount int
	ShowIntro bool
}

// TabInfo describes one entry of the tab bar.
type TabInfo struct {
	Title string
	Dirty bool
}

// Frame snapshots the session for the renderer.
func (s *Session) Frame() Frame {
	f := Frame{
		Width:       s.width,
		Height:      s.height,
		Mode:        s.mode,
		CommandLine: string(s.commandLine),
		Status:      s.status,
		ActiveTab:   s.tabs.ActiveIndex(),
		LineNumbers: s.lineNumbers,
	}
	for _, e := range s.tabs.Tabs() {
		f.Tabs = append(f.Tabs, TabInfo{Title: e.Title(), Dirty: e.IsDirty()})
	}

	e := s.Active()
	if e == nil {
		return f
	}
	b := e.Buffer()
	v := e.Viewport()
	start, end := v.VisibleRange(b.LineCount())
	for row := start; row < end; row++ {
		f.Lines = append(f.Lines, b.Line(row))
	}
	f.FirstLine = start
	f.ColOffset = v.ColOffset
	f.CursorLine = e.Cursor().Row
	f.CursorRow, f.CursorCol = v.ScreenPosition(Cursor{Row: e.Cursor().Row, Col: e.CursorCell()})
	f.Column = e.Cursor().Col
	f.TextHeight = v.Height
	f.GutterWidth = gutterWidth(s.lineNumbers, b.LineCount())
	f.Title = e.Title()
	f.Dirty = e.IsDirty()
	f.LineCount = b.LineCount()
	f.ShowIntro = s.introShown && s.tabs.Len() == 1 && !f.Dirty && s.mode == ModeNormal
	return f
}
