package main

// Screen painting. The Renderer turns a Frame into terminal cells: the tab
// bar on the first row, the text area with its gutter, the status bar and the
// command line on the last row.

import (
	"fmt"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

// Canvas is the cell grid the renderer paints on.
type Canvas interface {
	Clear(fg, bg termbox.Attribute)
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	SetCursor(x, y int)
	Flush() error
}

// termboxCanvas paints straight to the terminal.
type termboxCanvas struct{}

func (termboxCanvas) Clear(fg, bg termbox.Attribute) { termbox.Clear(fg, bg) }
func (termboxCanvas) SetCursor(x, y int)             { termbox.SetCursor(x, y) }
func (termboxCanvas) Flush() error                   { return termbox.Flush() }

func (termboxCanvas) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

// Renderer draws frames onto a canvas.
type Renderer struct {
	canvas Canvas
}

// NewRenderer returns a renderer for c; nil means the terminal.
func NewRenderer(c Canvas) *Renderer {
	if c == nil {
		c = termboxCanvas{}
	}
	return &Renderer{canvas: c}
}

// Draw paints a complete frame.
func (r *Renderer) Draw(f Frame) {
	_, defaultBg := GetThemeColor(ColorDefault)
	r.canvas.Clear(termbox.ColorDefault, defaultBg)
	if f.Width <= 0 || f.Height <= 0 {
		r.canvas.Flush()
		return
	}

	r.drawTabBar(f)
	cursorX := r.drawText(f)
	if f.ShowIntro {
		r.drawIntro(f)
	}
	r.drawStatusBar(f, f.Height-2)
	r.drawCommandBar(f, f.Height-1)

	// Synchronize terminal cursor with editor focus.
	if f.Mode == ModeCommand {
		r.canvas.SetCursor(runewidth.StringWidth(f.CommandLine), f.Height-1)
	} else {
		r.canvas.SetCursor(cursorX, f.CursorRow+1)
	}
	r.canvas.Flush()
}

// drawString paints s from x and returns the column after it.
func (r *Renderer) drawString(x, y, limit int, s string, fg, bg termbox.Attribute) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		r.canvas.SetCell(x, y, ch, fg, bg)
		x += w
	}
	return x
}

func (r *Renderer) fillRow(y, width int, fg, bg termbox.Attribute) {
	for x := 0; x < width; x++ {
		r.canvas.SetCell(x, y, ' ', fg, bg)
	}
}

// drawTabBar renders " 0: title [+] " entries with the active one
// highlighted.
func (r *Renderer) drawTabBar(f Frame) {
	fg, bg := GetThemeColor(ColorTabBar)
	r.fillRow(0, f.Width, fg, bg)

	x := 0
	for i, tab := range f.Tabs {
		label := fmt.Sprintf(" %d: %s ", i, tab.Title)
		if tab.Dirty {
			label = fmt.Sprintf(" %d: %s [+] ", i, tab.Title)
		}
		tfg, tbg := fg, bg
		if i == f.ActiveTab {
			tfg, tbg = GetThemeColor(ColorTabActive)
		}
		x = r.drawString(x, 0, f.Width, label, tfg, tbg)
		if x >= f.Width {
			break
		}
	}
}

// drawText renders the gutter and the visible lines and returns the screen
// column of the cursor. Lines are laid out in cells starting at ColOffset; a
// wide character cut by the left edge is skipped.
func (r *Renderer) drawText(f Frame) int {
	textX := f.GutterWidth

	for screenY := 0; screenY < f.TextHeight; screenY++ {
		y := screenY + 1
		if screenY >= len(f.Lines) {
			fg, bg := GetThemeColor(ColorEmptyLineMarker)
			r.canvas.SetCell(0, y, '~', fg, bg)
			continue
		}
		bufferY := f.FirstLine + screenY
		line := f.Lines[screenY]

		_, bg := GetThemeColor(ColorDefault)
		if bufferY == f.CursorLine {
			_, bg = GetThemeColor(ColorHighlightedLine)
			fg, _ := GetThemeColor(ColorDefault)
			for x := textX; x < f.Width; x++ {
				r.canvas.SetCell(x, y, ' ', fg, bg)
			}
		}

		if f.GutterWidth > 0 {
			r.drawLineNumber(f, bufferY, y)
		}

		fg, _ := GetThemeColor(ColorDefault)
		cell := 0
		for _, ch := range line {
			w := max(runewidth.RuneWidth(ch), 1)
			start := cell
			cell += w
			if start < f.ColOffset {
				continue
			}
			x := textX + start - f.ColOffset
			if x+w > f.Width {
				break
			}
			if ch == '\t' {
				ch = ' '
			}
			r.canvas.SetCell(x, y, ch, fg, bg)
		}
	}
	return textX + f.CursorCol
}

// drawLineNumber paints the absolute or relative number of bufferY.
func (r *Renderer) drawLineNumber(f Frame, bufferY, y int) {
	n := bufferY + 1
	color := ColorGutterLineNumber
	if bufferY == f.CursorLine {
		color = ColorGutterCurrentLine
	} else if f.LineNumbers == LineNumbersRelative {
		n = bufferY - f.CursorLine
		if n < 0 {
			n = -n
		}
	}
	fg, bg := GetThemeColor(color)
	num := strconv.Itoa(n)
	r.drawString(f.GutterWidth-1-len(num), y, f.GutterWidth-1, num, fg, bg)
}

// drawStatusBar renders the mode, file name, position and tab count.
func (r *Renderer) drawStatusBar(f Frame, y int) {
	fg, bg := GetThemeColor(ColorStatusBar)
	r.fillRow(y, f.Width, fg, bg)

	modeColor := ColorNormalMode
	switch f.Mode {
	case ModeInsert:
		modeColor = ColorInsertMode
	case ModeCommand:
		modeColor = ColorCommandMode
	}
	mfg, mbg := GetThemeColor(modeColor)
	x := r.drawString(0, y, f.Width, " "+f.Mode.String()+" ", mfg, mbg)

	fileStr := f.Title
	if f.Dirty {
		fileStr += " [+]"
	}
	r.drawString(x+1, y, f.Width, fileStr, fg, bg)

	col := f.Column + 1
	right := fmt.Sprintf("[%d/%d] %d,%d ", f.ActiveTab+1, len(f.Tabs), f.CursorLine+1, col)
	rightX := f.Width - runewidth.StringWidth(right)
	if rightX > x+1 {
		r.drawString(rightX, y, f.Width, right, fg, bg)
	}
}

// drawCommandBar shows the command line in Command mode and the status
// message otherwise.
func (r *Renderer) drawCommandBar(f Frame, y int) {
	if f.Mode == ModeCommand {
		fg, bg := GetThemeColor(ColorDefault)
		r.drawString(0, y, f.Width, f.CommandLine, fg, bg)
		return
	}
	if f.Status.Text == "" {
		return
	}
	color := ColorMessageInfo
	if f.Status.Kind == StatusError {
		color = ColorMessageError
	}
	fg, bg := GetThemeColor(color)
	r.drawString(0, y, f.Width, f.Status.Text, fg, bg)
}
