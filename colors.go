package main

// Utility to print the 256 terminal colors and the editor theme. This is
// useful for debugging themes and checking that the terminal supports the
// expected color range.

import (
	"fmt"
	"os"

	"github.com/nsf/termbox-go"
)

// themeSwatches are the named theme entries shown below the color grid.
var themeSwatches = []struct {
	name  string
	color ColorName
}{
	{"tab bar", ColorTabBar},
	{"active tab", ColorTabActive},
	{"status bar", ColorStatusBar},
	{"normal", ColorNormalMode},
	{"insert", ColorInsertMode},
	{"command", ColorCommandMode},
	{"cursor line", ColorHighlightedLine},
	{"line number", ColorGutterLineNumber},
	{"current number", ColorGutterCurrentLine},
	{"info", ColorMessageInfo},
	{"error", ColorMessageError},
}

// PrintColors draws the palette in the terminal and waits for a key.
func PrintColors() {
	err := termbox.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init termbox: %v\n", err)
		return
	}
	defer termbox.Close()

	// Enable 256-color mode for the output.
	termbox.SetOutputMode(termbox.Output256)

	w, _ := termbox.Size()
	r := NewRenderer(nil)
	r.drawPalette(w)
	r.canvas.Flush()
	// Wait for any key press before closing.
	termbox.PollEvent()
}

// drawPalette paints the 256 colors as a grid followed by one swatch per
// theme entry. It returns the row after the last line drawn.
func (r *Renderer) drawPalette(width int) int {
	r.canvas.Clear(termbox.ColorDefault, termbox.ColorDefault)

	// Adjust grid columns based on terminal width.
	cols := 16
	if width < 64 {
		cols = 8
	}

	for i := 0; i < 256; i++ {
		row := (i / cols) * 2
		col := (i % cols) * 5

		bg := termbox.Attribute(i)
		fg := termbox.ColorWhite
		// Ensure text is readable against light/dark backgrounds.
		if i == 7 || i > 240 {
			fg = termbox.ColorBlack
		}

		str := fmt.Sprintf("%5d", i)
		for j, ch := range str {
			r.canvas.SetCell(col+j, row, ch, fg, bg)
			r.canvas.SetCell(col+j, row+1, ' ', fg, bg)
		}
	}

	y := (256/cols)*2 + 1
	for _, s := range themeSwatches {
		fg, bg := GetThemeColor(s.color)
		r.drawString(0, y, width, fmt.Sprintf(" %-16s", s.name), fg, bg)
		y++
	}

	y++
	r.drawString(0, y, width, "Press any key to exit...", termbox.ColorWhite, termbox.ColorDefault)
	return y + 1
}
