package main

// Handles drawing the splash screen (introduction) that appears when the editor
// starts on a fresh unnamed buffer.

import (
	"github.com/nsf/termbox-go"
)

// drawIntro draws an informational box with version and basic commands in
// the middle of the text area.
func (r *Renderer) drawIntro(f Frame) {
	// Define specific attributes for the intro screen elements.
	const (
		cTitle   = termbox.Attribute(254) | termbox.AttrBold
		cText    = termbox.Attribute(248)
		cVersion = termbox.Attribute(239)
		cKey     = termbox.Attribute(254)
	)

	// List of lines to display in the intro box.
	lines := []struct {
		text string
		fg   termbox.Attribute
	}{
		{"kass", cTitle},
		{Version, cVersion},
		{"", cText},
		{"Small modal text editor", cText},
		{"", cText},
		{" type  :q<Enter>          to exit", cKey},
		{" type  i                  to insert", cKey},
		{" type  :tabnew<Enter>     for a new tab", cKey},
	}

	// Calculate the maximum line length to center the box.
	maxLen := 0
	for _, line := range lines {
		if len(line.text) > maxLen {
			maxLen = len(line.text)
		}
	}
	if maxLen > f.Width || len(lines) > f.TextHeight {
		return
	}

	// Center point for the box, below the tab bar.
	startX := (f.Width - maxLen) / 2
	startY := 1 + (f.TextHeight-len(lines))/2

	_, bg := GetThemeColor(ColorDefault)
	for i, line := range lines {
		// Center each line individually within the box.
		lineX := startX + (maxLen-len(line.text))/2
		r.drawString(lineX, startY+i, f.Width, line.text, line.fg, bg)
	}
}
