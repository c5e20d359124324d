package main

// Color palette and theme used by the editor. Maps semantic color names (like
// ColorNormalMode) to specific terminal attributes (foreground and background).

import "github.com/nsf/termbox-go"

// Color represents a pair of foreground and background terminal attributes.
type Color struct {
	Background termbox.Attribute
	Foreground termbox.Attribute
}

// ColorName is an enum-like type for semantic color identifiers.
type ColorName int

const (
	ColorDefault ColorName = iota // Default terminal colors.

	ColorTabBar    // Inactive entries of the tab bar.
	ColorTabActive // The active tab.

	ColorStatusBar       // Main status bar at the bottom.
	ColorNormalMode      // Status bar indicator for Normal mode.
	ColorInsertMode      // Status bar indicator for Insert mode.
	ColorCommandMode     // Status bar indicator for Command mode.
	ColorHighlightedLine // Background for the line where the cursor is.

	ColorGutterLineNumber  // Line numbers in the left gutter.
	ColorGutterCurrentLine // Line number of the cursor line.
	ColorEmptyLineMarker   // The '~' marker for lines beyond EOF.

	ColorMessageInfo  // Informational status message.
	ColorMessageError // Error status message.
)

// Theme maps each ColorName to its actual visual attributes.
var Theme = map[ColorName]Color{
	ColorDefault: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(254)},

	// Tabs
	ColorTabBar:    {Background: termbox.Attribute(236), Foreground: termbox.Attribute(248)},
	ColorTabActive: {Background: termbox.Attribute(250), Foreground: termbox.Attribute(1)},

	// Status bar
	ColorStatusBar:       {Background: termbox.Attribute(250), Foreground: termbox.Attribute(1)},
	ColorNormalMode:      {Background: termbox.Attribute(250), Foreground: termbox.Attribute(1)},
	ColorInsertMode:      {Background: termbox.Attribute(58), Foreground: termbox.Attribute(255)},
	ColorCommandMode:     {Background: termbox.Attribute(30), Foreground: termbox.Attribute(16)},
	ColorHighlightedLine: {Background: termbox.Attribute(235), Foreground: termbox.ColorDefault},

	// Gutter
	ColorGutterLineNumber:  {Background: termbox.ColorDefault, Foreground: termbox.Attribute(244)},
	ColorGutterCurrentLine: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(221)},
	ColorEmptyLineMarker:   {Background: termbox.ColorDefault, Foreground: termbox.Attribute(244)},

	// Command line messages
	ColorMessageInfo:  {Background: termbox.ColorDefault, Foreground: termbox.Attribute(254)},
	ColorMessageError: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(167) | termbox.AttrBold},
}

// GetThemeColor returns the foreground and background attributes for a given semantic name.
func GetThemeColor(name ColorName) (termbox.Attribute, termbox.Attribute) {
	if c, ok := Theme[name]; ok {
		return c.Foreground, c.Background
	}
	// Fallback to default if name is not found.
	return termbox.ColorDefault, termbox.ColorDefault
}
