package main

// Input processing engine. It contains the main event loop, the translation
// of termbox events into editor keys and the mode-specific key handlers
// (Normal, Insert, Command).

import (
	"strconv"
	"unicode"

	"github.com/nsf/termbox-go"
)

// KeyCode identifies the keys the editor understands.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyBackspace
	KeyEnter
	KeyEsc
	KeyTab
	KeyBackTab
)

// Modifier flags reported with a key.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Key is a single key press.
type Key struct {
	Code KeyCode
	Ch   rune // Set when Code is KeyRune.
	Mod  Modifier
}

// RuneKey returns the key press for a printable character.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Ch: r}
}

// Largest repeat count accepted in Normal mode.
const maxRepeatCount = 99999

// HandleEvents is the central loop that waits for and processes all user
// input until the session asks to close.
func HandleEvents(s *Session, r *Renderer) {
	w, h := termbox.Size()
	s.Resize(w, h)
	for {
		// Redraw the screen before waiting for the next event.
		r.Draw(s.Frame())
		ev := termbox.PollEvent()

		switch ev.Type {
		case termbox.EventResize:
			s.Resize(ev.Width, ev.Height)
		case termbox.EventKey:
			if key, ok := translateEvent(ev); ok {
				s.HandleKey(key)
			}
		case termbox.EventError:
			s.log("Event", ev.Err.Error())
		}

		if s.Closing() {
			return
		}
	}
}

// translateEvent converts a termbox key event. termbox has no Shift+Tab, so
// Ctrl+P stands in for it.
func translateEvent(ev termbox.Event) (Key, bool) {
	if ev.Type != termbox.EventKey {
		return Key{}, false
	}
	var mod Modifier
	if ev.Mod&termbox.ModAlt != 0 {
		mod |= ModAlt
	}

	if ev.Key == 0 && ev.Ch != 0 {
		return Key{Code: KeyRune, Ch: ev.Ch, Mod: mod}, true
	}

	switch ev.Key {
	case termbox.KeySpace:
		return Key{Code: KeyRune, Ch: ' ', Mod: mod}, true
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return Key{Code: KeyBackspace, Mod: mod}, true
	case termbox.KeyEnter:
		return Key{Code: KeyEnter, Mod: mod}, true
	case termbox.KeyEsc:
		return Key{Code: KeyEsc, Mod: mod}, true
	case termbox.KeyTab:
		return Key{Code: KeyTab, Mod: mod}, true
	case termbox.KeyCtrlP:
		return Key{Code: KeyBackTab, Mod: mod | ModShift}, true
	}
	return Key{}, false
}

// HandleKey feeds one key press to the handler of the current mode and
// keeps the active viewport around the cursor.
func (s *Session) HandleKey(k Key) {
	if s.Active() == nil {
		return
	}
	switch s.mode {
	case ModeNormal:
		s.handleNormalMode(k)
	case ModeInsert:
		s.handleInsertMode(k)
	case ModeCommand:
		s.handleCommandMode(k)
	}
	if !s.closing {
		s.layout()
	}
}

// handleNormalMode collects count-then-letter sequences and runs them.
func (s *Session) handleNormalMode(k Key) {
	switch k.Code {
	case KeyEsc:
		s.pending = s.pending[:0]
		return
	case KeyTab:
		s.tabs.Next()
		s.pending = s.pending[:0]
		return
	case KeyBackTab:
		s.tabs.Prev()
		s.pending = s.pending[:0]
		return
	case KeyRune:
	default:
		return
	}
	if !unicode.IsPrint(k.Ch) {
		return
	}

	s.pending = append(s.pending, k.Ch)
	count, hasCount, letter, complete := parseKeySequence(s.pending)
	if !complete {
		return
	}
	s.pending = s.pending[:0]

	action, ok := normalActions[letter]
	if !ok {
		return
	}
	if !hasCount {
		count = 1
	}
	action(s, count, hasCount)
}

// parseKeySequence splits a pending sequence into its leading digit run and
// the trailing letter. complete is false while only digits have been typed.
func parseKeySequence(seq []rune) (count int, hasCount bool, letter rune, complete bool) {
	if len(seq) == 0 {
		return 0, false, 0, false
	}
	last := seq[len(seq)-1]
	if isDigit(last) {
		return 0, false, 0, false
	}

	digits := string(seq[:len(seq)-1])
	if digits == "" {
		return 1, false, last, true
	}
	for _, r := range digits {
		if !isDigit(r) {
			// Letters only ever arrive last; anything else is discarded.
			return 1, false, last, true
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n > maxRepeatCount {
		n = maxRepeatCount
	}
	return n, true, last, true
}

// isDigit accepts ASCII digits only; other scripts' digits are not counts.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// normalActions maps Normal mode letters to what they do. count is at least
// one; hasCount tells whether the user typed it.
var normalActions = map[rune]func(s *Session, count int, hasCount bool){
	'h': func(s *Session, n int, _ bool) { s.Active().MoveLeft(n) },
	'l': func(s *Session, n int, _ bool) { s.Active().MoveRight(n) },
	'j': func(s *Session, n int, _ bool) { s.Active().MoveDown(n) },
	'k': func(s *Session, n int, _ bool) { s.Active().MoveUp(n) },
	'$': func(s *Session, _ int, _ bool) { s.Active().LineEnd() },
	'x': func(s *Session, n int, _ bool) {
		s.Active().DeleteUnderCursor(n)
		s.introShown = false
	},
	'G': func(s *Session, n int, hasCount bool) {
		e := s.Active()
		if hasCount {
			e.GotoLine(n - 1)
		} else {
			e.GotoLine(e.Buffer().LineCount() - 1)
		}
	},
	'i': func(s *Session, _ int, _ bool) {
		e := s.Active()
		if e.Cursor().Col > 0 {
			e.MoveLeft(1)
		}
		s.enterInsert()
	},
	'a': func(s *Session, _ int, _ bool) { s.enterInsert() },
	'A': func(s *Session, _ int, _ bool) {
		s.Active().LineEnd()
		s.enterInsert()
	},
	'o': func(s *Session, _ int, _ bool) {
		s.Active().OpenLineBelow()
		s.enterInsert()
	},
	':': func(s *Session, _ int, _ bool) {
		s.mode = ModeCommand
		s.commandLine = []rune{':'}
		s.status = Status{}
		s.introShown = false
	},
}

func (s *Session) enterInsert() {
	s.mode = ModeInsert
	s.introShown = false
}

// handleInsertMode types into the active buffer.
func (s *Session) handleInsertMode(k Key) {
	e := s.Active()
	switch k.Code {
	case KeyEsc:
		s.mode = ModeNormal
	case KeyBackspace:
		e.Backspace()
	case KeyEnter:
		e.Newline()
	case KeyTab:
		e.InsertTab(s.tabWidth)
	case KeyRune:
		if unicode.IsPrint(k.Ch) {
			e.InsertRune(k.Ch)
		}
	}
}

// handleCommandMode edits the command line and runs it on Enter.
func (s *Session) handleCommandMode(k Key) {
	switch k.Code {
	case KeyEsc:
		s.leaveCommandMode()
	case KeyEnter:
		line := string(s.commandLine)
		s.commands.Dispatch(s, line)
		s.leaveCommandMode()
	case KeyBackspace:
		if len(s.commandLine) <= 1 {
			s.leaveCommandMode()
			return
		}
		s.commandLine = s.commandLine[:len(s.commandLine)-1]
	case KeyRune:
		if unicode.IsPrint(k.Ch) {
			s.commandLine = append(s.commandLine, k.Ch)
		}
	}
}

func (s *Session) leaveCommandMode() {
	s.mode = ModeNormal
	s.commandLine = s.commandLine[:0]
}
