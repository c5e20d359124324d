package main

// Session is the whole editor state owned by the event loop: the open tabs,
// the input mode, the pending Normal-mode keys, the command line and the
// status message. Command handlers receive the Session explicitly.

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
)

// Mode represents the current input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeCommand // Colon command line
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	}
	return "NORMAL"
}

// StatusKind is the severity of the status message.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusError
)

// Status is the single message shown in the command line area.
type Status struct {
	Kind StatusKind
	Text string
}

// Rows taken by the tab bar, the status bar and the command line.
const chromeHeight = 3

// SessionOptions carries the settings a Session is built with.
type SessionOptions struct {
	Bindings    map[string]Verb      // Command keyword -> verb.
	LineNumbers LineNumberMode       // Gutter style.
	TabWidth    int                  // Spaces inserted by Tab in Insert mode.
	Log         func(string, string) // Debug logging function.
}

// Session holds everything the event loop mutates.
type Session struct {
	tabs        TabSet
	mode        Mode
	pending     []rune // Normal mode key sequence (count + letter).
	commandLine []rune // Includes the leading ':'.
	status      Status
	commands    *CommandDispatcher
	closing     bool
	width       int // Terminal size.
	height      int
	lineNumbers LineNumberMode
	tabWidth    int
	introShown  bool // Splash is visible until the first edit or command.
	log         func(string, string)
}

// NewSession creates a session without any tabs.
func NewSession(opts SessionOptions) *Session {
	if opts.Bindings == nil {
		opts.Bindings = DefaultBindings()
	}
	if opts.TabWidth < 1 {
		opts.TabWidth = 4
	}
	if opts.Log == nil {
		opts.Log = func(string, string) {}
	}
	s := &Session{
		mode:        ModeNormal,
		commands:    NewCommandDispatcher(opts.Bindings),
		lineNumbers: opts.LineNumbers,
		tabWidth:    opts.TabWidth,
		width:       80,
		height:      24,
		log:         opts.Log,
	}
	s.log("Session", "Session initialized")
	return s
}

// Open adds a tab for each path. Without paths a single unnamed tab is
// created.
func (s *Session) Open(paths ...string) error {
	if len(paths) == 0 {
		s.tabs.Add(NewEditor(s.unusedName()))
		s.introShown = true
		s.layout()
		return nil
	}
	for _, path := range paths {
		if err := checkNotDirectory(path); err != nil {
			return err
		}
		e, err := OpenEditor(path)
		if err != nil {
			return err
		}
		s.tabs.Add(e)
		s.log("Session", fmt.Sprintf("Opened %s", path))
	}
	s.tabs.active = 0
	s.layout()
	return nil
}

func (s *Session) Tabs() *TabSet       { return &s.tabs }
func (s *Session) Mode() Mode          { return s.mode }
func (s *Session) Status() Status      { return s.status }
func (s *Session) Closing() bool       { return s.closing }
func (s *Session) CommandLine() string { return string(s.commandLine) }
func (s *Session) Pending() string     { return string(s.pending) }

// Active returns the editor of the active tab.
func (s *Session) Active() *Editor {
	return s.tabs.Active()
}

func (s *Session) setInfo(format string, args ...any) {
	s.status = Status{Kind: StatusInfo, Text: fmt.Sprintf(format, args...)}
}

func (s *Session) setError(format string, args ...any) {
	s.status = Status{Kind: StatusError, Text: fmt.Sprintf(format, args...)}
	s.log("Error", s.status.Text)
}

// Resize records a new terminal size and re-fits the active viewport.
func (s *Session) Resize(width, height int) {
	s.width, s.height = width, height
	s.layout()
}

// textArea returns the rows and columns available to buffer text.
func (s *Session) textArea() (int, int) {
	height := s.height - chromeHeight
	width := s.width
	if e := s.Active(); e != nil {
		width -= gutterWidth(s.lineNumbers, e.Buffer().LineCount())
	}
	return max(height, 1), max(width, 1)
}

// layout re-derives the viewport size of the active tab and keeps the cursor
// visible.
func (s *Session) layout() {
	e := s.Active()
	if e == nil {
		return
	}
	h, w := s.textArea()
	e.Resize(h, w)
}

// gutterWidth is the width of the line number column including one space of
// padding.
func gutterWidth(mode LineNumberMode, lineCount int) int {
	if mode == LineNumbersNone {
		return 0
	}
	return max(len(strconv.Itoa(lineCount)), 3) + 1
}

// unusedName finds the first of unnamed, unnamed-1, unnamed-2, ... that is
// neither on disk nor the title of an open tab.
func (s *Session) unusedName() string {
	name := "unnamed"
	for n := 1; ; n++ {
		_, err := os.Stat(name)
		if errors.Is(err, fs.ErrNotExist) && !s.tabs.HasTitle(name) {
			return name
		}
		name = fmt.Sprintf("unnamed-%d", n)
	}
}

// checkNotDirectory rejects paths that name an existing directory.
func checkNotDirectory(path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}
	return nil
}
