package main

// Colon command handling. A command line is split into a keyword and an
// argument; the keyword is looked up in a binding table (data, supplied by
// the user config) that yields a Verb, and the Verb selects one of the fixed
// handlers below.

import (
	"fmt"
	"strconv"
	"strings"
)

// Verb identifies a built-in command independently of its keyword.
type Verb int

const (
	VerbEdit Verb = iota
	VerbQuit
	VerbQuitAll
	VerbNewTab
	VerbWrite
	VerbForceQuit
	VerbForceQuitAll
	VerbWriteAll
	VerbWriteQuit
	VerbWriteQuitAll
)

// verbNames are the logical command names used in the user config.
var verbNames = map[string]Verb{
	"edit_file":          VerbEdit,
	"quit":               VerbQuit,
	"quit_all":           VerbQuitAll,
	"new_tab":            VerbNewTab,
	"write":              VerbWrite,
	"force_quit":         VerbForceQuit,
	"force_quit_all":     VerbForceQuitAll,
	"write_all":          VerbWriteAll,
	"write_and_quit":     VerbWriteQuit,
	"write_and_quit_all": VerbWriteQuitAll,
}

// DefaultBindings returns the keywords used when the config names none.
func DefaultBindings() map[string]Verb {
	return map[string]Verb{
		"e":      VerbEdit,
		"q":      VerbQuit,
		"qa":     VerbQuitAll,
		"tabnew": VerbNewTab,
		"w":      VerbWrite,
		"q!":     VerbForceQuit,
		"qa!":    VerbForceQuitAll,
		"wa":     VerbWriteAll,
		"wq":     VerbWriteQuit,
		"wqa":    VerbWriteQuitAll,
	}
}

// Handler runs a command against the session. Setting *closing asks the
// editor to exit; failures are reported through the session status.
type Handler func(s *Session, arg string, closing *bool)

// handlers is the compiled verb -> behavior table.
var handlers = map[Verb]Handler{
	VerbEdit:         editFile,
	VerbQuit:         func(s *Session, arg string, closing *bool) { quit(s, arg, false, closing) },
	VerbForceQuit:    func(s *Session, arg string, closing *bool) { quit(s, arg, true, closing) },
	VerbQuitAll:      func(s *Session, _ string, closing *bool) { quitAll(s, false, closing) },
	VerbForceQuitAll: func(s *Session, _ string, closing *bool) { quitAll(s, true, closing) },
	VerbNewTab:       newTab,
	VerbWrite:        func(s *Session, _ string, _ *bool) { write(s) },
	VerbWriteAll:     func(s *Session, _ string, _ *bool) { writeAll(s) },
	VerbWriteQuit:    writeQuit,
	VerbWriteQuitAll: writeQuitAll,
}

// CommandDispatcher resolves command lines to handlers.
type CommandDispatcher struct {
	bindings map[string]Verb
}

// NewCommandDispatcher copies bindings into a new dispatcher.
func NewCommandDispatcher(bindings map[string]Verb) *CommandDispatcher {
	d := &CommandDispatcher{bindings: make(map[string]Verb, len(bindings))}
	for keyword, verb := range bindings {
		d.bindings[keyword] = verb
	}
	return d
}

// Lookup returns the verb bound to keyword. Matching is exact and
// case-sensitive.
func (d *CommandDispatcher) Lookup(keyword string) (Verb, bool) {
	verb, ok := d.bindings[keyword]
	return verb, ok
}

// ParseCommandLine strips the leading ':' and splits the rest into the
// keyword and the argument string.
func ParseCommandLine(line string) (string, string) {
	line = strings.TrimPrefix(line, ":")
	keyword, arg, _ := strings.Cut(line, " ")
	return keyword, strings.TrimSpace(arg)
}

// Dispatch parses and executes a command line.
func (d *CommandDispatcher) Dispatch(s *Session, line string) {
	keyword, arg := ParseCommandLine(line)
	if keyword == "" {
		return
	}
	s.log("Command", strings.TrimPrefix(line, ":"))

	// A bare number jumps to that line.
	if lineNum, err := strconv.Atoi(keyword); err == nil && arg == "" {
		s.Active().GotoLine(lineNum - 1)
		return
	}

	verb, ok := d.Lookup(keyword)
	if !ok {
		s.setError("Command not found: %s", keyword)
		return
	}

	var closing bool
	handlers[verb](s, arg, &closing)
	if closing {
		s.closing = true
	}
}

// editFile points the active tab at a new file and loads it.
func editFile(s *Session, arg string, _ *bool) {
	if arg == "" {
		s.setError("No file name given")
		return
	}
	if err := checkNotDirectory(arg); err != nil {
		s.setError("Cannot edit a directory: %s", arg)
		return
	}
	if e := s.Active(); e.IsDirty() {
		s.setError("No write since last change in tab %d (%s)", s.tabs.ActiveIndex(), e.Title())
		return
	}
	if err := s.Active().Load(arg); err != nil {
		s.setError("Error opening file: %v", err)
		return
	}
	s.setInfo("Opened: %s", arg)
}

// tabIndex resolves an optional tab index argument; empty means the active
// tab.
func tabIndex(s *Session, arg string) (int, bool) {
	if arg == "" {
		return s.tabs.ActiveIndex(), true
	}
	index, err := strconv.Atoi(arg)
	if err != nil {
		s.setError("Invalid tab index: %s", arg)
		return 0, false
	}
	if !s.tabs.Valid(index) {
		s.setError("No tab at index %d", index)
		return 0, false
	}
	return index, true
}

// quit closes one tab, refusing dirty tabs unless forced.
func quit(s *Session, arg string, force bool, closing *bool) {
	index, ok := tabIndex(s, arg)
	if !ok {
		return
	}
	closeTab(s, index, force, closing)
}

func closeTab(s *Session, index int, force bool, closing *bool) {
	e := s.tabs.At(index)
	if !force && e.IsDirty() {
		s.setError("No write since last change in tab %d (%s)", index, e.Title())
		return
	}
	if err := s.tabs.Remove(index); err != nil {
		s.setError("%v", err)
		return
	}
	s.log("Command", fmt.Sprintf("Closed tab %d (%s)", index, e.Title()))
	if s.tabs.Empty() {
		*closing = true
	}
}

// quitAll closes every tab. Without force nothing is closed when any tab
// has unsaved changes.
func quitAll(s *Session, force bool, closing *bool) {
	if !force {
		for i, e := range s.tabs.Tabs() {
			if e.IsDirty() {
				s.setError("No write since last change in tab %d (%s)", i, e.Title())
				return
			}
		}
	}
	for !s.tabs.Empty() {
		s.tabs.Remove(s.tabs.Len() - 1)
	}
	*closing = true
}

// newTab opens a tab for the given path, or for a fresh unnamed file.
func newTab(s *Session, arg string, _ *bool) {
	if arg == "" {
		name := s.unusedName()
		s.tabs.Add(NewEditor(name))
		s.setInfo("New tab: %s", name)
		return
	}
	if err := checkNotDirectory(arg); err != nil {
		s.setError("Provide a file path, not a directory: %s", arg)
		return
	}
	e, err := OpenEditor(arg)
	if err != nil {
		s.setError("Error opening file: %v", err)
		return
	}
	s.tabs.Add(e)
	s.setInfo("Opened: %s", arg)
}

// write saves the active tab and reports whether it succeeded.
func write(s *Session) bool {
	return writeTab(s, s.tabs.ActiveIndex())
}

func writeTab(s *Session, index int) bool {
	e := s.tabs.At(index)
	if err := e.Save(); err != nil {
		s.setError("Error saving %s: %v", e.Title(), err)
		return false
	}
	s.log("Command", fmt.Sprintf("Wrote %s", e.Path()))
	s.setInfo("\"%s\" written", e.Title())
	return true
}

// writeAll saves every tab in order and stops at the first failure.
func writeAll(s *Session) bool {
	for i, e := range s.tabs.Tabs() {
		if err := e.Save(); err != nil {
			s.setError("Error saving tab %d (%s): %v", i, e.Title(), err)
			return false
		}
	}
	if n := s.tabs.Len(); n == 1 {
		s.setInfo("1 file written")
	} else {
		s.setInfo("%d files written", n)
	}
	return true
}

// writeQuit saves the tab named by the argument (the active one by
// default), then closes it.
func writeQuit(s *Session, arg string, closing *bool) {
	index, ok := tabIndex(s, arg)
	if !ok {
		return
	}
	if !writeTab(s, index) {
		return
	}
	closeTab(s, index, false, closing)
}

// writeQuitAll saves all tabs and closes them when every save succeeded.
func writeQuitAll(s *Session, _ string, closing *bool) {
	if !writeAll(s) {
		return
	}
	quitAll(s, false, closing)
}
