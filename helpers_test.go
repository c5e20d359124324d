package main

import (
	"os"
	"path/filepath"
	"testing"
)

// bufferOf builds a clean buffer holding lines.
func bufferOf(lines ...string) *TextBuffer {
	b := NewTextBuffer("")
	b.lines = make([][]rune, 0, len(lines))
	for _, l := range lines {
		b.lines = append(b.lines, []rune(l))
	}
	if len(b.lines) == 0 {
		b.lines = [][]rune{{}}
	}
	b.synced = b.String()
	return b
}

// editorOf builds a clean tab titled path holding lines.
func editorOf(path string, lines ...string) *Editor {
	e := NewEditor(path)
	e.buffer = bufferOf(lines...)
	e.buffer.path = path
	return e
}

func linesOf(b *TextBuffer) []string {
	out := make([]string, 0, b.LineCount())
	for i := 0; i < b.LineCount(); i++ {
		out = append(out, string(b.Line(i)))
	}
	return out
}

// newTestSession returns a session on a 80x24 terminal with the given tabs,
// the first one active.
func newTestSession(t *testing.T, tabs ...*Editor) *Session {
	t.Helper()
	s := NewSession(SessionOptions{})
	for _, e := range tabs {
		s.tabs.Add(e)
	}
	s.tabs.active = 0
	s.Resize(80, 24)
	return s
}

func typeKeys(s *Session, keys string) {
	for _, r := range keys {
		s.HandleKey(RuneKey(r))
	}
}

func runCommand(s *Session, line string) {
	typeKeys(s, ":")
	typeKeys(s, line)
	s.HandleKey(Key{Code: KeyEnter})
}

func tempPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it
// changes the working directory and restores it when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
