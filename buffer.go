package main

// Line storage for a single document. A TextBuffer owns the lines of runes,
// knows how to read and write its backing file and remembers the content it
// was last synced with so it can report whether it is dirty.

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"syscall"
)

var (
	ErrIsDirectory = errors.New("is a directory")
	ErrPermission  = errors.New("permission denied")
	ErrNoSpace     = errors.New("no space left on device")
)

// DeleteResult tells the caller what DeleteCharBefore did so the cursor can
// be repositioned.
type DeleteResult int

const (
	DeletedNothing DeleteResult = iota // (0,0) or invalid row.
	DeletedChar                        // A character in the same line was removed.
	JoinedPrevious                     // The line was appended to the previous one.
)

// TextBuffer holds the content of one file-backed document.
type TextBuffer struct {
	lines  [][]rune // Never empty; an empty document is one empty line.
	path   string   // Backing file on disk.
	synced string   // Content at the last load or save.
}

// NewTextBuffer returns an empty buffer bound to path.
func NewTextBuffer(path string) *TextBuffer {
	return &TextBuffer{
		lines: [][]rune{{}},
		path:  path,
	}
}

// Path returns the backing file path.
func (b *TextBuffer) Path() string {
	return b.path
}

// LineCount returns the number of lines, always at least one.
func (b *TextBuffer) LineCount() int {
	return len(b.lines)
}

// Line returns the runes of the given row, or nil when the row is out of
// range. The slice is owned by the buffer.
func (b *TextBuffer) Line(row int) []rune {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

// LineLen returns the length of a row in characters.
func (b *TextBuffer) LineLen(row int) int {
	return len(b.Line(row))
}

func (b *TextBuffer) validRow(row int) bool {
	return row >= 0 && row < len(b.lines)
}

// InsertChar puts r at col in the given row. A column at the end of the line
// appends.
func (b *TextBuffer) InsertChar(row, col int, r rune) {
	if !b.validRow(row) {
		return
	}
	line := b.lines[row]
	col = clamp(col, 0, len(line))

	newLine := make([]rune, len(line)+1)
	copy(newLine[:col], line[:col])
	newLine[col] = r
	copy(newLine[col+1:], line[col:])
	b.lines[row] = newLine
}

// DeleteCharBefore removes the character left of (row, col). At column zero
// the row is joined onto the previous one.
func (b *TextBuffer) DeleteCharBefore(row, col int) DeleteResult {
	if !b.validRow(row) {
		return DeletedNothing
	}
	line := b.lines[row]
	col = clamp(col, 0, len(line))

	if col > 0 {
		newLine := make([]rune, 0, len(line)-1)
		newLine = append(newLine, line[:col-1]...)
		newLine = append(newLine, line[col:]...)
		b.lines[row] = newLine
		return DeletedChar
	}
	if row == 0 {
		return DeletedNothing
	}

	prev := b.lines[row-1]
	joined := make([]rune, 0, len(prev)+len(line))
	joined = append(joined, prev...)
	joined = append(joined, line...)
	b.lines[row-1] = joined
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	return JoinedPrevious
}

// DeleteCharAt removes the character under (row, col). Nothing happens past
// the end of the line.
func (b *TextBuffer) DeleteCharAt(row, col int) bool {
	if !b.validRow(row) {
		return false
	}
	line := b.lines[row]
	if col < 0 || col >= len(line) {
		return false
	}
	newLine := make([]rune, 0, len(line)-1)
	newLine = append(newLine, line[:col]...)
	newLine = append(newLine, line[col+1:]...)
	b.lines[row] = newLine
	return true
}

// SplitLine breaks a row in two at col. The suffix becomes row+1.
func (b *TextBuffer) SplitLine(row, col int) {
	if !b.validRow(row) {
		return
	}
	line := b.lines[row]
	col = clamp(col, 0, len(line))

	prefix := make([]rune, col)
	copy(prefix, line[:col])
	suffix := make([]rune, len(line)-col)
	copy(suffix, line[col:])

	newLines := make([][]rune, len(b.lines)+1)
	copy(newLines[:row], b.lines[:row])
	newLines[row] = prefix
	newLines[row+1] = suffix
	copy(newLines[row+2:], b.lines[row+1:])
	b.lines = newLines
}

// InsertLine inserts an empty line at row; row == LineCount appends.
func (b *TextBuffer) InsertLine(row int) {
	if row < 0 || row > len(b.lines) {
		return
	}
	newLines := make([][]rune, len(b.lines)+1)
	copy(newLines[:row], b.lines[:row])
	newLines[row] = []rune{}
	copy(newLines[row+1:], b.lines[row:])
	b.lines = newLines
}

// String joins the lines with newlines. No trailing newline is added.
func (b *TextBuffer) String() string {
	var result strings.Builder
	for i, line := range b.lines {
		result.WriteString(string(line))
		if i < len(b.lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// IsDirty reports whether the content differs from the last load or save.
func (b *TextBuffer) IsDirty() bool {
	return b.String() != b.synced
}

// Load replaces the buffer content with the file at path and binds the
// buffer to it. A missing file yields a single empty line.
func (b *TextBuffer) Load(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		b.path = path
		b.lines = [][]rune{{}}
		b.synced = ""
		return nil
	} else if err != nil {
		return classifyIOError(path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}

	file, err := os.Open(path)
	if err != nil {
		return classifyIOError(path, err)
	}
	defer file.Close()

	lines, err := readLines(file)
	if err != nil {
		return classifyIOError(path, err)
	}
	b.path = path
	b.lines = lines
	b.synced = b.String()
	return nil
}

// readLines splits r on '\n'. A trailing newline produces a trailing empty
// line so that joining with '\n' restores the input.
func readLines(r io.Reader) ([][]rune, error) {
	var lines [][]rune
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}

		trimmed := strings.TrimSuffix(line, "\n")
		if trimmed != line {
			trimmed = strings.TrimSuffix(trimmed, "\r")
		}
		lines = append(lines, []rune(trimmed))

		if err == io.EOF {
			break
		}
	}
	if len(lines) == 0 {
		lines = [][]rune{{}}
	}
	return lines, nil
}

// Save truncates path and writes the buffer to it. On failure the synced
// snapshot is left alone so the buffer stays dirty.
func (b *TextBuffer) Save(path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}

	file, err := os.Create(path)
	if err != nil {
		return classifyIOError(path, err)
	}

	content := b.String()
	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(content); err != nil {
		file.Close()
		return classifyIOError(path, err)
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return classifyIOError(path, err)
	}
	if err := file.Close(); err != nil {
		return classifyIOError(path, err)
	}

	b.path = path
	b.synced = content
	return nil
}

// classifyIOError maps OS errors onto the editor's error kinds.
func classifyIOError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%s: %w", path, ErrPermission)
	case errors.Is(err, syscall.EISDIR):
		return fmt.Errorf("%s: %w", path, ErrIsDirectory)
	case errors.Is(err, syscall.ENOSPC):
		return fmt.Errorf("%s: %w", path, ErrNoSpace)
	}
	return fmt.Errorf("%s: %w", path, err)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
