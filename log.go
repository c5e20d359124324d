package main

// Debug log. Messages are grouped ("Session", "Command", ...), timestamped,
// kept in a bounded in-memory ring and optionally appended to a file.

import (
	"fmt"
	"os"
	"time"
)

// Logger collects debug messages.
type Logger struct {
	messages []string
	max      int    // Capacity of the ring.
	filePath string // Empty disables the log file.
	now      func() time.Time
}

// NewLogger keeps the last capacity messages and appends to filePath when it is
// not empty.
func NewLogger(capacity int, filePath string) *Logger {
	return &Logger{
		max:      max(capacity, 1),
		filePath: filePath,
		now:      time.Now,
	}
}

// Log records msg under group.
func (l *Logger) Log(group, msg string) {
	t := l.now()
	logMsg := fmt.Sprintf("[%02d:%02d:%02d] [%s] %s", t.Hour(), t.Minute(), t.Second(), group, msg)
	l.messages = append(l.messages, logMsg)

	if len(l.messages) > l.max {
		l.messages = l.messages[len(l.messages)-l.max:]
	}

	if l.filePath != "" {
		f, err := os.OpenFile(l.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			f.WriteString(logMsg + "\n")
		}
	}
}

// Messages returns the retained messages, oldest first.
func (l *Logger) Messages() []string {
	return l.messages
}
