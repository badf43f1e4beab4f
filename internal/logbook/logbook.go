// internal/logbook/logbook.go
//
// The logbook is the dashboard's session journal. A TUI owns the terminal,
// so nothing can log to stdout; entries go to a file and are mirrored in a
// bounded in-memory ring that the log panel tails on every render without
// touching disk.

package logbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a journal entry.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// ringSize bounds the in-memory entry mirror.
const ringSize = 200

// Logbook journals dashboard activity to a file and an in-memory ring.
type Logbook struct {
	path string

	mu      sync.Mutex
	file    *os.File
	entries []string
	total   int
}

// New creates a logbook writing to the provided path. The file is opened
// once and appended to for the life of the session.
func New(path string) (*Logbook, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Logbook{path: path, file: file}, nil
}

// Path returns the file backing this logbook.
func (l *Logbook) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Close releases the underlying file.
func (l *Logbook) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Append journals a single entry. Write failures are swallowed: the journal
// must never take the dashboard down.
func (l *Logbook) Append(level Level, message string) {
	if l == nil {
		return
	}
	line := fmt.Sprintf("%s %-5s %s",
		time.Now().UTC().Format(time.RFC3339),
		string(level),
		strings.TrimSpace(message),
	)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.total++
	l.entries = append(l.entries, line)
	if len(l.entries) > ringSize {
		l.entries = l.entries[len(l.entries)-ringSize:]
	}
	if l.file != nil {
		_, _ = l.file.WriteString(line + "\n")
	}
}

// Tail returns up to maxLines of the most recent entries along with the
// total number of entries journaled this session.
func (l *Logbook) Tail(maxLines int) ([]string, int) {
	if l == nil || maxLines <= 0 {
		return nil, 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return nil, l.total
	}
	start := 0
	if len(l.entries) > maxLines {
		start = len(l.entries) - maxLines
	}
	lines := make([]string, len(l.entries)-start)
	copy(lines, l.entries[start:])
	return lines, l.total
}

// Info appends an informational entry.
func (l *Logbook) Info(format string, args ...any) {
	l.Append(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn appends a warning entry.
func (l *Logbook) Warn(format string, args ...any) {
	l.Append(LevelWarn, fmt.Sprintf(format, args...))
}

// Error appends an error entry.
func (l *Logbook) Error(format string, args ...any) {
	l.Append(LevelError, fmt.Sprintf(format, args...))
}
