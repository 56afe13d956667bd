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

// keepLines bounds the in-memory tail used by the journal panel.
const keepLines = 64

// Logbook records what happened during a session: submissions, edits and
// navigation. Entries are appended to a text file when a path is given and
// always kept in a short in-memory tail so the panel can redraw every tick
// without touching the disk.
type Logbook struct {
	path  string
	now   func() time.Time
	mu    sync.Mutex
	lines []string
	total int
}

// New creates a logbook that appends to path. An empty path keeps entries
// in memory only.
func New(path string) (*Logbook, error) {
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	return &Logbook{path: path, now: time.Now}, nil
}

// Path returns the file backing this logbook.
func (l *Logbook) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Append records a single entry.
func (l *Logbook) Append(level Level, message string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	line := fmt.Sprintf("%s %-5s %s",
		l.now().Format("15:04:05"),
		string(level),
		strings.TrimSpace(message),
	)
	l.lines = append(l.lines, line)
	if len(l.lines) > keepLines {
		l.lines = l.lines[len(l.lines)-keepLines:]
	}
	l.total++
	if l.path == "" {
		return
	}
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer file.Close()
	stamp := l.now().UTC().Format(time.RFC3339)
	_, _ = fmt.Fprintf(file, "%s %-5s %s\n", stamp, string(level), strings.TrimSpace(message))
}

// Tail returns up to maxLines of the most recent entries of this session
// together with the number of entries written so far.
func (l *Logbook) Tail(maxLines int) ([]string, int) {
	if l == nil {
		return nil, 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if maxLines <= 0 || len(l.lines) == 0 {
		return nil, l.total
	}
	start := 0
	if len(l.lines) > maxLines {
		start = len(l.lines) - maxLines
	}
	out := make([]string, len(l.lines)-start)
	copy(out, l.lines[start:])
	return out, l.total
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
