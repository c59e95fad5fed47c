package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/viewer.txt"

// Logger keeps every line in memory, echoes it to the console and appends it to a file on disk.
// The console gets the raw line (help text and color dumps stay readable); the file gets a timestamp.
type Logger struct {
	mu    sync.Mutex
	lines []string
	out   io.Writer
	path  string
}

// New returns a Logger that writes to stdout and LogFilePath, creating the logs directory.
func New() *Logger {
	return NewWithOutput(os.Stdout, LogFilePath)
}

// NewWithOutput returns a Logger echoing to out and appending to path. An empty path disables the file;
// a nil out disables the console echo.
func NewWithOutput(out io.Writer, path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{lines: make([]string, 0), out: out, path: path}
}

// Log records one line. Multi-line strings are kept as a single entry.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, line)
	if l.out != nil {
		_, _ = io.WriteString(l.out, line+"\n")
	}
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to a format specifier and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
