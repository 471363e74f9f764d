package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger appends UTC-stamped lines to the session log. A nil *Logger, or one
// whose file could not be opened, drops every line.
type Logger struct {
	mu   sync.Mutex
	file *os.File
}

// LogPath is the session log used when -log is not given: vshell.log in the
// data directory. It is empty when the data directory cannot be created.
func LogPath() string {
	dir, err := DataDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vshell.log")
}

// NewLogger opens path for appending, or LogPath when path is empty.
func NewLogger(path string) *Logger {
	if path == "" {
		path = LogPath()
	}
	if path == "" {
		return &Logger{}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return &Logger{}
	}
	return &Logger{file: f}
}

func (l *Logger) Printf(format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	fmt.Fprintf(l.file, "%s %s\n", time.Now().UTC().Format("2006-01-02T15:04:05Z"), fmt.Sprintf(format, args...))
}

// Close releases the file; later lines are dropped.
func (l *Logger) Close() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}
