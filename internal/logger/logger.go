// Package logger provides the leveled logger used by the huff command.
package logger

import (
	"io"
	"log"
)

// Logger writes leveled, printf-style log lines.
type Logger interface {
	// Infof logs progress, only when verbose.
	Infof(format string, v ...any)
	// Errorf logs a failure.
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l       *log.Logger
	verbose bool
}

// New returns a Logger writing to w.  Infof is a no-op unless verbose is set.
func New(w io.Writer, verbose bool) Logger {
	return &stdLogger{l: log.New(w, "huff: ", log.LstdFlags), verbose: verbose}
}

func (l *stdLogger) Infof(format string, v ...any) {
	if l.verbose {
		l.l.Printf("[INFO] "+format, v...)
	}
}

func (l *stdLogger) Errorf(format string, v ...any) { l.l.Printf("[ERROR] "+format, v...) }
