// Package logger provides a small tagged logger: each instance prefixes its
// lines with a colored component tag and a level marker, so interleaved
// output from different subsystems stays readable.
package logger

import (
	"errors"
	"io"
	"log"
)

const colorReset = "\033[0m"

// Logger construction errors.
var (
	ErrEmptyTag  = errors.New("logger tag is required")
	ErrNilWriter = errors.New("logger writer is required")
)

// Logger writes tagged, leveled log lines to a single destination.
type Logger struct {
	tag    string
	color  string
	logger *log.Logger
}

// New creates a logger that prefixes every line with the given tag in the
// given ANSI color.
func New(tag, color string, out io.Writer) (*Logger, error) {
	if tag == "" {
		return nil, ErrEmptyTag
	}
	if out == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		tag:    tag,
		color:  color,
		logger: log.New(out, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print("INFO", msg)
}

// Warning logs a recoverable anomaly.
func (l *Logger) Warning(msg string) {
	l.print("WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print("ERROR", msg)
}

func (l *Logger) print(level, msg string) {
	l.logger.Printf("%s[%s]%s [%s] %s", l.color, l.tag, colorReset, level, msg)
}
