// Package logging provides the log service shared by the CLI and the prompt
// engine. A Logger is created once at startup and handed to whoever needs it.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	File       string // log file path; empty disables file output
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	Verbose    bool // emit Debug records
}

// Logger writes timestamped records to a rotating file.
// A nil *Logger is valid and discards everything.
type Logger struct {
	out     *log.Logger
	closer  io.Closer
	verbose bool
}

// New builds a Logger. The log directory is created if needed.
func New(opts Options) (*Logger, error) {
	if opts.File == "" {
		return &Logger{out: log.New(io.Discard, "", 0), verbose: opts.Verbose}, nil
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 5
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = 3
	}
	if opts.MaxAgeDays <= 0 {
		opts.MaxAgeDays = 28
	}
	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB, // megabytes
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays, // days
		Compress:   opts.Compress,
	}
	return &Logger{
		out:     log.New(file, "", log.LstdFlags),
		closer:  file,
		verbose: opts.Verbose,
	}, nil
}

// NewWriter builds a Logger over an arbitrary writer. Used by tests.
func NewWriter(w io.Writer, verbose bool) *Logger {
	return &Logger{out: log.New(w, "", 0), verbose: verbose}
}

// Close releases the log file.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Logger) printf(level, format string, args ...any) {
	if l == nil {
		return
	}
	l.out.Printf("%s %s", level, fmt.Sprintf(format, args...))
}

// Debugf records a message only in verbose mode.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || !l.verbose {
		return
	}
	l.printf("DEBUG", format, args...)
}

// Infof records an informational message.
func (l *Logger) Infof(format string, args ...any) {
	l.printf("INFO", format, args...)
}

// Warnf records a warning.
func (l *Logger) Warnf(format string, args ...any) {
	l.printf("WARN", format, args...)
}

// Errorf records an error.
func (l *Logger) Errorf(format string, args ...any) {
	l.printf("ERROR", format, args...)
}

// Wrap calls fn and records one line with its outcome and duration.
// The result and error are returned untouched.
func Wrap[T any](l *Logger, name string, fn func() (T, error)) (T, error) {
	start := time.Now()
	res, err := fn()
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		l.Errorf("%s failed after %s: %v", name, elapsed, err)
		return res, err
	}
	l.Infof("%s returned %v in %s", name, res, elapsed)
	return res, nil
}
