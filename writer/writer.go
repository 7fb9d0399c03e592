// Copyright (c) Topohedral. All rights reserved.
// Licensed under the MIT License.

// Package writer formats approved log records and writes them to their
// destination.
//
// Each record becomes one line of the form:
//
//	[LEVEL] [thread:ID] [file:line] message
//
// with the level tag colored by severity when the destination is a
// terminal. The destination is stderr by default, or a size-rotated log
// file when a path is configured.
package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/topohedral/topolog/config"
	"github.com/topohedral/topolog/level"
)

// ANSI escape codes for level coloring.
const (
	ansiReset   = "\033[0m"
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiBlue    = "\033[34m"
	ansiMagenta = "\033[35m"
)

// Log file rotation defaults, applied when Options leaves them zero.
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 7
)

// Record is a single log event that has already passed filtering.
type Record struct {
	Level     level.Level
	Target    string
	Goroutine uint64
	File      string
	Line      int
	Message   string
}

// Options configures a Writer.
type Options struct {
	// Out overrides the destination entirely (used in tests). When set,
	// File is ignored and color defaults to off unless forced.
	Out io.Writer

	// File, when non-empty, sends output to a rotating log file at this
	// path instead of stderr.
	File string

	// Color is one of config.ColorAuto, config.ColorAlways,
	// config.ColorNever. Empty means auto: color iff the destination is a
	// terminal.
	Color string

	// Rotation settings for File output. Zero values take the defaults.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Writer serializes formatted records onto a single destination. Lines
// from concurrent callers never interleave.
type Writer struct {
	mu    sync.Mutex
	out   io.Writer
	color bool
}

// New creates a Writer from the given options.
//
// With a File path set, output goes to a lumberjack-rotated file; the
// directory is created if needed, falling back to stderr (with a warning
// on stderr) when it cannot be. Color in auto mode is enabled only when
// the destination is a terminal, so file output is never colored.
func New(opts Options) *Writer {
	out, isTerm := destination(opts)

	colored := false
	switch opts.Color {
	case config.ColorAlways:
		colored = true
	case config.ColorNever:
		colored = false
	default:
		colored = isTerm
	}

	return &Writer{out: out, color: colored}
}

// destination resolves the output writer and whether it is a terminal.
func destination(opts Options) (io.Writer, bool) {
	if opts.Out != nil {
		f, ok := opts.Out.(*os.File)
		return opts.Out, ok && term.IsTerminal(int(f.Fd()))
	}

	if opts.File != "" {
		if dir := filepath.Dir(opts.File); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				fmt.Fprintf(os.Stderr, "topolog: cannot create log directory %q: %v, falling back to stderr\n", dir, err)
				return os.Stderr, term.IsTerminal(int(os.Stderr.Fd()))
			}
		}

		maxSize := opts.MaxSizeMB
		if maxSize == 0 {
			maxSize = DefaultMaxSizeMB
		}
		maxBackups := opts.MaxBackups
		if maxBackups == 0 {
			maxBackups = DefaultMaxBackups
		}
		maxAge := opts.MaxAgeDays
		if maxAge == 0 {
			maxAge = DefaultMaxAgeDays
		}

		return &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			MaxAge:     maxAge,
			Compress:   opts.Compress,
		}, false
	}

	return os.Stderr, term.IsTerminal(int(os.Stderr.Fd()))
}

// Write formats the record and writes it as one line.
func (w *Writer) Write(r Record) {
	line := fmt.Sprintf("[%s] [thread:%d] [%s:%d] %s\n",
		Paint(r.Level, fmt.Sprintf("%-5s", r.Level.Tag()), w.color),
		r.Goroutine, r.File, r.Line, r.Message)

	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = io.WriteString(w.out, line)
}

// Colored reports whether this writer emits ANSI colors.
func (w *Writer) Colored() bool {
	return w.color
}

// Paint wraps s in the ANSI color conventionally used for the given level
// when enabled is true, and returns s unchanged otherwise.
func Paint(l level.Level, s string, enabled bool) string {
	if !enabled {
		return s
	}
	var code string
	switch l {
	case level.Error:
		code = ansiRed
	case level.Warn:
		code = ansiYellow
	case level.Info:
		code = ansiGreen
	case level.Debug:
		code = ansiBlue
	case level.Trace:
		code = ansiMagenta
	default:
		return s
	}
	return code + s + ansiReset
}
