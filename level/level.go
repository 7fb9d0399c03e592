// Copyright (c) Topohedral. All rights reserved.
// Licensed under the MIT License.

// Package level defines the five log severity levels used throughout
// topolog and their total ordering.
//
// Levels are ordered by verbosity: Trace is the most verbose, Error the
// least. A level "at least" another means it is as severe or more severe:
//
//	level.Error.AtLeast(level.Warn) // true
//	level.Debug.AtLeast(level.Info) // false
package level

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the severity of a log record.
type Level int

const (
	// Trace is the most verbose level, for fine-grained diagnostics.
	Trace Level = iota
	// Debug is for debugging information.
	Debug
	// Info is for significant events.
	Info
	// Warn is for recoverable issues.
	Warn
	// Error is the least verbose, most severe level.
	Error
)

// ErrUnknownLevel is returned by Parse for tokens that are not one of the
// five canonical level names.
var ErrUnknownLevel = errors.New("unknown log level")

// String returns the canonical lower-case name of the level.
func (l Level) String() string {
	switch l {
	case Trace:
		return "trace"
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Tag returns the upper-case name used in formatted output lines.
func (l Level) Tag() string {
	return strings.ToUpper(l.String())
}

// AtLeast reports whether l is as severe or more severe than min.
func (l Level) AtLeast(min Level) bool {
	return l >= min
}

// Parse converts a level name to a Level. Matching is case-insensitive and
// accepts exactly the five canonical names (trace, debug, info, warn,
// error). Any other token returns ErrUnknownLevel.
func Parse(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return Trace, nil
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warn":
		return Warn, nil
	case "error":
		return Error, nil
	default:
		return Info, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// Levels returns all five levels in verbosity order, most verbose first.
func Levels() []Level {
	return []Level{Trace, Debug, Info, Warn, Error}
}
