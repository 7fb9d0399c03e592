// Copyright (c) Topohedral. All rights reserved.
// Licensed under the MIT License.

//go:build !notrace

package tracelog

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/topohedral/topolog/level"
	"github.com/topohedral/topolog/metrics"
	"github.com/topohedral/topolog/writer"
)

// Tracef logs a formatted message for target at trace level.
func (s *State) Tracef(target, format string, args ...any) {
	s.emit(level.Trace, target, format, args...)
}

// Debugf logs a formatted message for target at debug level.
func (s *State) Debugf(target, format string, args ...any) {
	s.emit(level.Debug, target, format, args...)
}

// Infof logs a formatted message for target at info level.
func (s *State) Infof(target, format string, args ...any) {
	s.emit(level.Info, target, format, args...)
}

// Warnf logs a formatted message for target at warn level.
func (s *State) Warnf(target, format string, args ...any) {
	s.emit(level.Warn, target, format, args...)
}

// Errorf logs a formatted message for target at error level.
func (s *State) Errorf(target, format string, args ...any) {
	s.emit(level.Error, target, format, args...)
}

// Tracef logs through the process-wide state at trace level.
func Tracef(target, format string, args ...any) {
	Handle().emit(level.Trace, target, format, args...)
}

// Debugf logs through the process-wide state at debug level.
func Debugf(target, format string, args ...any) {
	Handle().emit(level.Debug, target, format, args...)
}

// Infof logs through the process-wide state at info level.
func Infof(target, format string, args ...any) {
	Handle().emit(level.Info, target, format, args...)
}

// Warnf logs through the process-wide state at warn level.
func Warnf(target, format string, args ...any) {
	Handle().emit(level.Warn, target, format, args...)
}

// Errorf logs through the process-wide state at error level.
func Errorf(target, format string, args ...any) {
	Handle().emit(level.Error, target, format, args...)
}

// emit runs the filter decision and, when enabled, formats the record and
// hands it to the writer. It is always called through exactly one exported
// wrapper, so the user's call site sits two frames up.
func (s *State) emit(lvl level.Level, target, format string, args ...any) {
	if !s.table.ShouldLog(target, lvl) {
		metrics.RecordSuppressed(target, lvl)
		return
	}
	metrics.RecordEmitted(target, lvl)

	file := "???"
	line := 0
	if _, f, l, ok := runtime.Caller(2); ok {
		file = filepath.Base(f)
		line = l
	}

	s.out.Write(writer.Record{
		Level:     lvl,
		Target:    target,
		Goroutine: writer.CurrentGoroutine(),
		File:      file,
		Line:      line,
		Message:   fmt.Sprintf(format, args...),
	})
}
