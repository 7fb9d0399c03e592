// Copyright (c) Topohedral. All rights reserved.
// Licensed under the MIT License.

//go:build notrace

package tracelog

// This file is selected by the "notrace" build tag. Every log entry point
// compiles to an empty function the compiler can discard, so call sites
// carry no formatting or filtering cost. Filter state construction and
// ShouldLog remain available either way.

// Tracef is a no-op in notrace builds.
func (s *State) Tracef(target, format string, args ...any) {}

// Debugf is a no-op in notrace builds.
func (s *State) Debugf(target, format string, args ...any) {}

// Infof is a no-op in notrace builds.
func (s *State) Infof(target, format string, args ...any) {}

// Warnf is a no-op in notrace builds.
func (s *State) Warnf(target, format string, args ...any) {}

// Errorf is a no-op in notrace builds.
func (s *State) Errorf(target, format string, args ...any) {}

// Tracef is a no-op in notrace builds.
func Tracef(target, format string, args ...any) {}

// Debugf is a no-op in notrace builds.
func Debugf(target, format string, args ...any) {}

// Infof is a no-op in notrace builds.
func Infof(target, format string, args ...any) {}

// Warnf is a no-op in notrace builds.
func Warnf(target, format string, args ...any) {}

// Errorf is a no-op in notrace builds.
func Errorf(target, format string, args ...any) {}
