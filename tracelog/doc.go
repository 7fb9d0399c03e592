// Copyright (c) Topohedral. All rights reserved.
// Licensed under the MIT License.

// Package tracelog is the call-site surface of topolog: leveled, targeted
// log functions backed by a process-wide runtime filter.
//
// # Basic Usage
//
//	// Somewhere early, optionally:
//	tracelog.Init(config.FromEnv())
//
//	// At call sites, a target names the component the record comes from:
//	tracelog.Debugf("net", "dialing %s", addr)
//	tracelog.Errorf("db", "query failed: %v", err)
//
// Explicit Init is not required; the first log call initializes the filter
// state from the TOPO_LOG environment variable. By default nothing is
// printed — records are only emitted for targets enabled by the filter
// specification:
//
//	export TOPO_LOG=all=debug          # everything at debug and above
//	export TOPO_LOG=net=warn,db=trace  # per-target minimum levels
//
// A malformed TOPO_LOG value never breaks the host process: the whole
// specification is rejected, one diagnostic line goes to stderr, and the
// facility stays silent.
//
// # Output
//
// Each emitted record becomes one line on stderr (or a rotating log file,
// see package config):
//
//	[LEVEL] [thread:ID] [file:line] message
//
// # Compiling logging out
//
// Building with the "notrace" tag replaces every log function with an
// empty stub, removing the formatting and filtering work from the binary
// entirely.
package tracelog
