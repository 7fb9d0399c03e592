// Copyright (c) Topohedral. All rights reserved.
// Licensed under the MIT License.

package tracelog

import (
	"fmt"
	"os"
	"sync"

	"github.com/topohedral/topolog/config"
	"github.com/topohedral/topolog/filter"
	"github.com/topohedral/topolog/level"
	"github.com/topohedral/topolog/metrics"
	"github.com/topohedral/topolog/writer"
)

// State holds an immutable filter table and the output writer. A State is
// fixed after construction, so any number of goroutines may query and log
// through it without synchronization.
type State struct {
	table filter.Table
	out   *writer.Writer
}

// New builds a State from the given configuration. A malformed filter
// specification is returned as an error; callers that want the fail-closed
// fallback behavior should use Init or Handle instead.
func New(cfg config.Config) (*State, error) {
	table, err := filter.Parse(cfg.Spec)
	if err != nil {
		return nil, err
	}
	return &State{
		table: table,
		out: writer.New(writer.Options{
			File:  cfg.File,
			Color: cfg.Color,
		}),
	}, nil
}

// NewWithWriter builds a State with an explicit writer. Intended for tests
// and for embedding topolog into hosts that own their output stream.
func NewWithWriter(spec string, out *writer.Writer) (*State, error) {
	table, err := filter.Parse(spec)
	if err != nil {
		return nil, err
	}
	return &State{table: table, out: out}, nil
}

// ShouldLog reports whether a record for target at lvl would be emitted.
// It never fails: with no matching directive the answer is false.
func (s *State) ShouldLog(target string, lvl level.Level) bool {
	return s.table.ShouldLog(target, lvl)
}

var (
	initOnce sync.Once
	shared   *State
)

// Init builds the process-wide filter state from cfg. The first caller
// wins: initialization runs exactly once per process, and later Init or
// Handle calls return the already-built State regardless of their
// arguments. There is no reconfiguration.
//
// A malformed filter specification does not fail: the whole specification
// is rejected, one diagnostic line is written to stderr, and the State is
// built with an empty table so that nothing logs.
func Init(cfg config.Config) *State {
	initOnce.Do(func() { shared = build(cfg) })
	return shared
}

// Handle returns the process-wide filter state, initializing it from the
// environment (TOPO_LOG and friends) on first use. Safe for concurrent
// first-time callers: all of them observe the same finalized State.
func Handle() *State {
	initOnce.Do(func() { shared = build(config.FromEnv()) })
	return shared
}

// build constructs the shared State, absorbing parse errors into the
// fail-closed empty table. Only ever called inside initOnce.
func build(cfg config.Config) *State {
	table, err := filter.Parse(cfg.Spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "topolog: ignoring %s: %v\n", config.EnvSpec, err)
		metrics.RecordParseFailure()
		table = filter.Table{}
	}
	return &State{
		table: table,
		out: writer.New(writer.Options{
			File:  cfg.File,
			Color: cfg.Color,
		}),
	}
}
