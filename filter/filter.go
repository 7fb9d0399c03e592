// Copyright (c) Topohedral. All rights reserved.
// Licensed under the MIT License.

// Package filter parses TOPO_LOG-style filter specifications and answers
// whether a (target, level) pair should be logged.
//
// A specification is a comma-separated list of directives:
//
//	target=level,target=level,...
//
// where target is any component name and level is one of trace, debug,
// info, warn, error (case-insensitive). The special target "all" sets the
// fallback level for targets without an exact directive. With no matching
// directive and no "all" fallback, nothing is logged.
//
// Parsing is all-or-nothing: a single malformed directive rejects the whole
// specification, so callers never run with a partially-applied filter.
package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/topohedral/topolog/level"
)

// Wildcard is the reserved target name that matches every target without an
// exact directive of its own.
const Wildcard = "all"

// Directive is a single target=level clause.
type Directive struct {
	Target string
	Min    level.Level
}

// ParseError describes a malformed directive within a filter specification.
type ParseError struct {
	// Directive is the raw clause that failed to parse, as written.
	Directive string
	// Index is the zero-based position of the clause in the specification.
	Index int
	// Err is the underlying cause, e.g. level.ErrUnknownLevel.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("filter: bad directive %q at position %d: %v", e.Directive, e.Index, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Table maps target names (including the reserved Wildcard key) to the
// minimum level enabled for that target. Tables are built once by Parse and
// never mutated afterwards, so they are safe for unbounded concurrent reads.
type Table map[string]level.Level

// Parse builds a Table from a filter specification string.
//
// An empty or blank specification yields an empty table (nothing enabled).
// Directives apply left-to-right; when the same target appears more than
// once, the last occurrence wins. Any malformed directive rejects the whole
// specification with a *ParseError and callers must not use a partial
// result.
func Parse(spec string) (Table, error) {
	table := make(Table)
	if strings.TrimSpace(spec) == "" {
		return table, nil
	}

	for i, clause := range strings.Split(spec, ",") {
		d, err := parseDirective(clause)
		if err != nil {
			return nil, &ParseError{
				Directive: strings.TrimSpace(clause),
				Index:     i,
				Err:       err,
			}
		}
		table[d.Target] = d.Min
	}

	return table, nil
}

// parseDirective parses a single target=level clause with surrounding
// whitespace trimmed from both tokens.
func parseDirective(clause string) (Directive, error) {
	target, lvl, found := strings.Cut(clause, "=")
	if !found {
		return Directive{}, fmt.Errorf("missing %q", "=")
	}
	if strings.Contains(lvl, "=") {
		return Directive{}, fmt.Errorf("more than one %q", "=")
	}

	target = strings.TrimSpace(target)
	if target == "" {
		return Directive{}, fmt.Errorf("empty target")
	}

	min, err := level.Parse(lvl)
	if err != nil {
		return Directive{}, err
	}

	return Directive{Target: target, Min: min}, nil
}

// ShouldLog reports whether a record for the given target at the given
// level is enabled by the table.
//
// An exact target entry always wins; otherwise the Wildcard entry applies;
// otherwise the record is suppressed. The decision is a pure function of
// the table contents.
func (t Table) ShouldLog(target string, lvl level.Level) bool {
	if min, ok := t[target]; ok {
		return lvl.AtLeast(min)
	}
	if min, ok := t[Wildcard]; ok {
		return lvl.AtLeast(min)
	}
	return false
}

// Directives returns the resolved directives sorted by target name, with
// the Wildcard entry (if any) first. Used for display.
func (t Table) Directives() []Directive {
	out := make([]Directive, 0, len(t))
	for target, min := range t {
		out = append(out, Directive{Target: target, Min: min})
	}
	sort.Slice(out, func(i, j int) bool {
		if (out[i].Target == Wildcard) != (out[j].Target == Wildcard) {
			return out[i].Target == Wildcard
		}
		return out[i].Target < out[j].Target
	})
	return out
}
