// Copyright (c) Topohedral. All rights reserved.
// Licensed under the MIT License.

// Package config reads topolog runtime configuration from the environment
// and, optionally, from a YAML file.
//
// The primary configuration source is the TOPO_LOG environment variable
// holding a filter specification:
//
//	export TOPO_LOG=net=warn,db=trace
//	export TOPO_LOG=all=debug
//
// Two further variables tune output: TOPO_LOG_FILE redirects records from
// stderr to a rotating log file, and TOPO_LOG_COLOR forces colored output
// on or off (auto by default).
//
// When both a file and the environment configure the same setting, the
// environment wins.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	// EnvSpec holds the filter specification (target=level,...).
	EnvSpec = "TOPO_LOG"
	// EnvFile redirects output to a rotating log file at the given path.
	EnvFile = "TOPO_LOG_FILE"
	// EnvColor is one of "auto", "always", "never".
	EnvColor = "TOPO_LOG_COLOR"
)

// Color output modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the runtime configuration for the tracing facility.
// The zero value means: no filters (nothing logs), stderr output, auto
// color.
type Config struct {
	// Spec is the raw filter specification string, e.g. "net=warn,db=trace".
	Spec string
	// File, when non-empty, is the path of the rotating log file to write
	// to instead of stderr.
	File string
	// Color is one of ColorAuto, ColorAlways, ColorNever. Empty means auto.
	Color string
}

// FromEnv builds a Config from the TOPO_LOG* environment variables.
func FromEnv() Config {
	return Config{
		Spec:  os.Getenv(EnvSpec),
		File:  os.Getenv(EnvFile),
		Color: strings.ToLower(strings.TrimSpace(os.Getenv(EnvColor))),
	}
}

// fileConfig is the YAML schema of a topolog config file.
type fileConfig struct {
	// Filters maps target names to level names, e.g. {net: warn, db: trace}.
	Filters map[string]string `yaml:"filters"`
	File    string            `yaml:"file"`
	Color   string            `yaml:"color"`
}

// LoadFile reads a YAML config file. The filters map is flattened into a
// specification string with targets in sorted order (a map carries one
// entry per target, so directive order cannot change the outcome).
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return Config{
		Spec:  flattenFilters(fc.Filters),
		File:  fc.File,
		Color: strings.ToLower(strings.TrimSpace(fc.Color)),
	}, nil
}

func flattenFilters(filters map[string]string) string {
	if len(filters) == 0 {
		return ""
	}
	targets := make([]string, 0, len(filters))
	for target := range filters {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	directives := make([]string, 0, len(targets))
	for _, target := range targets {
		directives = append(directives, target+"="+filters[target])
	}
	return strings.Join(directives, ",")
}

// Merge overlays override on top of base: any field set in override wins.
func Merge(base, override Config) Config {
	out := base
	if override.Spec != "" {
		out.Spec = override.Spec
	}
	if override.File != "" {
		out.File = override.File
	}
	if override.Color != "" {
		out.Color = override.Color
	}
	return out
}
