// Copyright (c) Topohedral. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/topohedral/topolog/config"
	"github.com/topohedral/topolog/tracelog"
)

// colorFlag is a pflag.Value restricted to the three color modes.
type colorFlag string

var _ pflag.Value = (*colorFlag)(nil)

func (c *colorFlag) String() string { return string(*c) }

func (c *colorFlag) Type() string { return "mode" }

func (c *colorFlag) Set(v string) error {
	switch v {
	case config.ColorAuto, config.ColorAlways, config.ColorNever:
		*c = colorFlag(v)
		return nil
	default:
		return fmt.Errorf("must be one of %s, %s, %s", config.ColorAuto, config.ColorAlways, config.ColorNever)
	}
}

// newDemoCommand creates the demo command, which emits one record per level
// through the real filter pipeline so users can see what their TOPO_LOG
// value lets through.
func newDemoCommand() *cobra.Command {
	var target string
	color := colorFlag(config.ColorAuto)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Emit one record per level, honoring " + config.EnvSpec,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			if cfg.Color == "" {
				cfg.Color = string(color)
			}

			s := tracelog.Init(cfg)
			s.Tracef(target, "trace record from topolog demo")
			s.Debugf(target, "debug record from topolog demo")
			s.Infof(target, "info record from topolog demo")
			s.Warnf(target, "warn record from topolog demo")
			s.Errorf(target, "error record from topolog demo")
			return nil
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "demo", "Target name to emit records under")
	cmd.Flags().Var(&color, "color", "Color mode: auto, always or never")
	return cmd
}
