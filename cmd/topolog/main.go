// Copyright (c) Topohedral. All rights reserved.
// Licensed under the MIT License.

// The topolog command inspects and exercises TOPO_LOG filter
// specifications: validating them, listing the known levels, and emitting
// demo records through the real filter pipeline.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/topohedral/topolog/version"
)

var outputFormat string

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "topolog",
		Short:         "Inspect TOPO_LOG filter specifications",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format (json)")

	root.AddCommand(newCheckCommand())
	root.AddCommand(newLevelsCommand())
	root.AddCommand(newDemoCommand())
	root.AddCommand(version.NewCommand(version.New("topolog"), &outputFormat))

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
