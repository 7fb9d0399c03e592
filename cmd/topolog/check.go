// Copyright (c) Topohedral. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/topohedral/topolog/config"
	"github.com/topohedral/topolog/filter"
)

// newCheckCommand creates the check command, which parses a filter
// specification and prints the resolved table. With no argument it checks
// the current TOPO_LOG value.
func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [spec]",
		Short: "Validate a filter specification and show the resolved table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := os.Getenv(config.EnvSpec)
			if len(args) == 1 {
				spec = args[0]
			}

			table, err := filter.Parse(spec)
			if err != nil {
				return err
			}

			if outputFormat == "json" {
				out := make(map[string]string, len(table))
				for target, min := range table {
					out[target] = min.String()
				}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			if len(table) == 0 {
				fmt.Println("no directives: nothing will be logged")
				return nil
			}
			for _, d := range table.Directives() {
				fmt.Printf("%-16s %s\n", d.Target, d.Min)
			}
			return nil
		},
	}
}
