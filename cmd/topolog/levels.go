// Copyright (c) Topohedral. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/topohedral/topolog/level"
)

// newLevelsCommand creates the levels command, which lists the five levels
// in verbosity order (most verbose first).
func newLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List log levels in verbosity order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, 5)
			for _, l := range level.Levels() {
				names = append(names, l.String())
			}

			if outputFormat == "json" {
				data, err := json.Marshal(names)
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}
