// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the generated graph: nodes, heuristics and edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			g := s.Graph()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, theme.Graph(g))
			fmt.Fprintln(out, theme.Chips(g))
			fmt.Fprintln(out, theme.Legend())
			return nil
		},
	}
}
