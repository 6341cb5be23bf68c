// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStepsCmd() *cobra.Command {
	var table bool
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "Print the full step trace of the selected traversal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			res := s.Result()
			for i, st := range res.Steps {
				fmt.Fprintf(out, "%4d  %-9s %s\n", i+1, st.Action, st.Node)
			}
			fmt.Fprintf(out, "%d steps, reached=%t\n", res.Len(), res.Reached)

			if table {
				i := res.Final()
				var scores map[string]int64
				if res.HasScores() {
					scores = res.Scores[i]
				}
				fmt.Fprintln(out, theme.PathTable(s.Nodes(), res.Distances[i], res.From[i], scores))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&table, "table", false, "Also print the final path table")
	return cmd
}
