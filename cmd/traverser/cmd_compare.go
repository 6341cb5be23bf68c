// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/traverser/metrics"
	"github.com/katalvlaran/traverser/traversal"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Run all four algorithms on one graph and summarise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			g, in := s.Graph(), s.Inputs()

			results, err := traversal.All(cmd.Context(), g, in.Start, in.Goal())
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}
			for _, r := range results {
				metrics.ObserveTraversal(r.Algorithm, r.Len())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s→%s on %d nodes, %d edges\n",
				in.Start, goalLabel(in.Goal()), g.VertexCount(), g.EdgeCount())
			fmt.Fprintln(cmd.OutOrStdout(), theme.Compare(results, g.Weight))
			return nil
		},
	}
}
