// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/traverser/render"
	"github.com/katalvlaran/traverser/session"
)

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <node>",
		Short: "Preview the start→node path of the finished traversal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			target := args[0]
			if !s.Graph().HasVertex(target) {
				return fmt.Errorf("path: %w: %q", session.ErrUnknownNode, target)
			}

			ctrl := s.Controller()
			drain(ctrl)

			out := cmd.OutOrStdout()
			preview, path, ok := ctrl.PreviewPath(target)
			if !ok {
				fmt.Fprintf(out, "%s: Inf (not reached from %s)\n", target, s.Inputs().Start)
				return nil
			}
			fmt.Fprintf(out, "%s: %s (cost %s)\n", target, render.JoinPath(path), render.Distance(ctrl.Distances()[target]))
			fmt.Fprintln(out, theme.Chips(preview))
			return nil
		},
	}
}
