// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/traverser/playback"
	"github.com/katalvlaran/traverser/trace"
)

func newRunCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play the selected traversal on the real timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			done := make(chan struct{})
			var once sync.Once

			s, err := openSession(
				playback.WithOnStep(func(i int, st trace.Step) {
					if !quiet {
						fmt.Fprintf(out, "%4d  %s\n", i, st)
					}
				}),
				playback.WithOnFinish(func() { once.Do(func() { close(done) }) }),
			)
			if err != nil {
				return err
			}
			ctrl := s.Controller()

			in := s.Inputs()
			fmt.Fprintf(out, "%s %s→%s (%s, run %s)\n", in.Algorithm.Title(), in.Start, goalLabel(in.Goal()), ctrl.Speed(), s.RunID())
			ctrl.Play()

			select {
			case <-done:
			case <-cmd.Context().Done():
				ctrl.Pause()
				return cmd.Context().Err()
			}

			fmt.Fprintln(out, theme.Chips(ctrl.FinishedGraph()))
			fmt.Fprintln(out, theme.PathTable(s.Nodes(), ctrl.Distances(), ctrl.From(), ctrl.Scores()))
			fmt.Fprintln(out, theme.StepLog(ctrl.Log()))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print each step as it is applied")
	return cmd
}

func goalLabel(goal string) string {
	if goal == "" {
		return "*"
	}
	return goal
}
