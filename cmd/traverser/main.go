// SPDX-License-Identifier: MIT

// Command traverser generates a random weighted graph and traces
// Dijkstra, A*, BFS or DFS over it in the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/traverser/config"
	"github.com/katalvlaran/traverser/log"
	"github.com/katalvlaran/traverser/metrics"
	"github.com/katalvlaran/traverser/render"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

var (
	flagConfig     string
	flagSize       int
	flagStart      string
	flagEnd        string
	flagAlgorithm  string
	flagSpeed      string
	flagAll        bool
	flagSeed       int64
	flagLogLevel   string
	flagLogBackend string
	flagMetrics    bool

	appCfg    *config.Config
	appLogger log.Logger
	theme     = render.DefaultTheme()
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("traverser version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("traverser version %s-dev", version)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "traverser",
		Short:   "Trace shortest-path and search algorithms over random graphs",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return resolveConfig(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !flagMetrics {
				return nil
			}
			return metrics.WriteText(cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "YAML config file (env: TRAVERSER_CONFIG)")
	pf.IntVar(&flagSize, "size", 0, "Number of vertices, 2-52 (env: TRAVERSER_GRAPH_SIZE)")
	pf.StringVar(&flagStart, "start", "", "Start vertex label (env: TRAVERSER_START)")
	pf.StringVar(&flagEnd, "end", "", "End vertex label (env: TRAVERSER_END)")
	pf.StringVarP(&flagAlgorithm, "algorithm", "a", "", "dijkstra|astar|bfs|dfs (env: TRAVERSER_ALGORITHM)")
	pf.StringVar(&flagSpeed, "speed", "", "fast|medium|slow (env: TRAVERSER_SPEED)")
	pf.BoolVar(&flagAll, "all", false, "Traverse the whole graph instead of stopping at the end vertex")
	pf.Int64Var(&flagSeed, "seed", 0, "Generator seed, 0 for time-based (env: TRAVERSER_SEED)")
	pf.StringVar(&flagLogLevel, "log-level", "", "debug|info|warn|error|none (env: TRAVERSER_LOG_LEVEL)")
	pf.StringVar(&flagLogBackend, "log-backend", "", "golog|logrus (env: TRAVERSER_LOG_BACKEND)")
	pf.BoolVar(&flagMetrics, "metrics", false, "Print traverser_* metrics after the command")

	root.AddCommand(newRunCmd())
	root.AddCommand(newStepsCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newPathCmd())
	root.AddCommand(newGraphCmd())

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
