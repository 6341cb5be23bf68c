// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/traverser/builder"
	"github.com/katalvlaran/traverser/config"
	"github.com/katalvlaran/traverser/log"
	"github.com/katalvlaran/traverser/playback"
	"github.com/katalvlaran/traverser/session"
	"github.com/katalvlaran/traverser/traversal"
)

// resolveConfig loads the config and applies explicitly set flags on top.
// Flag takes precedence, then env, then config file.
func resolveConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.GraphSize = flagSize
	}
	if flags.Changed("start") {
		cfg.Start = flagStart
	}
	if flags.Changed("end") {
		cfg.End = flagEnd
	}
	if flags.Changed("algorithm") {
		if cfg.Algorithm, err = traversal.ParseKind(flagAlgorithm); err != nil {
			return err
		}
	}
	if flags.Changed("speed") {
		if cfg.Speed, err = playback.ParseSpeed(flagSpeed); err != nil {
			return err
		}
	}
	if flags.Changed("all") {
		cfg.TraverseAll = flagAll
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		if cfg.LogLevel, err = log.ParseLevel(flagLogLevel); err != nil {
			return err
		}
	}
	if flags.Changed("log-backend") {
		cfg.LogBackend = flagLogBackend
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	logger, err := log.New(cfg.LogBackend, cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetDefaultLogger(logger)
	appCfg, appLogger = cfg, logger

	return nil
}

// openSession builds a session from the resolved config. extra options
// are applied to its playback controller after the configured ones.
func openSession(extra ...playback.Option) (*session.Session, error) {
	cfg := appCfg
	playOpts := append([]playback.Option{
		playback.WithLogCap(cfg.LogCap),
		playback.WithSpeed(cfg.Speed),
	}, extra...)

	opts := []session.Option{
		session.WithSize(cfg.GraphSize),
		session.WithLogger(appLogger),
		session.WithGenerator(
			builder.WithEdgeProbability(cfg.EdgeProbability),
			builder.WithWeightRange(cfg.WeightMin, cfg.WeightMax),
		),
		session.WithPlayback(playOpts...),
	}
	if cfg.Seed != 0 {
		opts = append(opts, session.WithSeed(cfg.Seed))
	}

	return session.New(session.Inputs{
		Algorithm:   cfg.Algorithm,
		Start:       cfg.Start,
		End:         cfg.End,
		TraverseAll: cfg.TraverseAll,
	}, opts...)
}

// drain applies every remaining step of ctrl synchronously.
func drain(ctrl *playback.Controller) {
	for !ctrl.Finished() {
		ctrl.Step()
	}
}
