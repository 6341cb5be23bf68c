// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/traverser/builder"
	"github.com/katalvlaran/traverser/log"
)

// Validate checks ranges and that start/end are labels of a graph of
// GraphSize vertices. Callers that override fields (e.g. from flags)
// should call it again.
func (c *Config) Validate() error {
	if err := c.validateGraph(); err != nil {
		return err
	}

	if err := c.validateGenerator(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateGraph() error {
	if c.GraphSize < builder.MinNodes || c.GraphSize > builder.MaxNodes {
		return fmt.Errorf("%w: graph size %d must be between %d and %d",
			ErrInvalid, c.GraphSize, builder.MinNodes, builder.MaxNodes)
	}

	labels := builder.Labels(builder.LetterIDFn, c.GraphSize)
	if !slices.Contains(labels, c.Start) {
		return fmt.Errorf("%w: start %q is not a label of a %d-node graph", ErrInvalid, c.Start, c.GraphSize)
	}
	if !slices.Contains(labels, c.End) {
		return fmt.Errorf("%w: end %q is not a label of a %d-node graph", ErrInvalid, c.End, c.GraphSize)
	}
	if c.Start == c.End {
		return fmt.Errorf("%w: start and end are both %q", ErrInvalid, c.Start)
	}

	return nil
}

func (c *Config) validateGenerator() error {
	if c.EdgeProbability < 0 || c.EdgeProbability > 1 {
		return fmt.Errorf("%w: edge probability %g not in [0,1]", ErrInvalid, c.EdgeProbability)
	}
	if c.WeightMin < 0 || c.WeightMax < c.WeightMin {
		return fmt.Errorf("%w: weights require 0 ≤ min ≤ max, got %d..%d", ErrInvalid, c.WeightMin, c.WeightMax)
	}

	return nil
}

func (c *Config) validateLogging() error {
	if c.LogCap < 1 {
		return fmt.Errorf("%w: log cap %d must be ≥ 1", ErrInvalid, c.LogCap)
	}
	if c.LogBackend != log.BackendGolog && c.LogBackend != log.BackendLogrus {
		return fmt.Errorf("%w: log backend %q must be %s or %s", ErrInvalid, c.LogBackend, log.BackendGolog, log.BackendLogrus)
	}

	return nil
}
