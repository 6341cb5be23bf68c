// SPDX-License-Identifier: MIT

package playback

import (
	"fmt"

	"github.com/katalvlaran/traverser/log"
	"github.com/katalvlaran/traverser/trace"
)

// DefaultLogCap is the number of trailing steps kept in the log.
const DefaultLogCap = 30

// Option configures a Controller. Constructors panic on meaningless input.
type Option func(*Controller)

// WithScheduler replaces the real-time scheduler. Panics on nil.
func WithScheduler(s Scheduler) Option {
	if s == nil {
		panic("playback: WithScheduler(nil)")
	}
	return func(c *Controller) { c.sched = s }
}

// WithLogCap sets the trailing log capacity. Panics if n < 1.
func WithLogCap(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("playback: WithLogCap(%d) must be ≥ 1", n))
	}
	return func(c *Controller) { c.logCap = n }
}

// WithSpeed sets the initial tempo.
func WithSpeed(s Speed) Option {
	return func(c *Controller) { c.speed = s }
}

// WithLogger routes transition logs. Panics on nil.
func WithLogger(l log.Logger) Option {
	if l == nil {
		panic("playback: WithLogger(nil)")
	}
	return func(c *Controller) { c.logger = l }
}

// WithOnStep registers a hook run after each applied step.
func WithOnStep(fn func(index int, s trace.Step)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.onStep = fn
		}
	}
}

// WithOnFinish registers a hook run when the last step has been applied.
func WithOnFinish(fn func()) Option {
	return func(c *Controller) {
		if fn != nil {
			c.onFinish = fn
		}
	}
}
