// SPDX-License-Identifier: MIT

package trace

import (
	"context"
	"fmt"
)

// Option configures a traversal via functional arguments.
// If an Option is invalid (e.g. negative step cap), it is recorded
// internally and surfaced as ErrOptionViolation when the traversal starts.
type Option func(*Options)

// Options holds parameters and callbacks shared by every traversal.
type Options struct {
	// Ctx allows cancellation; checked once per frontier pop.
	Ctx context.Context

	// OnStep is called after each Step is recorded, with its 1-based index.
	OnStep func(index int, s Step)

	// MaxSteps, if > 0, aborts with ErrStepLimit once exceeded.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no-op OnStep hook
//   - no step cap
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnStep:   func(int, Step) {},
		MaxSteps: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a callback run after every recorded step.
func WithOnStep(fn func(index int, s Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithMaxSteps caps the number of recorded steps.
//
//	n > 0: abort with ErrStepLimit beyond n steps
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Resolve applies opts over DefaultOptions and reports any recorded violation.
func Resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
