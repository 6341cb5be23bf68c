// SPDX-License-Identifier: MIT

package playback

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/traverser/core"
	"github.com/katalvlaran/traverser/log"
	"github.com/katalvlaran/traverser/metrics"
	"github.com/katalvlaran/traverser/trace"
)

// Sentinel errors for Load/New.
var (
	ErrNilGraph  = errors.New("playback: graph is nil")
	ErrNilResult = errors.New("playback: result is nil")
	// ErrForeignResult indicates a result whose steps name vertices absent
	// from the graph it is loaded with.
	ErrForeignResult = errors.New("playback: result does not belong to graph")
	// ErrMalformedResult indicates snapshot slices whose length is not
	// len(Steps)+1.
	ErrMalformedResult = errors.New("playback: result snapshots do not match its steps")
)

// State is the controller's playback state.
type State int

const (
	Idle State = iota
	Playing
	Paused
	Finished
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// LogEntry is one line of the trailing log.
type LogEntry struct {
	Index int // 1-based position of the step in the result
	Step  trace.Step
}

// Controller drives playback of one trace.Result over a working copy of
// its graph.
type Controller struct {
	mu sync.Mutex

	sched    Scheduler
	logger   log.Logger
	logCap   int
	speed    Speed
	onStep   func(int, trace.Step)
	onFinish func()

	saved    *core.Graph // reset snapshot
	work     *core.Graph // tagged working copy
	finished *core.Graph // snapshot taken when the last step is applied
	res      *trace.Result

	index  int
	state  State
	log    []LogEntry
	cancel Cancel
	gen    uint64 // bumped on every cancel; stale ticks compare against it
}

// New returns an Idle controller for res over a private copy of g.
func New(g *core.Graph, res *trace.Result, opts ...Option) (*Controller, error) {
	c := &Controller{
		sched:    RealTime(),
		logger:   log.GetDefaultLogger(),
		logCap:   DefaultLogCap,
		speed:    Fast,
		onStep:   func(int, trace.Step) {},
		onFinish: func() {},
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.Load(g, res); err != nil {
		return nil, err
	}

	return c, nil
}

// Load resets the controller and replaces its graph and result.
// g is deep-copied; the caller keeps ownership of its instance.
func (c *Controller) Load(g *core.Graph, res *trace.Result) error {
	if g == nil {
		return ErrNilGraph
	}
	if res == nil {
		return ErrNilResult
	}
	if err := checkSnapshots(res); err != nil {
		return err
	}
	for i, s := range res.Steps {
		if !g.HasVertex(s.Node) {
			return fmt.Errorf("%w: step %d names %q", ErrForeignResult, i+1, s.Node)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.saved = g.Clone()
	c.res = res
	c.reset()
	c.logger.Debug("playback: loaded %s %s→%q (%d steps)", res.Algorithm, res.Start, res.Goal, res.Len())

	return nil
}

// checkSnapshots verifies every snapshot slice has one entry per step plus
// the initial state; Scores may be nil.
func checkSnapshots(res *trace.Result) error {
	want := res.Len() + 1
	if len(res.Distances) != want {
		return fmt.Errorf("%w: %d distance snapshots for %d steps", ErrMalformedResult, len(res.Distances), res.Len())
	}
	if len(res.From) != want {
		return fmt.Errorf("%w: %d predecessor snapshots for %d steps", ErrMalformedResult, len(res.From), res.Len())
	}
	if res.Scores != nil && len(res.Scores) != want {
		return fmt.Errorf("%w: %d score snapshots for %d steps", ErrMalformedResult, len(res.Scores), res.Len())
	}

	return nil
}

// Step applies the next step. No-op when Finished. From Idle it moves to
// Paused; while Playing the scheduled tick keeps running.
func (c *Controller) Step() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Finished {
		return
	}
	if c.state == Idle {
		c.transition(Paused)
	}
	c.step()
}

// Play starts playback from Idle (or from index 0) and otherwise toggles
// between Playing and Paused. No-op when Finished. Entering Playing
// applies one step immediately.
func (c *Controller) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.state == Finished:
		return
	case c.state == Idle || c.index == 0:
		c.finished = nil
		c.startPlaying()
	case c.state == Playing:
		c.cancelTick()
		c.transition(Paused)
	default:
		c.startPlaying()
	}
}

// Pause stops a Playing controller; otherwise no-op.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Playing {
		return
	}
	c.cancelTick()
	c.transition(Paused)
}

// Reset returns to Idle at index 0 with the saved graph restored.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reset()
}

// SetSpeed changes the tempo; a pending tick is rescheduled at the new delay.
func (c *Controller) SetSpeed(s Speed) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.speed = s
	if c.state == Playing {
		c.cancelTick()
		c.schedule()
	}
}

// Speed returns the current tempo.
func (c *Controller) Speed() Speed {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.speed
}

// reset must be called with mu held.
func (c *Controller) reset() {
	c.cancelTick()
	c.work = c.saved.Clone()
	c.finished = nil
	c.index = 0
	c.log = c.log[:0]
	c.transition(Idle)
}

// startPlaying must be called with mu held.
func (c *Controller) startPlaying() {
	c.transition(Playing)
	c.step()
	if c.state == Playing {
		c.schedule()
	}
}

// step applies res.Steps[index]; must be called with mu held.
func (c *Controller) step() {
	if c.index >= c.res.Len() {
		c.finish()
		return
	}

	// 1) The node checked by the previous step stays on the frontier.
	c.work.ReplaceState(core.Checking, core.Queued)

	// 2) Tag the step's node; vertices were validated by Load.
	s := c.res.Steps[c.index]
	_ = c.work.SetState(s.Node, s.Action.State())
	c.index++

	// 3) Trailing log, oldest evicted first.
	c.log = append(c.log, LogEntry{Index: c.index, Step: s})
	if over := len(c.log) - c.logCap; over > 0 {
		c.log = append(c.log[:0], c.log[over:]...)
	}
	metrics.PlaybackSteps.Inc()
	c.onStep(c.index, s)

	// 4) Last step applied.
	if c.index >= c.res.Len() {
		c.finish()
	}
}

// finish must be called with mu held.
func (c *Controller) finish() {
	c.cancelTick()
	c.finished = c.work.Clone()
	c.index = 0
	c.transition(Finished)
	c.onFinish()
}

// schedule arms the next tick; must be called with mu held.
func (c *Controller) schedule() {
	gen := c.gen
	c.cancel = c.sched.AfterFunc(c.speed.Delay(), func() { c.tick(gen) })
}

// tick is the scheduler callback.
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || c.state != Playing {
		return // cancelled after it fired
	}
	c.cancel = nil
	c.step()
	if c.state == Playing {
		c.schedule()
	}
}

// cancelTick must be called with mu held.
func (c *Controller) cancelTick() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen++
}

func (c *Controller) transition(to State) {
	if c.state == to {
		return
	}
	c.logger.Debug("playback: %s → %s at step %d/%d", c.state, to, c.index, c.res.Len())
	c.state = to
	metrics.PlaybackTransitions.WithLabelValues(to.String()).Inc()
}
