// SPDX-License-Identifier: MIT

package playback

import (
	"maps"

	"github.com/katalvlaran/traverser/core"
	"github.com/katalvlaran/traverser/trace"
)

// Graph returns a deep copy of the working graph.
func (c *Controller) Graph() *core.Graph {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.work.Clone()
}

// FinishedGraph returns a deep copy of the finished snapshot, or nil
// before the last step has been applied.
func (c *Controller) FinishedGraph() *core.Graph {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.finished == nil {
		return nil
	}

	return c.finished.Clone()
}

// Result returns the loaded result.
func (c *Controller) Result() *trace.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.res
}

// Log returns a copy of the trailing log, oldest first.
func (c *Controller) Log() []LogEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]LogEntry, len(c.log))
	copy(out, c.log)

	return out
}

// Index returns the number of steps applied since the last rewind.
func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.index
}

// State returns the playback state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Finished reports whether the last step has been applied.
func (c *Controller) Finished() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state == Finished
}

// TableIndex returns the snapshot index tables should show: the final
// snapshot once Finished, the current index otherwise.
func (c *Controller) TableIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tableIndex()
}

func (c *Controller) tableIndex() int {
	if c.state == Finished {
		return c.res.Final()
	}

	return c.index
}

// Distances returns a copy of the distance map at TableIndex.
func (c *Controller) Distances() map[string]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return maps.Clone(c.res.Distances[c.tableIndex()])
}

// From returns a copy of the predecessor map at TableIndex.
func (c *Controller) From() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return maps.Clone(c.res.From[c.tableIndex()])
}

// Scores returns a copy of the score map at TableIndex, or nil when the
// result carries no scores.
func (c *Controller) Scores() map[string]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.res.HasScores() {
		return nil
	}

	return maps.Clone(c.res.Scores[c.tableIndex()])
}

// PreviewPath reconstructs the start→target path at TableIndex and tags
// it OnPath on a deep copy of the finished snapshot (or of the working
// graph before finishing). ok is false when target is unreachable. The
// controller's state is never changed.
func (c *Controller) PreviewPath(target string) (*core.Graph, trace.Path, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	path, ok := c.res.PathAt(c.tableIndex(), target)
	if !ok {
		return nil, nil, false
	}

	base := c.work
	if c.finished != nil {
		base = c.finished
	}
	g := base.Clone()
	for _, id := range path {
		_ = g.SetState(id, core.OnPath)
	}

	return g, path, true
}
