// SPDX-License-Identifier: MIT

package core

import "fmt"

// State is the per-vertex visualization tag.
//
// Renderers map each tag to a colour; the playback controller is the only
// component that mutates tags, and only on its own working copy.
type State int

const (
	// Clean marks a vertex untouched by the current traversal.
	Clean State = iota
	// Queued marks a discovered vertex waiting in the frontier.
	Queued
	// Visited marks a vertex that has been dequeued/entered.
	Visited
	// Checking marks the neighbor currently being examined.
	Checking
	// Finalized marks a vertex whose distance is treated as settled.
	Finalized
	// OnPath marks a vertex on the reconstructed start→goal path.
	OnPath
)

var stateNames = [...]string{
	Clean:     "clean",
	Queued:    "queued",
	Visited:   "visited",
	Checking:  "checkAdj",
	Finalized: "finalized",
	OnPath:    "path",
}

// String returns the short tag used by step logs ("visited", "checkAdj", ...).
func (s State) String() string {
	if s < Clean || s > OnPath {
		return fmt.Sprintf("State(%d)", int(s))
	}

	return stateNames[s]
}

// Valid reports whether s is one of the declared tags.
func (s State) Valid() bool {
	return s >= Clean && s <= OnPath
}
