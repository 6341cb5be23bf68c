// SPDX-License-Identifier: MIT

// Package playback replays a precomputed trace.Result onto a working copy
// of its graph under play/pause/step/reset control.
//
// States:
//
//	Idle ──Play──▶ Playing ◀──Play──▶ Paused
//	  ▲  ──Step──▶ Paused               │
//	  │                                 ▼
//	  └──────────Reset─────────── Finished (after the last step)
//
// Applying a step first demotes every node still tagged Checking to
// Queued, then tags the step's node with Action.State(). When the last
// step is applied the controller deep-copies the working graph as the
// finished snapshot, rewinds its index to 0 and becomes Finished; only
// Reset (or Load) leaves Finished.
//
// Timing is delegated to a Scheduler. At most one tick is pending; every
// transition out of Playing cancels it and bumps a generation counter so
// a tick that already fired cannot apply a step.
//
// Concurrency: every exported method and every tick run under one mutex.
// Hooks (WithOnStep, WithOnFinish) run while it is held and must not call
// back into the Controller.
package playback
