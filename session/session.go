// SPDX-License-Identifier: MIT

// Package session owns the inputs a host can change (graph, algorithm,
// start, end, traverse-all, speed) and keeps the traversal result and
// playback controller consistent with them.
//
// Recompute is the single place a traversal runs. It is triggered by
// NewGraph and by the setters of its dependency set, and only when the
// value actually changes:
//
//	{graph, algorithm, start, end, traverse-all}
//
// Speed is not part of that set.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/traverser/builder"
	"github.com/katalvlaran/traverser/core"
	"github.com/katalvlaran/traverser/log"
	"github.com/katalvlaran/traverser/metrics"
	"github.com/katalvlaran/traverser/playback"
	"github.com/katalvlaran/traverser/trace"
	"github.com/katalvlaran/traverser/traversal"
)

// Sentinel errors.
var (
	// ErrUnknownNode indicates a start or end label absent from the graph.
	ErrUnknownNode = errors.New("session: unknown node")
	// ErrSameEndpoints indicates start == end.
	ErrSameEndpoints = errors.New("session: start and end must differ")
)

// Inputs is the user-selectable part of the dependency set.
type Inputs struct {
	Algorithm   traversal.Kind
	Start       string
	End         string
	TraverseAll bool
}

// Goal returns the traversal goal: End, or "" in traverse-all mode.
func (in Inputs) Goal() string {
	if in.TraverseAll {
		return ""
	}

	return in.End
}

// Session binds a graph, its inputs, the current result and a playback
// controller. It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	size     int
	rng      *rand.Rand
	genOpts  []builder.Option
	playOpts []playback.Option
	logger   log.Logger

	inputs Inputs
	graph  *core.Graph
	result *trace.Result
	ctrl   *playback.Controller

	runID      uuid.UUID
	recomputes int
}

// Option configures a Session.
type Option func(*Session)

// WithSize sets the generated graph size. Panics outside builder bounds.
func WithSize(n int) Option {
	if n < builder.MinNodes || n > builder.MaxNodes {
		panic(fmt.Sprintf("session: WithSize(%d) not in [%d,%d]", n, builder.MinNodes, builder.MaxNodes))
	}
	return func(s *Session) { s.size = n }
}

// WithSeed makes the sequence of generated graphs reproducible.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithGenerator passes extra options to builder.Generate.
func WithGenerator(opts ...builder.Option) Option {
	return func(s *Session) { s.genOpts = append(s.genOpts, opts...) }
}

// WithPlayback passes options to the playback controller.
func WithPlayback(opts ...playback.Option) Option {
	return func(s *Session) { s.playOpts = append(s.playOpts, opts...) }
}

// WithLogger routes recomputation logs. Panics on nil.
func WithLogger(l log.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(s *Session) { s.logger = l }
}

// DefaultSize is the graph size used without WithSize.
const DefaultSize = 38

// New generates the first graph for in and computes its result.
func New(in Inputs, opts ...Option) (*Session, error) {
	s := &Session{
		size:   DefaultSize,
		logger: log.GetDefaultLogger(),
		inputs: in,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if _, err := in.Algorithm.Func(); err != nil {
		return nil, err
	}

	g, err := s.generate()
	if err != nil {
		return nil, err
	}
	s.graph = g

	res, err := s.traverse()
	if err != nil {
		return nil, err
	}
	ctrl, err := playback.New(g, res, append([]playback.Option{playback.WithLogger(s.logger)}, s.playOpts...)...)
	if err != nil {
		return nil, err
	}
	s.ctrl = ctrl
	s.commit(res)

	return s, nil
}

// Recompute reruns the traversal for the current dependency set and
// reloads the controller. It is the explicit recomputation entry point.
func (s *Session) Recompute() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.recompute()
}

func (s *Session) recompute() error {
	res, err := s.traverse()
	if err != nil {
		return err
	}
	if err = s.ctrl.Load(s.graph, res); err != nil {
		return err
	}
	s.commit(res)

	return nil
}

func (s *Session) traverse() (*trace.Result, error) {
	res, err := traversal.Traverse(s.inputs.Algorithm, s.graph, s.inputs.Start, s.inputs.Goal())
	if err != nil {
		return nil, fmt.Errorf("session: %s: %w", s.inputs.Algorithm, err)
	}
	metrics.ObserveTraversal(res.Algorithm, res.Len())

	return res, nil
}

func (s *Session) commit(res *trace.Result) {
	s.result = res
	s.runID = uuid.New()
	s.recomputes++
	s.logger.Info("session: run %s: %s %s→%q, %d steps, reached=%t",
		s.runID, res.Algorithm, res.Start, res.Goal, res.Len(), res.Reached)
}

func (s *Session) generate() (*core.Graph, error) {
	opts := append([]builder.Option{builder.WithRand(s.rng)}, s.genOpts...)
	g, err := builder.Generate(s.size, s.inputs.Start, s.inputs.End, opts...)
	if err != nil {
		return nil, fmt.Errorf("session: generate: %w", err)
	}
	metrics.GraphsGenerated.Inc()

	return g, nil
}

// NewGraph resets playback, generates a fresh graph for the current size,
// start and end, and recomputes.
func (s *Session) NewGraph() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctrl.Reset()
	g, err := s.generate()
	if err != nil {
		return err
	}
	s.graph = g

	return s.recompute()
}

// SetAlgorithm selects the traversal; recomputes only on change.
func (s *Session) SetAlgorithm(k traversal.Kind) error {
	if _, err := k.Func(); err != nil {
		return err
	}

	return s.update(func(in *Inputs) bool {
		if in.Algorithm == k {
			return false
		}
		in.Algorithm = k

		return true
	})
}

// SetStart moves the start node; recomputes only on change.
func (s *Session) SetStart(id string) error {
	return s.update(func(in *Inputs) bool {
		if in.Start == id {
			return false
		}
		in.Start = id

		return true
	})
}

// SetEnd moves the end node; recomputes only on change.
// Heuristics are drawn against the end used at generation, so A* keeps
// its optimality guarantee only for that end until NewGraph is called.
func (s *Session) SetEnd(id string) error {
	return s.update(func(in *Inputs) bool {
		if in.End == id {
			return false
		}
		in.End = id

		return true
	})
}

// SetTraverseAll toggles goal-less exploration; recomputes only on change.
func (s *Session) SetTraverseAll(on bool) error {
	return s.update(func(in *Inputs) bool {
		if in.TraverseAll == on {
			return false
		}
		in.TraverseAll = on

		return true
	})
}

// update applies change to a copy of the inputs, validates it, and on
// success resets playback and recomputes.
func (s *Session) update(change func(*Inputs) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.inputs
	if !change(&next) {
		return nil
	}
	if err := s.validate(next); err != nil {
		return err
	}

	prev := s.inputs
	s.inputs = next
	s.ctrl.Reset()
	if err := s.recompute(); err != nil {
		s.inputs = prev
		return err
	}

	return nil
}

func (s *Session) validate(in Inputs) error {
	for _, id := range []string{in.Start, in.End} {
		if !s.graph.HasVertex(id) {
			return fmt.Errorf("%w: %q", ErrUnknownNode, id)
		}
	}
	if in.Start == in.End {
		return fmt.Errorf("%w: %q", ErrSameEndpoints, in.Start)
	}

	return nil
}

// SetSpeed changes the playback tempo without recomputing.
func (s *Session) SetSpeed(sp playback.Speed) {
	s.ctrl.SetSpeed(sp)
}

// Inputs returns the current inputs.
func (s *Session) Inputs() Inputs {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inputs
}

// Graph returns a deep copy of the current (untagged) graph.
func (s *Session) Graph() *core.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.graph.Clone()
}

// Nodes returns the selectable node labels of the current graph.
func (s *Session) Nodes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.graph.Vertices()
}

// Result returns the current traversal result.
func (s *Session) Result() *trace.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.result
}

// Controller returns the playback controller. It stays the same object
// across recomputations.
func (s *Session) Controller() *playback.Controller {
	return s.ctrl
}

// RunID identifies the current result.
func (s *Session) RunID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.runID
}

// Recomputes returns how many traversals this session has run.
func (s *Session) Recomputes() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.recomputes
}
