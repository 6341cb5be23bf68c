// SPDX-License-Identifier: MIT

// Package traversal selects one of the traced algorithms by Kind and
// runs it, or runs all of them concurrently for comparison.
package traversal

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/traverser/astar"
	"github.com/katalvlaran/traverser/bfs"
	"github.com/katalvlaran/traverser/core"
	"github.com/katalvlaran/traverser/dfs"
	"github.com/katalvlaran/traverser/dijkstra"
	"github.com/katalvlaran/traverser/trace"
)

// ErrUnknownKind indicates an algorithm name or Kind value with no implementation.
var ErrUnknownKind = errors.New("traversal: unknown algorithm")

// Kind tags the traversal algorithm.
type Kind int

const (
	Dijkstra Kind = iota
	AStar
	BFS
	DFS
)

// Kinds lists every algorithm in display order.
var Kinds = []Kind{Dijkstra, AStar, BFS, DFS}

// String returns the name used by trace.Result.Algorithm and the CLI.
func (k Kind) String() string {
	switch k {
	case Dijkstra:
		return dijkstra.Name
	case AStar:
		return astar.Name
	case BFS:
		return bfs.Name
	case DFS:
		return dfs.Name
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Title returns the human-readable label.
func (k Kind) Title() string {
	switch k {
	case Dijkstra:
		return "Dijkstra"
	case AStar:
		return "A*"
	case BFS:
		return "Breadth-first"
	case DFS:
		return "Depth-first"
	default:
		return k.String()
	}
}

// ParseKind maps a case-insensitive name ("dijkstra", "astar"/"a*",
// "bfs", "dfs") to its Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	case "bfs", "breadth-first":
		return BFS, nil
	case "dfs", "depth-first":
		return DFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// UnmarshalText lets Kind be decoded from configuration.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v

	return nil
}

// MarshalText renders Kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if k < Dijkstra || k > DFS {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}

	return []byte(k.String()), nil
}

// Func is the signature shared by every traced algorithm.
type Func func(g *core.Graph, start, goal string, opts ...trace.Option) (*trace.Result, error)

// Func returns the implementation for k.
func (k Kind) Func() (Func, error) {
	switch k {
	case Dijkstra:
		return dijkstra.Trace, nil
	case AStar:
		return astar.Trace, nil
	case BFS:
		return bfs.Trace, nil
	case DFS:
		return dfs.Trace, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}

// Traverse runs algorithm k. goal == "" selects traverse-all mode.
func Traverse(k Kind, g *core.Graph, start, goal string, opts ...trace.Option) (*trace.Result, error) {
	fn, err := k.Func()
	if err != nil {
		return nil, err
	}

	return fn(g, start, goal, opts...)
}

// All runs every Kind concurrently on g and returns the results in Kinds
// order. The first failure cancels the remaining runs.
//
// g is only read; core.Graph guards reads with its RWMutex.
func All(ctx context.Context, g *core.Graph, start, goal string, opts ...trace.Option) ([]*trace.Result, error) {
	out := make([]*trace.Result, len(Kinds))
	eg, ctx := errgroup.WithContext(ctx)
	runOpts := append(slices.Clip(opts), trace.WithContext(ctx))

	for i, k := range Kinds {
		i, k := i, k
		eg.Go(func() error {
			res, err := Traverse(k, g, start, goal, runOpts...)
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			out[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
