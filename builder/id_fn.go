// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// LetterIDFn maps 0..25 to "A".."Z" and 26..51 to "a".."z".
// Lexical order of the labels equals index order.
// Panics if idx is outside [0, 51].
func LetterIDFn(idx int) string {
	switch {
	case idx >= 0 && idx < 26:
		return string(rune('A' + idx))
	case idx >= 26 && idx < MaxNodes:
		return string(rune('a' + idx - 26))
	default:
		panic(fmt.Sprintf("LetterIDFn: idx must be in [0,%d], got %d", MaxNodes-1, idx))
	}
}

// SymbolNumberIDFn returns prefix + zero-padded two-digit index, e.g.
// "v00", "v01", so that lexical order equals index order.
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		if idx < 10 {
			return prefix + "0" + strconv.Itoa(idx)
		}
		return prefix + strconv.Itoa(idx)
	}
}

// Labels returns the first n labels of fn in index order.
func Labels(fn IDFn, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fn(i)
	}

	return out
}

// WithLetterIDs sets the ID scheme to LetterIDFn.
func WithLetterIDs() Option {
	return WithIDScheme(LetterIDFn)
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("v") → "v00","v01",...
func WithSymbNumb(prefix string) Option {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}
