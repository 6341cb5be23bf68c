// SPDX-License-Identifier: MIT
// Package: traverser/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w and a "<Method>: " prefix.
//   • Option constructors panic; Generate never does.

package builder

import "errors"

// ErrTooFewVertices indicates size < MinNodes.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrTooManyVertices indicates size > MaxNodes.
var ErrTooManyVertices = errors.New("builder: too many vertices")

// ErrLabelNotInGraph indicates a start or end label outside the first
// size labels of the ID scheme.
var ErrLabelNotInGraph = errors.New("builder: label not in graph")

// ErrSameEndpoints indicates start == end.
var ErrSameEndpoints = errors.New("builder: start and end must differ")

// ErrDuplicateID indicates the ID scheme produced the same label twice.
var ErrDuplicateID = errors.New("builder: id scheme produced a duplicate label")
