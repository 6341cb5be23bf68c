// SPDX-License-Identifier: MIT

// Package render draws traversal state for terminals: the path table
// (Node, A*, Min Path, From), the trailing step log, the graph listing,
// state-coloured node chips and the algorithm comparison summary.
//
// Every function is pure: it reads its arguments and returns a string.
// Unreached vertices print "Inf" for distances and "-" for predecessors.
package render
