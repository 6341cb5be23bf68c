// SPDX-License-Identifier: MIT

package render

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/traverser/trace"
)

// Distance formats d, printing "Inf" for trace.Inf.
func Distance(d int64) string {
	if d == trace.Inf {
		return "Inf"
	}

	return strconv.FormatInt(d, 10)
}

// Predecessor returns from[id], or "-" when id has none.
func Predecessor(from map[string]string, id string) string {
	if p, ok := from[id]; ok && p != "" {
		return p
	}

	return "-"
}

// JoinPath renders "A → B → C".
func JoinPath(p trace.Path) string {
	return strings.Join(p, " → ")
}
