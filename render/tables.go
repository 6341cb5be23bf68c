// SPDX-License-Identifier: MIT

package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/traverser/playback"
	"github.com/katalvlaran/traverser/trace"
)

// PathTable renders one row per node in nodes order. The A* column is
// present only when scores is non-nil.
func (t Theme) PathTable(nodes []string, dist map[string]int64, from map[string]string, scores map[string]int64) string {
	headers := []string{"Node"}
	if scores != nil {
		headers = append(headers, "A*")
	}
	headers = append(headers, "Min Path", "From")

	tb := t.table(headers...)
	for _, id := range nodes {
		row := []string{id}
		if scores != nil {
			row = append(row, Distance(scoreOf(scores, id)))
		}
		row = append(row, Distance(scoreOf(dist, id)), Predecessor(from, id))
		tb.Row(row...)
	}

	return tb.Render()
}

// StepLog renders the trailing log as (#, State, Node) rows, oldest first.
func (t Theme) StepLog(entries []playback.LogEntry) string {
	tb := t.table("#", "State", "Node")
	for _, e := range entries {
		tb.Row(strconv.Itoa(e.Index), e.Step.Action.String(), e.Step.Node)
	}

	return tb.Render()
}

// Compare summarises several results of the same query side by side.
// weight prices the reported path. Traverse-all results print "-" for
// Reached, Cost and Path.
func (t Theme) Compare(results []*trace.Result, weight func(u, v string) (int64, error)) string {
	tb := t.table("Algorithm", "Steps", "Reached", "Cost", "Path")
	for _, r := range results {
		if r == nil {
			continue
		}
		reached, cost, path := "-", "-", "-"
		if !r.TraverseAll() {
			reached = strconv.FormatBool(r.Reached)
			if p, ok := r.PathTo(r.Goal); ok {
				if c, ok := p.Cost(weight); ok {
					cost = strconv.FormatInt(c, 10)
				}
				path = JoinPath(p)
			}
		}
		tb.Row(r.Algorithm, strconv.Itoa(r.Len()), reached, cost, path)
	}

	return tb.Render()
}

func (t Theme) table(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.Border).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.Header
			}
			return t.Cell
		})
}

func scoreOf(m map[string]int64, id string) int64 {
	if v, ok := m[id]; ok {
		return v
	}

	return trace.Inf
}
