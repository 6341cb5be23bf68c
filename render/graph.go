// SPDX-License-Identifier: MIT

package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/traverser/core"
)

// chipsPerLine bounds the width of a chip block.
const chipsPerLine = 13

// Chips renders every vertex of g as a chip coloured by its state.
func (t Theme) Chips(g *core.Graph) string {
	if g == nil {
		return ""
	}
	ids := g.Vertices()
	lines := make([]string, 0, len(ids)/chipsPerLine+1)
	for i := 0; i < len(ids); i += chipsPerLine {
		end := min(i+chipsPerLine, len(ids))
		row := make([]string, 0, end-i)
		for _, id := range ids[i:end] {
			row = append(row, t.chip(id, g.State(id)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return strings.Join(lines, "\n")
}

// Legend renders one chip per state, labelled by its tag.
func (t Theme) Legend() string {
	row := make([]string, 0, len(t.States))
	for s := core.Clean; s <= core.OnPath; s++ {
		row = append(row, t.chip(s.String(), s))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, row...)
}

// Graph lists the vertices with their heuristics and the edges in
// creation order.
func (t Theme) Graph(g *core.Graph) string {
	if g == nil {
		return ""
	}

	nodes := t.table("Node", "Heuristic", "Degree")
	for _, id := range g.Vertices() {
		deg, _ := g.Degree(id)
		nodes.Row(id, strconv.FormatInt(g.Heuristic(id), 10), strconv.Itoa(deg))
	}

	edges := t.table("Edge", "From", "To", "Weight")
	for _, e := range g.Edges() {
		edges.Row(e.ID, e.From, e.To, strconv.FormatInt(e.Weight, 10))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render("Nodes"), nodes.Render(),
		t.Title.Render("Edges"), edges.Render(),
	)
}
