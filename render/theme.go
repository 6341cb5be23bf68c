// SPDX-License-Identifier: MIT

package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/traverser/core"
)

// Theme holds the styles used by every renderer.
type Theme struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
	Title  lipgloss.Style

	// States maps each vertex tag to its chip style.
	States map[core.State]lipgloss.Style
}

// DefaultTheme returns the stock palette.
func DefaultTheme() Theme {
	chip := lipgloss.NewStyle().Padding(0, 1).Bold(true)

	return Theme{
		Header: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:   lipgloss.NewStyle().Padding(0, 1),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Title:  lipgloss.NewStyle().Bold(true).Underline(true),
		States: map[core.State]lipgloss.Style{
			core.Clean:     chip.Foreground(lipgloss.Color("252")),
			core.Queued:    chip.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("117")),
			core.Visited:   chip.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("221")),
			core.Checking:  chip.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("209")),
			core.Finalized: chip.Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")),
			core.OnPath:    chip.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("78")),
		},
	}
}

// chip renders id in the style of s.
func (t Theme) chip(id string, s core.State) string {
	st, ok := t.States[s]
	if !ok {
		st = t.Cell
	}

	return st.Render(id)
}
