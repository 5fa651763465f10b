package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tracefire-io/tracefire/internal/actionlog"
)

func renderHeader(agentID string, filterIdx, visible, total, width int) string {
	dot := lipgloss.NewStyle().Foreground(colorOrange).Render("●")
	name := lipgloss.NewStyle().Bold(true).Render("tracefire")
	agent := cardMetaStyle.Render(agentID)

	tabs := renderFilterTabs(filterIdx)

	left := fmt.Sprintf(" %s %s %s  %s", dot, name, agent, tabs)
	right := cardMetaStyle.Render(cardCountLabel(visible, total)) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderFilterTabs(active int) string {
	parts := make([]string, 0, len(actionlog.Filters))
	for i, f := range actionlog.Filters {
		if i == active {
			parts = append(parts, activeTabStyle.Render(f.Label()))
		} else {
			parts = append(parts, inactiveTabStyle.Render(f.Label()))
		}
	}
	return strings.Join(parts, tabSepStyle.Render(" | "))
}
