package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Global",
		keys: []helpKey{
			{"q / Ctrl+c", "Quit"},
			{"? / Ctrl+h", "Toggle help"},
			{"r", "Refresh from server"},
		},
	},
	{
		title: "Filtering",
		keys: []helpKey{
			{"1-5", "All / LLM / Transcription / Image / Other"},
			{"h/l ←/→", "Previous / next filter"},
			{"/", "Search (type to filter live)"},
			{"Esc", "Clear search"},
		},
	},
	{
		title: "Activity list",
		keys: []helpKey{
			{"j/k ↑/↓", "Navigate cards"},
			{"g / G", "Jump to top / bottom"},
			{"Enter", "Open detail view / load more"},
			{"x", "Delete entry (with confirm)"},
		},
	},
	{
		title: "Detail view",
		keys: []helpKey{
			{"j/k PgUp/PgDn", "Scroll payloads"},
			{"c", "Copy params to clipboard"},
			{"C", "Copy response to clipboard"},
			{"Esc", "Back to list"},
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(width int) string {
	maxWidth := 60
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	title := overlayTitleStyle.Render("Keyboard Shortcuts")
	sections := make([]string, 0, len(helpSections)*6+3)
	sections = append(sections, title)

	for _, sec := range helpSections {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		sections = append(sections, "", header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(16).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			descCol := lipgloss.NewStyle().
				Foreground(colorDim).
				Render(k.desc)
			sections = append(sections, "  "+keyCol+descCol)
		}
	}

	sections = append(sections, "", lipgloss.NewStyle().Foreground(colorDim).Render("Press Esc or ? to close"))

	content := strings.Join(sections, "\n")
	return overlayStyle.Width(maxWidth).Render(content)
}
