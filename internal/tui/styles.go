package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tracefire-io/tracefire/internal/actionlog"
)

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite   = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim     = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed     = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow  = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorOrange  = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	colorCyan    = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
	colorMagenta = lipgloss.AdaptiveColor{Light: "90", Dark: "213"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})
)

// Tab styles.
var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorWhite)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Card list styles.
var (
	dateHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	cardMetaStyle    = lipgloss.NewStyle().Foreground(colorDim)
	cardPreviewStyle = lipgloss.NewStyle().Foreground(colorDim)
	loadMoreStyle    = lipgloss.NewStyle().Foreground(colorCyan)

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Per-category accents.
var categoryStyles = map[actionlog.Category]lipgloss.Style{
	actionlog.CategoryLLM:           lipgloss.NewStyle().Foreground(colorCyan),
	actionlog.CategoryEmbedding:     lipgloss.NewStyle().Foreground(colorMagenta),
	actionlog.CategoryTranscription: lipgloss.NewStyle().Foreground(colorGreen),
	actionlog.CategoryImage:         lipgloss.NewStyle().Foreground(colorOrange),
	actionlog.CategoryOther:         lipgloss.NewStyle().Foreground(colorYellow),
}

func categoryStyle(c actionlog.Category) lipgloss.Style {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return lipgloss.NewStyle().Foreground(colorDim)
}

func categoryIcon(c actionlog.Category) string {
	switch c {
	case actionlog.CategoryLLM:
		return "◆"
	case actionlog.CategoryEmbedding:
		return "≡"
	case actionlog.CategoryTranscription:
		return "♪"
	case actionlog.CategoryImage:
		return "▣"
	case actionlog.CategoryOther:
		return "●"
	default:
		return "?"
	}
}
