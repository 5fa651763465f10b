package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// confirmMode values.
const (
	confirmNone   = 0
	confirmDelete = 1
)

func renderStatusBar(m *Model, width int) string {
	if m.confirmMode == confirmDelete {
		return renderConfirmBar("Delete this log entry? (y/n)", width)
	}
	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}
	if m.copied != "" {
		return statusBarStyle.Width(width).Render(
			" " + lipgloss.NewStyle().Foreground(colorGreen).Render("Copied "+m.copied))
	}

	left := " " + getKeyHints(m)

	right := ""
	if m.pager != nil && m.pager.Pending() {
		right = m.spinner.View() + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	if m.searching {
		return keyHint("Enter", "apply") + "  " + keyHint("Esc", "clear")
	}
	if m.detail.Active() {
		return keyHint("Esc", "back") + "  " + keyHint("j/k", "scroll") + "  " +
			keyHint("c", "copy params") + "  " + keyHint("C", "copy response") + "  " +
			keyHint("x", "delete")
	}
	return keyHint("q", "quit") + "  " + keyHint("?", "help") + "  " +
		keyHint("j/k", "navigate") + "  " + keyHint("1-5", "filter") + "  " +
		keyHint("/", "search") + "  " + keyHint("Enter", "open") + "  " +
		keyHint("x", "delete") + "  " + keyHint("r", "refresh")
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderConfirmBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorYellow).
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
		Width(width).
		Render(" " + msg)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}
