package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/tracefire-io/tracefire/internal/actionlog"
	"github.com/tracefire-io/tracefire/internal/models"
)

type rowKind int

const (
	rowDate rowKind = iota
	rowCard
	rowLoadMore
)

// nearBottomRows is how close (in selectable rows) the cursor must be to the
// end of the list before the delayed reveal kicks in.
const nearBottomRows = 4

type listRow struct {
	kind  rowKind
	label string
	entry *models.ModelCall
}

// CardList renders the date-grouped activity cards with a cursor and a
// line-based scroll window.
type CardList struct {
	rows   []listRow
	cursor int // selectable row index, -1 when empty
	width  int
	height int
	scroll int // first visible rendered line
}

// NewCardList creates an empty card list.
func NewCardList() *CardList {
	return &CardList{cursor: -1}
}

// SetSize updates dimensions.
func (cl *CardList) SetSize(width, height int) {
	cl.width = width
	cl.height = height
}

// SetRows rebuilds the row list from the visible date groups. remaining is
// how many filtered entries sit beyond the visible window; when positive a
// load-more row is appended. The cursor stays near its old position.
func (cl *CardList) SetRows(groups []actionlog.DateGroup, remaining int) {
	rows := make([]listRow, 0, len(groups)*4)
	for _, g := range groups {
		rows = append(rows, listRow{kind: rowDate, label: g.Label})
		for i := range g.Entries {
			rows = append(rows, listRow{kind: rowCard, entry: &g.Entries[i]})
		}
	}
	if remaining > 0 {
		rows = append(rows, listRow{kind: rowLoadMore, label: fmt.Sprintf("↓ Load %d more", remaining)})
	}
	cl.rows = rows
	cl.clampCursor()
}

// ResetCursor jumps back to the first card. Called on filter/query changes.
func (cl *CardList) ResetCursor() {
	cl.cursor = -1
	cl.scroll = 0
	cl.clampCursor()
}

func (cl *CardList) clampCursor() {
	if len(cl.rows) == 0 {
		cl.cursor = -1
		cl.scroll = 0
		return
	}
	if cl.cursor < 0 {
		cl.cursor = 0
	}
	if cl.cursor >= len(cl.rows) {
		cl.cursor = len(cl.rows) - 1
	}
	// Settle on a selectable row, preferring downwards.
	for i := cl.cursor; i < len(cl.rows); i++ {
		if cl.rows[i].kind != rowDate {
			cl.cursor = i
			return
		}
	}
	for i := cl.cursor; i >= 0; i-- {
		if cl.rows[i].kind != rowDate {
			cl.cursor = i
			return
		}
	}
	cl.cursor = -1
}

// MoveUp moves the cursor to the previous selectable row.
func (cl *CardList) MoveUp() {
	for i := cl.cursor - 1; i >= 0; i-- {
		if cl.rows[i].kind != rowDate {
			cl.cursor = i
			return
		}
	}
}

// MoveDown moves the cursor to the next selectable row.
func (cl *CardList) MoveDown() {
	for i := cl.cursor + 1; i < len(cl.rows); i++ {
		if cl.rows[i].kind != rowDate {
			cl.cursor = i
			return
		}
	}
}

// MoveTop jumps to the first selectable row.
func (cl *CardList) MoveTop() {
	cl.cursor = -1
	cl.clampCursor()
}

// MoveBottom jumps to the last selectable row.
func (cl *CardList) MoveBottom() {
	for i := len(cl.rows) - 1; i >= 0; i-- {
		if cl.rows[i].kind != rowDate {
			cl.cursor = i
			return
		}
	}
}

// SelectedEntry returns the entry under the cursor, or nil when the cursor
// sits on the load-more row or the list is empty.
func (cl *CardList) SelectedEntry() *models.ModelCall {
	if cl.cursor < 0 || cl.cursor >= len(cl.rows) {
		return nil
	}
	return cl.rows[cl.cursor].entry
}

// OnLoadMore reports whether the cursor sits on the load-more row.
func (cl *CardList) OnLoadMore() bool {
	return cl.cursor >= 0 && cl.cursor < len(cl.rows) && cl.rows[cl.cursor].kind == rowLoadMore
}

// NearBottom reports whether the cursor is within the reveal threshold of the
// end of the list.
func (cl *CardList) NearBottom() bool {
	if cl.cursor < 0 {
		return false
	}
	below := 0
	for i := cl.cursor + 1; i < len(cl.rows); i++ {
		if cl.rows[i].kind != rowDate {
			below++
		}
	}
	return below < nearBottomRows
}

// View renders the visible window of the card list.
func (cl *CardList) View(now time.Time) string {
	if len(cl.rows) == 0 {
		return ""
	}

	var lines []string
	cursorStart, cursorEnd := 0, 0
	for i, row := range cl.rows {
		block := cl.renderRow(row, i == cl.cursor, now)
		if i == cl.cursor {
			cursorStart = len(lines)
			cursorEnd = len(lines) + len(block) - 1
		}
		lines = append(lines, block...)
	}

	// Keep the cursor block inside the window.
	if cursorStart < cl.scroll {
		cl.scroll = cursorStart
	}
	if cursorEnd >= cl.scroll+cl.height {
		cl.scroll = cursorEnd - cl.height + 1
	}
	if cl.scroll > len(lines)-cl.height {
		cl.scroll = len(lines) - cl.height
	}
	if cl.scroll < 0 {
		cl.scroll = 0
	}

	end := cl.scroll + cl.height
	if end > len(lines) {
		end = len(lines)
	}
	window := lines[cl.scroll:end]

	out := make([]string, len(window))
	copy(out, window)
	if cl.scroll > 0 && len(out) > 0 {
		out[0] = cardMetaStyle.Render("  ▲ more")
	}
	if end < len(lines) && len(out) > 0 {
		out[len(out)-1] = cardMetaStyle.Render("  ▼ more")
	}
	return strings.Join(out, "\n")
}

func (cl *CardList) renderRow(row listRow, selected bool, now time.Time) []string {
	switch row.kind {
	case rowDate:
		return []string{"", dateHeaderStyle.Render(row.label)}
	case rowLoadMore:
		line := "  " + loadMoreStyle.Render(row.label)
		if selected {
			line = selectedItemStyle.Width(cl.width).Render("▍ " + loadMoreStyle.Render(row.label))
		}
		return []string{"", line}
	default:
		return cl.renderCard(row.entry, selected, now)
	}
}

func (cl *CardList) renderCard(e *models.ModelCall, selected bool, now time.Time) []string {
	cat := actionlog.Classify(e.Body.ModelType)
	accent := categoryStyle(cat)

	name := e.Body.ModelKey
	if name == "" {
		name = cat.String()
	}

	meta := []string{e.Body.ModelType}
	if ts := actionlog.RelativeTimeMillis(e.CreatedAt, now); ts != "" {
		meta = append(meta, ts)
	}
	if u := actionlog.ExtractTokenUsage(e.Body); u != nil && u.Total > 0 {
		meta = append(meta, fmt.Sprintf("%d tok", u.Total))
	}

	title := fmt.Sprintf("%s %s  %s",
		accent.Render(categoryIcon(cat)),
		accent.Bold(true).Render(name),
		cardMetaStyle.Render(strings.Join(meta, " · ")),
	)

	lines := make([]string, 0, 5)
	if selected {
		lines = append(lines, selectedItemStyle.Width(cl.width).Render("▍"+title))
	} else {
		lines = append(lines, " "+title)
	}

	if e.Message != "" {
		lines = append(lines, "   "+cardPreviewStyle.Render(cl.clipLine(e.Message)))
	}
	if params := previewText(actionlog.FormatParams(e.Body.Params), actionlog.ParamsPreviewLen); params != "" {
		lines = append(lines, "   "+cardPreviewStyle.Render(cl.clipLine("⇢ "+params)))
	}
	if resp := previewText(actionlog.FormatResponse(e.Body.Response), actionlog.ResponsePreviewLen); resp != "" {
		lines = append(lines, "   "+cardPreviewStyle.Render(cl.clipLine("⇠ "+resp)))
	}
	return lines
}

func (cl *CardList) clipLine(s string) string {
	max := cl.width - 4
	if max < 8 {
		max = 8
	}
	return actionlog.Clip(s, max)
}

// previewText flattens a payload rendering to a single clipped line.
func previewText(s string, max int) string {
	flat := strings.Join(strings.Fields(s), " ")
	return actionlog.Clip(flat, max)
}

// cardCountLabel renders "n of m" for the header.
func cardCountLabel(visible, total int) string {
	if visible >= total {
		return fmt.Sprintf("%d", total)
	}
	return fmt.Sprintf("%d of %d", visible, total)
}
