package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/tracefire-io/tracefire/internal/actionlog"
	"github.com/tracefire-io/tracefire/internal/models"
)

// DetailView shows one entry with full (unclipped) pretty-printed payloads.
type DetailView struct {
	entry    *models.ModelCall
	viewport viewport.Model
	width    int
	height   int
}

// NewDetailView creates an empty detail view.
func NewDetailView() *DetailView {
	return &DetailView{viewport: viewport.New(80, 24)}
}

// SetSize updates dimensions.
func (d *DetailView) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.viewport.Width = width
	d.viewport.Height = height
}

// SetEntry loads an entry into the viewport, scrolled to the top.
func (d *DetailView) SetEntry(e *models.ModelCall, now time.Time) {
	d.entry = e
	d.viewport.SetContent(d.renderContent(e, now))
	d.viewport.GotoTop()
}

// Entry returns the entry on display, or nil.
func (d *DetailView) Entry() *models.ModelCall {
	return d.entry
}

// Clear drops the entry, returning to the list view.
func (d *DetailView) Clear() {
	d.entry = nil
}

// Active reports whether the detail view is showing an entry.
func (d *DetailView) Active() bool {
	return d.entry != nil
}

// ScrollUp / ScrollDown / PageUp / PageDown move the viewport.
func (d *DetailView) ScrollUp()   { d.viewport.LineUp(1) }
func (d *DetailView) ScrollDown() { d.viewport.LineDown(1) }
func (d *DetailView) PageUp()     { d.viewport.HalfViewUp() }
func (d *DetailView) PageDown()   { d.viewport.HalfViewDown() }

func (d *DetailView) renderContent(e *models.ModelCall, now time.Time) string {
	cat := actionlog.Classify(e.Body.ModelType)
	accent := categoryStyle(cat)

	var b strings.Builder
	if e.Message != "" {
		b.WriteString(e.Message + "\n\n")
	}
	if e.Details != "" {
		b.WriteString(cardMetaStyle.Render(e.Details) + "\n\n")
	}

	if u := actionlog.ExtractTokenUsage(e.Body); u != nil {
		b.WriteString(dateHeaderStyle.Render("Tokens") + "\n")
		b.WriteString(fmt.Sprintf("  prompt %d · completion %d · total %d\n\n", u.Prompt, u.Completion, u.Total))
	}

	b.WriteString(accent.Bold(true).Render("Params") + "\n")
	if params := actionlog.FormatParams(e.Body.Params); params != "" {
		b.WriteString(params + "\n\n")
	} else {
		b.WriteString(cardMetaStyle.Render("(none)") + "\n\n")
	}

	b.WriteString(accent.Bold(true).Render("Response") + "\n")
	if resp := actionlog.FormatResponse(e.Body.Response); resp != "" {
		b.WriteString(resp + "\n")
	} else {
		b.WriteString(cardMetaStyle.Render("(none)") + "\n")
	}

	return b.String()
}

// View renders the detail view: a fixed info header plus the scrolling
// payload viewport.
func (d *DetailView) View(now time.Time) string {
	if d.entry == nil {
		return ""
	}
	e := d.entry
	cat := actionlog.Classify(e.Body.ModelType)
	accent := categoryStyle(cat)

	name := e.Body.ModelKey
	if name == "" {
		name = cat.String()
	}

	title := fmt.Sprintf("%s %s  %s",
		accent.Render(categoryIcon(cat)),
		lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render(name),
		cardMetaStyle.Render(e.Body.ModelType),
	)
	meta := make([]string, 0, 3)
	if ts := actionlog.RelativeTimeMillis(e.CreatedAt, now); ts != "" {
		meta = append(meta, ts)
	}
	if e.RoomID != "" {
		meta = append(meta, "room "+e.RoomID)
	}
	if e.ID != "" {
		meta = append(meta, e.ID)
	}

	info := title + "\n" +
		cardMetaStyle.Render(strings.Join(meta, " · ")) + "\n" +
		cardMetaStyle.Render(strings.Repeat("─", d.width)) + "\n"

	infoLines := 3
	vpHeight := d.height - infoLines
	if vpHeight < 1 {
		vpHeight = 1
	}
	d.viewport.Height = vpHeight
	d.viewport.Width = d.width

	return info + d.viewport.View()
}
