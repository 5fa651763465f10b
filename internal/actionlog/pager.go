package actionlog

// DefaultPageSize is the number of entries revealed per pagination step.
const DefaultPageSize = 15

// Pager tracks how much of the filtered list is visible. The visible count
// grows monotonically via Advance until Reset is called; it never exceeds the
// total. The pending flag gates the delayed "scrolled near bottom" reveal so
// only one reveal can be in flight at a time.
type Pager struct {
	pageSize int
	total    int
	visible  int
	pending  bool
}

// NewPager returns a pager over a list of the given total size. A pageSize
// of zero or less falls back to DefaultPageSize.
func NewPager(pageSize, total int) *Pager {
	p := &Pager{pageSize: pageSize}
	if p.pageSize <= 0 {
		p.pageSize = DefaultPageSize
	}
	p.Reset(total)
	return p
}

// Visible returns how many entries are currently revealed.
func (p *Pager) Visible() int { return p.visible }

// Total returns the filtered total the pager is tracking.
func (p *Pager) Total() int { return p.total }

// HasMore reports whether entries remain beyond the visible prefix.
func (p *Pager) HasMore() bool { return p.visible < p.total }

// Pending reports whether a delayed reveal is in flight.
func (p *Pager) Pending() bool { return p.pending }

// Reset re-targets the pager at a new total and shrinks the visible window
// back to one page. Called whenever the filter or query changes.
func (p *Pager) Reset(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	p.visible = min(p.pageSize, total)
	p.pending = false
}

// Retarget updates the total while keeping the revealed window, used when the
// backing data is refetched without a filter change.
func (p *Pager) Retarget(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	p.visible = min(max(p.visible, p.pageSize), total)
	p.pending = false
}

// Advance reveals one more page immediately, capped at the total. Used by the
// explicit "load more" control.
func (p *Pager) Advance() {
	p.visible = min(p.visible+p.pageSize, p.total)
	p.pending = false
}

// BeginReveal marks a delayed reveal as pending. It returns false when a
// reveal is already in flight or there is nothing left to reveal.
func (p *Pager) BeginReveal() bool {
	if p.pending || !p.HasMore() {
		return false
	}
	p.pending = true
	return true
}

// FinishReveal completes a pending delayed reveal. A no-op unless BeginReveal
// was called first, so a stale timer cannot advance the window twice.
func (p *Pager) FinishReveal() {
	if !p.pending {
		return
	}
	p.Advance()
}
