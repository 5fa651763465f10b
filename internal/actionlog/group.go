package actionlog

import (
	"time"

	"github.com/tracefire-io/tracefire/internal/models"
)

// dateLabelFormat renders a calendar-date group header.
const dateLabelFormat = "Monday, January 2, 2006"

// DateGroup is one calendar date's worth of entries, in input sub-order.
type DateGroup struct {
	Label   string
	Entries []models.ModelCall
}

// GroupByDate partitions entries by the calendar date of their creation time.
// Group order follows the first-seen order of entries in the input, which is
// expected to already be time-ordered. Entries without a timestamp fall into
// an "Undated" group.
func GroupByDate(entries []models.ModelCall) []DateGroup {
	var groups []DateGroup
	index := make(map[string]int)

	for _, e := range entries {
		label := "Undated"
		if e.CreatedAt > 0 {
			label = time.UnixMilli(e.CreatedAt).Local().Format(dateLabelFormat)
		}

		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, DateGroup{Label: label})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}

	return groups
}
