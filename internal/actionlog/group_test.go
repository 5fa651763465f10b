package actionlog

import (
	"fmt"
	"testing"
	"time"

	"github.com/tracefire-io/tracefire/internal/models"
)

func TestGroupByDatePartitions(t *testing.T) {
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)

	// Three entries on day one, two on day two, one undated.
	var entries []models.ModelCall
	for i := 0; i < 3; i++ {
		entries = append(entries, models.ModelCall{
			ID:        fmt.Sprintf("d1-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour).UnixMilli(),
		})
	}
	for i := 0; i < 2; i++ {
		entries = append(entries, models.ModelCall{
			ID:        fmt.Sprintf("d2-%d", i),
			CreatedAt: base.AddDate(0, 0, 1).Add(time.Duration(i) * time.Hour).UnixMilli(),
		})
	}
	entries = append(entries, models.ModelCall{ID: "undated"})

	groups := GroupByDate(entries)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}

	// No entry dropped or duplicated; concatenation preserves sub-order.
	var flat []string
	for _, g := range groups {
		for _, e := range g.Entries {
			flat = append(flat, e.ID)
		}
	}
	if len(flat) != len(entries) {
		t.Fatalf("groups contain %d entries, want %d", len(flat), len(entries))
	}
	expected := []string{"d1-0", "d1-1", "d1-2", "d2-0", "d2-1", "undated"}
	for i := range expected {
		if flat[i] != expected[i] {
			t.Errorf("flattened[%d] = %s, want %s", i, flat[i], expected[i])
		}
	}

	if groups[2].Label != "Undated" {
		t.Errorf("last group label = %q, want Undated", groups[2].Label)
	}
}

func TestGroupByDateFirstSeenOrder(t *testing.T) {
	day1 := time.Date(2026, 8, 20, 23, 0, 0, 0, time.Local).UnixMilli()
	day2 := time.Date(2026, 8, 21, 1, 0, 0, 0, time.Local).UnixMilli()

	// Interleaved input: group order follows first appearance, and later
	// members still land in their original group.
	entries := []models.ModelCall{
		{ID: "x1", CreatedAt: day2},
		{ID: "x2", CreatedAt: day1},
		{ID: "x3", CreatedAt: day2},
	}

	groups := GroupByDate(entries)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if len(groups[0].Entries) != 2 || groups[0].Entries[0].ID != "x1" || groups[0].Entries[1].ID != "x3" {
		t.Errorf("first group = %v", ids(groups[0].Entries))
	}
	if len(groups[1].Entries) != 1 || groups[1].Entries[0].ID != "x2" {
		t.Errorf("second group = %v", ids(groups[1].Entries))
	}
}

func TestGroupByDateEmpty(t *testing.T) {
	if groups := GroupByDate(nil); len(groups) != 0 {
		t.Errorf("GroupByDate(nil) = %d groups, want 0", len(groups))
	}
}
