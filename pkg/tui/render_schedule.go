package tui

import (
	"fmt"
	"strings"

	"github.com/amarlabs/amar/pkg/schedule"
)

// renderSchedule lists the collection sorted by time-of-day ascending.
// sel is the cursor row into the sorted order.
func renderSchedule(entries []schedule.Entry, sel int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Medication Schedule") + "\n\n")

	if len(entries) == 0 {
		b.WriteString(faintStyle.Render("No schedules added yet.") + "\n")
	} else {
		sorted := make([]schedule.Entry, len(entries))
		copy(sorted, entries)
		schedule.SortByTime(sorted)
		for i, e := range sorted {
			marker := "  "
			line := fmt.Sprintf("%s  %s  (Compartment %d)", schedule.FormatTime(e.Time), e.Name, e.Compartment)
			if i == sel {
				marker = "» "
				line = activeStyle.Render(line)
			}
			b.WriteString(marker + line + "\n")
		}
	}

	b.WriteString("\n" + faintStyle.Render("a add · enter edit · d delete · s AI summary"))
	return b.String()
}

// sortedEntryAt returns the entry under the cursor in display order.
func sortedEntryAt(entries []schedule.Entry, sel int) (schedule.Entry, bool) {
	if sel < 0 || sel >= len(entries) {
		return schedule.Entry{}, false
	}
	sorted := make([]schedule.Entry, len(entries))
	copy(sorted, entries)
	schedule.SortByTime(sorted)
	return sorted[sel], true
}
