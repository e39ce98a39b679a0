package tui

import (
	"fmt"
	"strings"

	"github.com/amarlabs/amar/pkg/adherence"
	"github.com/amarlabs/amar/pkg/pillbox"
	"github.com/amarlabs/amar/pkg/profile"
)

// Greeting maps the hour of day to the dashboard salutation.
func Greeting(hour int) string {
	switch {
	case hour < 12:
		return "Morning"
	case hour < 18:
		return "Afternoon"
	default:
		return "Evening"
	}
}

const adherenceBarWidth = 20

func renderDashboard(p profile.Profile, series adherence.Series, box []pillbox.Compartment, hour int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Good %s, %s", Greeting(hour), p.PatientName)) + "\n\n")

	b.WriteString("Weekly Adherence\n")
	for i, pct := range series {
		filled := pct * adherenceBarWidth / 100
		bar := strings.Repeat("█", filled) + strings.Repeat("░", adherenceBarWidth-filled)
		b.WriteString(fmt.Sprintf("%s  %s %3d%%\n", adherence.Days[i], successStyle.Render(bar), pct))
	}
	b.WriteString(faintStyle.Render(fmt.Sprintf("average %d%%", series.Average())) + "\n\n")

	b.WriteString("Pill Compartments\n")
	b.WriteString(renderPillStatus(box))
	return b.String()
}

// renderPillStatus lists each compartment with its tri-state classification
// and appends the refill banner when any compartment is low or empty.
func renderPillStatus(box []pillbox.Compartment) string {
	var b strings.Builder
	for _, c := range box {
		style := successStyle
		switch c.Level() {
		case pillbox.Low:
			style = warnStyle
		case pillbox.Empty:
			style = errorStyle
		}
		b.WriteString(fmt.Sprintf("Day %d  %s\n",
			c.ID, style.Render(fmt.Sprintf("%d/%d %s", c.Pills, c.Total, c.Level()))))
	}
	if pillbox.NeedsRefill(box) {
		b.WriteString("\n" + bannerStyle.Render("⚠ Some compartments are running low.") + "\n")
	}
	return b.String()
}
