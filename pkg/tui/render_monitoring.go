package tui

import (
	"fmt"
	"strings"

	"github.com/amarlabs/amar/pkg/history"
)

// Monitoring tab pane identifiers, carried by tab-link events.
const (
	tabDispenseLog = "dispenseLog"
	tabImageLog    = "imageLog"
)

func renderMonitoring(dispense []history.DispenseRecord, images []history.ImageRecord, tab string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Monitoring") + "\n\n")

	tabs := []struct{ id, label string }{
		{tabDispenseLog, "Dispense Log"},
		{tabImageLog, "Image Log"},
	}
	var heads []string
	for _, t := range tabs {
		if t.id == tab {
			heads = append(heads, activeStyle.Render("["+t.label+"]"))
		} else {
			heads = append(heads, faintStyle.Render(" "+t.label+" "))
		}
	}
	b.WriteString(strings.Join(heads, " ") + "\n\n")

	switch tab {
	case tabImageLog:
		if len(images) == 0 {
			b.WriteString(faintStyle.Render("No captures yet.") + "\n")
		}
		for _, img := range images {
			b.WriteString(fmt.Sprintf("▣ %s  %s\n", img.URL, faintStyle.Render(img.Time)))
		}
	default:
		for _, rec := range dispense {
			icon := successStyle.Render("✓")
			switch rec.Status {
			case history.StatusWarning:
				icon = warnStyle.Render("▲")
			case history.StatusError:
				icon = errorStyle.Render("✗")
			}
			b.WriteString(fmt.Sprintf("%s %s  %s\n", icon, rec.Message, faintStyle.Render(rec.Time)))
		}
	}

	b.WriteString("\n" + faintStyle.Render("t switch tab · g AI log analysis"))
	return b.String()
}
