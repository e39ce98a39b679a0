package tui

import (
	"fmt"
	"strings"

	"github.com/amarlabs/amar/pkg/profile"
)

// Renderers are pure projections from state snapshots to view fragments;
// the model re-invokes them on every frame so a re-render is always a
// whole-page rebuild.

// renderNotFound is the visible fallback for unknown route ids.
func renderNotFound(id string) string {
	return cardStyle.Render(fmt.Sprintf(
		"%s\n\n%s",
		titleStyle.Render(fmt.Sprintf("Error: Page not found for ID: %s", id)),
		faintStyle.Render("Use 1-5 to return to a known page.")))
}

// renderSidebar lists the navigation controls, marking exactly one active.
func renderSidebar(p profile.Profile, active Page) string {
	var b strings.Builder
	b.WriteString(activeStyle.Render("AMAR") + "\n")
	b.WriteString(faintStyle.Render("Med Assistance Robot") + "\n\n")
	b.WriteString(fmt.Sprintf("(%s) %s\n\n", p.Initials(), p.PatientName))
	for i, page := range NavPages {
		marker := "  "
		label := fmt.Sprintf("%d %s", i+1, page.Title())
		if page == active {
			marker = "» "
			label = activeStyle.Render(label)
		}
		b.WriteString(marker + label + "\n")
	}
	b.WriteString("\n" + errorStyle.Render("e Emergency") + "\n")
	b.WriteString(faintStyle.Render("q Quit"))
	return b.String()
}
