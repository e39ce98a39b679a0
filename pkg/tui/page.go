// Package tui hosts the Bubble Tea program for the AMAR dashboard.
package tui

// Page identifies one dashboard view. The string ids are the whole route
// surface: anything that does not parse renders the not-found fallback.
type Page int

const (
	PageSetup Page = iota
	PageDashboard
	PageSchedule
	PageMonitoring
	PageProfile
	PageAssistant
	PageEmergency
)

var pageIDs = map[Page]string{
	PageSetup:      "setup",
	PageDashboard:  "dashboard",
	PageSchedule:   "schedule",
	PageMonitoring: "monitoring",
	PageProfile:    "profile",
	PageAssistant:  "assistant",
	PageEmergency:  "emergency",
}

var pageTitles = map[Page]string{
	PageSetup:      "Welcome",
	PageDashboard:  "Dashboard",
	PageSchedule:   "Schedule",
	PageMonitoring: "Monitoring",
	PageProfile:    "Profile",
	PageAssistant:  "Assistant",
	PageEmergency:  "Emergency",
}

// ID returns the route identifier for the page.
func (p Page) ID() string { return pageIDs[p] }

// Title returns the display title for the page.
func (p Page) Title() string { return pageTitles[p] }

// ParsePage resolves a route identifier to its page.
func ParsePage(id string) (Page, bool) {
	for p, pid := range pageIDs {
		if pid == id {
			return p, true
		}
	}
	return 0, false
}

// NavPages is the sidebar order. Exactly one is marked active at a time;
// setup and emergency are reached outside the sidebar.
var NavPages = []Page{PageDashboard, PageSchedule, PageMonitoring, PageProfile, PageAssistant}
