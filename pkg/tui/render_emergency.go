package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/amarlabs/amar/pkg/profile"
)

func renderEmergency(p profile.Profile, activatedAt time.Time) string {
	var b strings.Builder
	b.WriteString(emergencyStyle.Render("EMERGENCY ACTIVE") + "\n\n")
	b.WriteString(fmt.Sprintf("Activated at: %s\n\n", activatedAt.Format("3:04:05 PM")))
	b.WriteString(fmt.Sprintf("Guardian  %s\n", p.GuardianName))
	b.WriteString(fmt.Sprintf("Phone     %s\n\n", p.GuardianPhone))
	b.WriteString(faintStyle.Render("The guardian has been alerted.") + "\n\n")
	b.WriteString(faintStyle.Render("d deactivate and return to dashboard"))
	return b.String()
}
