// Package profile holds the patient profile, the only entity the device
// persists across sessions.
package profile

import (
	"fmt"
	"strings"
	"unicode"
)

// Profile is the singleton patient record created during first-run setup.
// Avatar is a self-contained data reference, not a file path.
type Profile struct {
	PatientName   string `json:"patientName"`
	GuardianName  string `json:"guardianName"`
	GuardianPhone string `json:"guardianPhone"`
	Avatar        string `json:"avatar,omitempty"`
}

// Initialized reports whether setup has completed. Gated pages are only
// reachable once this is true.
func (p Profile) Initialized() bool {
	return p.PatientName != ""
}

// Initials returns the uppercase initials of the patient name, used for the
// avatar placeholder.
func (p Profile) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(p.PatientName) {
		for _, r := range part {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// PlaceholderAvatar builds a self-contained avatar reference from the
// patient initials, used when no image was uploaded.
func (p Profile) PlaceholderAvatar() string {
	return fmt.Sprintf("initials:%s", p.Initials())
}

// AvatarRef returns the stored avatar or the initials placeholder.
func (p Profile) AvatarRef() string {
	if p.Avatar != "" {
		return p.Avatar
	}
	return p.PlaceholderAvatar()
}
