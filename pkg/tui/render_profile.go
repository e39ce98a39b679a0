package tui

import (
	"fmt"
	"strings"

	"github.com/amarlabs/amar/pkg/profile"
)

func renderProfile(p profile.Profile, formView string, editing bool, status string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Profile") + "\n\n")
	b.WriteString(fmt.Sprintf("Patient   %s\n", p.PatientName))
	b.WriteString(fmt.Sprintf("Avatar    %s\n\n", faintStyle.Render(p.AvatarRef())))
	b.WriteString(formView + "\n")
	if status != "" {
		b.WriteString("\n" + successStyle.Render(status) + "\n")
	}
	if editing {
		b.WriteString("\n" + faintStyle.Render("tab next field · enter save · esc cancel"))
	} else {
		b.WriteString("\n" + faintStyle.Render("i edit guardian contact · ctrl+a upload avatar"))
	}
	return b.String()
}

func renderSetup(formView string, err error) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to AMAR") + "\n")
	b.WriteString(faintStyle.Render("Set up the patient profile to continue.") + "\n\n")
	b.WriteString(formView + "\n")
	if err != nil {
		b.WriteString("\n" + errorStyle.Render(err.Error()) + "\n")
	}
	b.WriteString("\n" + faintStyle.Render("tab next field · enter finish setup"))
	return cardStyle.Render(b.String())
}
