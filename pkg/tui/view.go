package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss/v2"
)

// View rebuilds the whole screen from the current state snapshot.
func (m Model) View() string {
	p := m.svc.State.Profile()

	// setup runs full screen with no sidebar
	if m.router.Current() == PageSetup {
		return renderSetup(m.setupForm.View(), m.setupErr) + "\n" + m.statusLine()
	}

	var content string
	if id, ok := m.router.NotFound(); ok {
		content = renderNotFound(id)
	} else {
		switch m.router.Current() {
		case PageDashboard:
			content = renderDashboard(p, m.svc.State.Adherence(), m.svc.State.Pillbox(), time.Now().Hour())
		case PageSchedule:
			content = renderSchedule(m.svc.State.Schedule(), m.sel)
		case PageMonitoring:
			content = renderMonitoring(m.svc.State.DispenseLog(), m.svc.State.ImageLog(), m.monitorTab)
		case PageProfile:
			content = renderProfile(p, m.profileForm.View(), m.profileEditing, m.profileStatus)
		case PageAssistant:
			content = renderAssistant(m.svc.State.Chat(), m.chatBusy, m.spin.View(), m.chatInput.View(), m.mdRender, m.width)
		case PageEmergency:
			content = renderEmergency(p, m.emergencyAt)
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, renderSidebar(p, m.router.Current()), "   ", content)
	if overlay := m.overlayView(); overlay != "" {
		body += "\n\n" + overlay
	}
	return body + "\n" + m.statusLine()
}

// overlayView renders the active overlay. The loading indicator shows while
// any assistant call is in flight and takes precedence over modal views.
func (m Model) overlayView() string {
	if m.loading() {
		return panelStyle.Render(m.spin.View() + " Contacting assistant...")
	}
	switch m.modal.visible {
	case modalSchedule:
		title := "Add New Schedule"
		if m.modal.mode == formEdit {
			title = "Edit Schedule"
		}
		body := titleStyle.Render(title) + "\n\n" + m.modal.form.View()
		if m.modal.formErr != nil {
			body += "\n\n" + errorStyle.Render(m.modal.formErr.Error())
		}
		body += "\n\n" + faintStyle.Render("tab next field · enter save · esc cancel")
		return panelStyle.Render(body)
	case modalAIResult:
		content := m.modal.aiBody
		if m.mdRender != nil {
			content = m.mdRender(content)
		}
		return panelStyle.Render(titleStyle.Render("✨ "+m.modal.aiTitle) + "\n\n" + content + "\n\n" + faintStyle.Render("enter close"))
	case modalConfirmDelete:
		return panelStyle.Render("Delete this schedule entry?\n\n" + faintStyle.Render("y delete · n keep"))
	}
	return ""
}

func (m Model) statusLine() string {
	if m.status == "" {
		return ""
	}
	return faintStyle.Render(m.status)
}
