package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/amarlabs/amar/pkg/app"
	"github.com/amarlabs/amar/pkg/chat"
	"github.com/amarlabs/amar/pkg/schedule"
	"github.com/amarlabs/amar/pkg/state"
)

type fakeAssistant struct {
	prompts []string
	reply   string
}

func (f *fakeAssistant) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, nil
}

func newTestService() *app.Service {
	return &app.Service{
		State:     state.NewSeeded(nil),
		Assistant: &fakeAssistant{reply: "ok"},
		Policy:    schedule.Permissive,
	}
}

func setupProfile(t *testing.T, svc *app.Service) {
	t.Helper()
	if err := svc.Setup("Alex", "Jane", "555-0100"); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

func TestSetupSubmitOpensGate(t *testing.T) {
	svc := &app.Service{State: state.New(nil), Policy: schedule.Permissive}
	m := New(svc, nil)

	if m.router.Current() != PageSetup {
		t.Fatalf("cold start should land on setup, got %v", m.router.Current())
	}

	// empty patient name is rejected and the page stays put
	m.apply(Action{Kind: ActionSubmitSetup})
	if m.setupErr == nil {
		t.Fatalf("expected a setup error for an empty patient name")
	}
	if m.router.Current() != PageSetup {
		t.Fatalf("failed setup moved the page: %v", m.router.Current())
	}

	m.setupForm.SetValues("Alex", "Jane", "555-0100")
	m.apply(Action{Kind: ActionSubmitSetup})
	if m.setupErr != nil {
		t.Fatalf("setup rejected: %v", m.setupErr)
	}
	if m.router.Current() != PageDashboard {
		t.Fatalf("completed setup should land on dashboard, got %v", m.router.Current())
	}
}

func TestColdStartWithProfileSkipsSetup(t *testing.T) {
	svc := newTestService()
	setupProfile(t, svc)
	m := New(svc, nil)
	if m.router.Current() != PageDashboard {
		t.Fatalf("initialized profile should land on dashboard, got %v", m.router.Current())
	}
}

func TestCreateScheduleEntryFlow(t *testing.T) {
	svc := newTestService()
	setupProfile(t, svc)
	m := New(svc, nil)
	before := len(svc.State.Schedule())

	m.apply(Action{Kind: ActionOpenCreate})
	if m.modal.visible != modalSchedule {
		t.Fatalf("create overlay not shown")
	}
	m.modal.form.SetValues("Vitamin D", "09:00", "4")
	m.apply(Action{Kind: ActionSubmitSchedule})

	entries := svc.State.Schedule()
	if len(entries) != before+1 {
		t.Fatalf("collection size %d, want %d", len(entries), before+1)
	}
	if m.modal.visible != modalNone {
		t.Fatalf("overlay still showing after save")
	}

	var added schedule.Entry
	for _, e := range entries {
		if e.Name == "Vitamin D" {
			added = e
		}
	}
	if added.ID == 0 {
		t.Fatalf("new entry did not get a fresh id")
	}
	for _, e := range entries {
		if e.ID == added.ID && e.Name != "Vitamin D" {
			t.Fatalf("id %d collides with %q", added.ID, e.Name)
		}
	}
}

func TestSubmitScheduleValidationKeepsOverlay(t *testing.T) {
	svc := newTestService()
	setupProfile(t, svc)
	m := New(svc, nil)
	before := len(svc.State.Schedule())

	m.apply(Action{Kind: ActionOpenCreate})
	m.modal.form.SetValues("", "09:00", "4")
	m.apply(Action{Kind: ActionSubmitSchedule})

	if m.modal.visible != modalSchedule {
		t.Fatalf("overlay should stay open on validation failure")
	}
	if m.modal.formErr == nil {
		t.Fatalf("expected a form error")
	}
	if got := len(svc.State.Schedule()); got != before {
		t.Fatalf("failed submit changed the collection: %d -> %d", before, got)
	}
}

func TestEditEntryKeepsIDAndSize(t *testing.T) {
	svc := newTestService()
	setupProfile(t, svc)
	m := New(svc, nil)
	before := len(svc.State.Schedule())

	m.apply(Action{Kind: ActionEditEntry, ID: 2})
	if m.modal.visible != modalSchedule || m.modal.mode != formEdit {
		t.Fatalf("edit overlay not shown")
	}
	m.modal.form.SetValues("Lisinopril XR", "15:00", "2")
	m.apply(Action{Kind: ActionSubmitSchedule})

	if got := len(svc.State.Schedule()); got != before {
		t.Fatalf("edit changed the collection size: %d -> %d", before, got)
	}
	e, found := svc.State.Entry(2)
	if !found || e.Name != "Lisinopril XR" || e.Time != "15:00" {
		t.Fatalf("edit not applied in place: %+v found=%v", e, found)
	}
}

func TestEditStaleEntryNoOverlay(t *testing.T) {
	svc := newTestService()
	setupProfile(t, svc)
	m := New(svc, nil)

	m.apply(Action{Kind: ActionEditEntry, ID: 999})
	if m.modal.visible != modalNone {
		t.Fatalf("stale edit opened the overlay")
	}
	if m.status == "" {
		t.Fatalf("stale edit should surface a status message")
	}
}

func TestDeleteConfirmAndDecline(t *testing.T) {
	svc := newTestService()
	setupProfile(t, svc)
	m := New(svc, nil)
	m.navigateTo(PageSchedule.ID())
	before := len(svc.State.Schedule())

	// decline leaves the collection untouched
	m.apply(Action{Kind: ActionDeleteEntry, ID: 2})
	if m.modal.visible != modalConfirmDelete {
		t.Fatalf("confirmation overlay not shown")
	}
	next, _ := m.handleKey(tea.KeyPressMsg{Text: "n", Code: 'n'})
	m = next.(Model)
	if m.modal.visible != modalNone {
		t.Fatalf("decline did not close the overlay")
	}
	if got := len(svc.State.Schedule()); got != before {
		t.Fatalf("decline changed the collection: %d -> %d", before, got)
	}

	// confirm removes the entry
	m.apply(Action{Kind: ActionDeleteEntry, ID: 2})
	next, _ = m.handleKey(tea.KeyPressMsg{Text: "y", Code: 'y'})
	m = next.(Model)
	if got := len(svc.State.Schedule()); got != before-1 {
		t.Fatalf("confirm did not delete: %d -> %d", before, got)
	}
	if _, found := svc.State.Entry(2); found {
		t.Fatalf("entry 2 still present after delete")
	}
}

func TestChatSubmitRoundTrip(t *testing.T) {
	svc := newTestService()
	setupProfile(t, svc)
	fake := svc.Assistant.(*fakeAssistant)
	m := New(svc, nil)
	m.navigateTo(PageAssistant.ID())

	m.chatInput.SetValue("can I take aspirin")
	cmd := m.apply(Action{Kind: ActionSubmitChat})
	if cmd == nil {
		t.Fatalf("chat submit produced no command")
	}
	if !m.chatBusy || !m.loading() {
		t.Fatalf("chat call not marked in flight")
	}
	if m.chatInput.Value() != "" {
		t.Fatalf("input not cleared on submit")
	}

	transcript := svc.State.Chat()
	if len(transcript) != 1 || transcript[0].Role != chat.RoleUser {
		t.Fatalf("user message not appended: %+v", transcript)
	}

	// the command runs the assistant call and yields the reply message
	msg := runForMsg(t, cmd)
	reply, ok := msg.(assistantReplyMsg)
	if !ok {
		t.Fatalf("expected assistantReplyMsg, got %T", msg)
	}
	if len(fake.prompts) != 1 || fake.prompts[0] != "can I take aspirin" {
		t.Fatalf("assistant saw prompts %v", fake.prompts)
	}

	next, _ := m.settleAssistant(reply)
	m = next.(Model)
	if m.chatBusy || m.loading() {
		t.Fatalf("reply did not clear the in-flight state")
	}
	transcript = svc.State.Chat()
	if len(transcript) != 2 || transcript[1].Role != chat.RoleAssistant || transcript[1].Text != "ok" {
		t.Fatalf("assistant reply not appended: %+v", transcript)
	}
}

func TestEmptyChatSubmitIgnored(t *testing.T) {
	svc := newTestService()
	setupProfile(t, svc)
	m := New(svc, nil)
	m.navigateTo(PageAssistant.ID())

	m.chatInput.SetValue("   ")
	if cmd := m.apply(Action{Kind: ActionSubmitChat}); cmd != nil {
		t.Fatalf("blank submit should be ignored")
	}
	if len(svc.State.Chat()) != 0 {
		t.Fatalf("blank submit appended to the transcript")
	}
}

func TestOverlappingAssistantCalls(t *testing.T) {
	svc := newTestService()
	setupProfile(t, svc)
	m := New(svc, nil)

	cmdA := m.startCall(replyOverlay, "AI Schedule Summary", m.svc.SummarizeSchedule)
	cmdB := m.startCall(replyOverlay, "AI Log Analysis", m.svc.AnalyzeDispenseLog)
	if len(m.inflight) != 2 {
		t.Fatalf("expected 2 in-flight calls, got %d", len(m.inflight))
	}

	replyA := findReply(t, cmdA)
	replyB := findReply(t, cmdB)
	if replyA.token == replyB.token {
		t.Fatalf("overlapping calls shared token %d", replyA.token)
	}

	// settling one call keeps the other's loading indicator visible
	next, _ := m.settleAssistant(replyA)
	m = next.(Model)
	if !m.loading() {
		t.Fatalf("loading cleared while a call is still in flight")
	}
	next, _ = m.settleAssistant(replyB)
	m = next.(Model)
	if m.loading() {
		t.Fatalf("loading still visible after all calls settled")
	}
	if m.modal.visible != modalAIResult {
		t.Fatalf("overlay reply did not open the result view")
	}
}

func TestEmergencyActivateDeactivate(t *testing.T) {
	svc := newTestService()
	setupProfile(t, svc)
	m := New(svc, nil)

	m.apply(Action{Kind: ActionShowEmergency})
	if m.router.Current() != PageEmergency {
		t.Fatalf("emergency action did not switch page: %v", m.router.Current())
	}
	if m.emergencyAt.IsZero() {
		t.Fatalf("activation time not recorded")
	}

	m.apply(Action{Kind: ActionDeactivateEmergency})
	if m.router.Current() != PageDashboard {
		t.Fatalf("deactivate should return to dashboard, got %v", m.router.Current())
	}
}

func TestSwitchMonitoringTab(t *testing.T) {
	svc := newTestService()
	setupProfile(t, svc)
	m := New(svc, nil)

	if m.monitorTab != tabDispenseLog {
		t.Fatalf("default tab should be the dispense log, got %q", m.monitorTab)
	}
	m.apply(Action{Kind: ActionSwitchTab, Tab: tabImageLog})
	if m.monitorTab != tabImageLog {
		t.Fatalf("tab not switched: %q", m.monitorTab)
	}
}

func TestAvatarUploadSetsPlaceholder(t *testing.T) {
	svc := newTestService()
	setupProfile(t, svc)
	m := New(svc, nil)

	m.apply(Action{Kind: ActionUploadAvatar})
	if got := svc.State.Profile().Avatar; got != "initials:A" {
		t.Fatalf("avatar not set from initials: %q", got)
	}
}

// runForMsg executes a command tree until a non-batch message appears.
func runForMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if reply, ok := findReplyMsg(cmd); ok {
		return reply
	}
	t.Fatalf("command produced no assistant reply")
	return nil
}

func findReply(t *testing.T, cmd tea.Cmd) assistantReplyMsg {
	t.Helper()
	msg := runForMsg(t, cmd)
	reply, ok := msg.(assistantReplyMsg)
	if !ok {
		t.Fatalf("expected assistantReplyMsg, got %T", msg)
	}
	return reply
}

func findReplyMsg(cmd tea.Cmd) (tea.Msg, bool) {
	if cmd == nil {
		return nil, false
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if found, ok := findReplyMsg(sub); ok {
				return found, true
			}
		}
		return nil, false
	}
	if _, ok := msg.(assistantReplyMsg); ok {
		return msg, true
	}
	return nil, false
}
