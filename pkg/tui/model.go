package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/spinner"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/amarlabs/amar/pkg/app"
	"github.com/amarlabs/amar/pkg/chat"
)

// replyTarget is where an assistant reply lands.
type replyTarget int

const (
	replyChat    replyTarget = iota // appended to the transcript
	replyOverlay                    // shown in the read-only result overlay
)

// assistantReplyMsg carries one settled assistant call. The token ties it
// back to the in-flight set so overlapping calls cannot clear each other's
// loading indicator.
type assistantReplyMsg struct {
	token  int
	target replyTarget
	title  string
	text   string
}

// Model is the dashboard program: router, modal controller, page-transient
// state and the in-flight assistant calls.
type Model struct {
	svc    *app.Service
	router *router
	modal  *modalController

	setupForm *form
	setupErr  error

	profileForm    *form
	profileEditing bool
	profileStatus  string

	chatInput   textinput.Model
	chatFocused bool
	chatBusy    bool

	sel        int // cursor into the sorted schedule list
	monitorTab string

	inflight  map[int]struct{}
	nextToken int
	spin      spinner.Model

	emergencyAt time.Time

	mdRender func(string) string

	status        string
	width, height int
	log           *zap.Logger
}

// New builds the dashboard model. Cold start lands on setup when no
// profile exists yet, else on the dashboard.
func New(svc *app.Service, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	gate := func() bool { return svc.State.Profile().Initialized() }
	r := newRouter(gate, log)
	if gate() {
		r.Navigate(PageDashboard.ID())
	}

	ci := textinput.New()
	ci.Placeholder = "Ask about your medication"
	ci.CharLimit = 256
	ci.Prompt = "> "

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		svc:         svc,
		router:      r,
		modal:       newModalController(log),
		setupForm:   newForm("Patient name", "Guardian name", "Guardian phone"),
		profileForm: newForm("Guardian name", "Guardian phone"),
		chatInput:   ci,
		monitorTab:  tabDispenseLog,
		inflight:    make(map[int]struct{}),
		spin:        sp,
		log:         log,
	}
	m.mdRender = newMarkdownRenderer(80)
	return m
}

func newMarkdownRenderer(width int) func(string) string {
	if width < 40 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width-8))
	if err != nil {
		return nil
	}
	return func(s string) string {
		out, err := r.Render(s)
		if err != nil {
			return s
		}
		return out
	}
}

// Init focuses the setup form when it is the landing page.
func (m Model) Init() tea.Cmd {
	if m.router.Current() == PageSetup {
		return m.setupForm.Focus()
	}
	return nil
}

func (m Model) loading() bool { return len(m.inflight) > 0 }

// Update is the single delegation point: every input is translated to an
// Event, resolved once to an Action, and applied.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.mdRender = newMarkdownRenderer(msg.Width)
		return m, nil
	case spinner.TickMsg:
		if m.loading() || m.chatBusy {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	case assistantReplyMsg:
		return m.settleAssistant(msg)
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) settleAssistant(msg assistantReplyMsg) (tea.Model, tea.Cmd) {
	// Hide this call's share of the loading indicator unconditionally;
	// other in-flight calls keep it visible.
	delete(m.inflight, msg.token)
	switch msg.target {
	case replyChat:
		m.svc.State.AppendChat(chat.Message{Role: chat.RoleAssistant, Text: msg.text})
		m.chatBusy = false
		m.chatFocused = true
		return m, tea.Batch(m.chatInput.Focus(), textinput.Blink)
	case replyOverlay:
		m.modal.ShowResult(msg.title, msg.text)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// Overlays take input first; only one is ever visible.
	switch m.modal.visible {
	case modalSchedule:
		switch key {
		case "esc":
			return m, m.dispatch(Event{Kind: EventClick, Target: "cancelScheduleBtn"})
		case "tab", "down":
			return m, m.modal.form.Next()
		case "shift+tab", "up":
			return m, m.modal.form.Prev()
		case "enter":
			return m, m.dispatch(Event{Kind: EventSubmit, Target: "scheduleForm"})
		default:
			return m, m.modal.Update(msg)
		}
	case modalAIResult:
		switch key {
		case "enter", "esc", "q":
			return m, m.dispatch(Event{Kind: EventClick, Target: "closeAiResultBtn"})
		}
		return m, nil
	case modalConfirmDelete:
		switch key {
		case "y", "enter":
			id := m.modal.confirmID
			m.modal.Close()
			if m.svc.DeleteEntry(id) {
				m.status = "Schedule deleted"
				m.clampSel()
			} else {
				m.status = "Schedule entry no longer exists"
			}
		case "n", "esc":
			// declined: no state change
			m.modal.Close()
		}
		return m, nil
	}

	if m.loading() {
		return m, nil
	}

	switch m.router.Current() {
	case PageSetup:
		switch key {
		case "tab", "down":
			return m, m.setupForm.Next()
		case "shift+tab", "up":
			return m, m.setupForm.Prev()
		case "enter":
			return m, m.dispatch(Event{Kind: EventSubmit, Target: "setupForm"})
		default:
			return m, m.setupForm.Update(msg)
		}

	case PageProfile:
		if m.profileEditing {
			switch key {
			case "esc":
				m.profileEditing = false
				m.profileForm.Blur()
				return m, nil
			case "tab", "down":
				return m, m.profileForm.Next()
			case "shift+tab", "up":
				return m, m.profileForm.Prev()
			case "enter":
				return m, m.dispatch(Event{Kind: EventSubmit, Target: "profileForm"})
			default:
				return m, m.profileForm.Update(msg)
			}
		}
		switch key {
		case "i":
			p := m.svc.State.Profile()
			m.profileForm.SetValues(p.GuardianName, p.GuardianPhone)
			m.profileEditing = true
			m.profileStatus = ""
			return m, m.profileForm.Focus()
		case "ctrl+a":
			return m, m.dispatch(Event{Kind: EventChange, Target: "avatarUpload"})
		}

	case PageAssistant:
		if m.chatFocused {
			switch key {
			case "esc":
				m.chatFocused = false
				m.chatInput.Blur()
				return m, nil
			case "enter":
				return m, m.dispatch(Event{Kind: EventSubmit, Target: "chatForm"})
			default:
				var cmd tea.Cmd
				m.chatInput, cmd = m.chatInput.Update(msg)
				return m, cmd
			}
		}
		if key == "i" {
			m.chatFocused = true
			return m, tea.Batch(m.chatInput.Focus(), textinput.Blink)
		}

	case PageSchedule:
		switch key {
		case "j", "down":
			m.sel++
			m.clampSel()
			return m, nil
		case "k", "up":
			m.sel--
			m.clampSel()
			return m, nil
		case "a":
			return m, m.dispatch(Event{Kind: EventClick, Target: "addNewScheduleBtn"})
		case "enter", "i":
			if e, ok := sortedEntryAt(m.svc.State.Schedule(), m.sel); ok {
				return m, m.dispatch(Event{Kind: EventClick, Class: "edit-schedule-btn", ID: e.ID})
			}
			return m, nil
		case "d", "x":
			if e, ok := sortedEntryAt(m.svc.State.Schedule(), m.sel); ok {
				return m, m.dispatch(Event{Kind: EventClick, Class: "delete-schedule-btn", ID: e.ID})
			}
			return m, nil
		case "s":
			return m, m.dispatch(Event{Kind: EventClick, Target: "generateSummaryBtn"})
		}

	case PageMonitoring:
		switch key {
		case "t":
			next := tabImageLog
			if m.monitorTab == tabImageLog {
				next = tabDispenseLog
			}
			return m, m.dispatch(Event{Kind: EventClick, Class: "tab-link", Tab: next})
		case "g":
			return m, m.dispatch(Event{Kind: EventClick, Target: "analyzeLogBtn"})
		}

	case PageEmergency:
		if key == "d" {
			return m, m.dispatch(Event{Kind: EventClick, Target: "deactivateEmergencyBtn"})
		}
	}

	// global navigation, shared by every non-input context
	switch key {
	case "1", "2", "3", "4", "5":
		idx := int(key[0] - '1')
		return m, m.navigateTo(NavPages[idx].ID())
	case "e":
		return m, m.dispatch(Event{Kind: EventClick, Target: "emergencyButton"})
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// dispatch resolves an event and applies the resulting action. Handlers
// mutate the store and router; the resolver itself never does.
func (m *Model) dispatch(ev Event) tea.Cmd {
	return m.apply(Resolve(ev))
}

func (m *Model) apply(action Action) tea.Cmd {
	switch action.Kind {
	case ActionShowEmergency:
		cmd := m.navigateTo(PageEmergency.ID())
		if m.router.Current() == PageEmergency {
			m.emergencyAt = time.Now()
			m.svc.Emergency()
		}
		return cmd

	case ActionDeactivateEmergency:
		return m.navigateTo(PageDashboard.ID())

	case ActionOpenCreate:
		return m.modal.OpenCreate()

	case ActionCancelSchedule, ActionCloseAIResult:
		m.modal.Close()

	case ActionGenerateSummary:
		return m.startCall(replyOverlay, "AI Schedule Summary", m.svc.SummarizeSchedule)

	case ActionAnalyzeLog:
		return m.startCall(replyOverlay, "AI Log Analysis", m.svc.AnalyzeDispenseLog)

	case ActionEditEntry:
		cmd, found := m.modal.OpenEdit(action.ID, m.svc.State.Entry)
		if !found {
			m.status = "Schedule entry no longer exists"
		}
		return cmd

	case ActionDeleteEntry:
		m.modal.ConfirmDelete(action.ID)

	case ActionSwitchTab:
		m.monitorTab = action.Tab

	case ActionSubmitSetup:
		vals := m.setupForm.Values()
		if err := m.svc.Setup(vals[0], vals[1], vals[2]); err != nil {
			m.setupErr = err
			return nil
		}
		m.setupErr = nil
		return m.navigateTo(PageDashboard.ID())

	case ActionSubmitSchedule:
		entry := m.modal.FormEntry()
		if _, err := m.svc.SaveEntry(entry); err != nil {
			m.modal.formErr = err
			return nil
		}
		m.modal.Close()
		m.clampSel()

	case ActionSubmitProfile:
		vals := m.profileForm.Values()
		if err := m.svc.UpdateGuardian(vals[0], vals[1]); err != nil {
			m.status = err.Error()
		} else {
			m.profileStatus = "Profile updated!"
		}
		m.profileEditing = false
		m.profileForm.Blur()

	case ActionSubmitChat:
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" || m.chatBusy {
			return nil
		}
		m.svc.State.AppendChat(chat.Message{Role: chat.RoleUser, Text: text})
		m.chatInput.Reset()
		m.chatBusy = true
		prompt := text
		return m.startCall(replyChat, "", func(ctx context.Context) string {
			return m.svc.Ask(ctx, prompt)
		})

	case ActionUploadAvatar:
		p := m.svc.State.Profile()
		if err := m.svc.SetAvatar(p.PlaceholderAvatar()); err != nil {
			m.status = err.Error()
		} else {
			m.status = "Avatar updated"
		}
	}
	return nil
}

// startCall registers an in-flight assistant call under a fresh token and
// returns the command that performs it.
func (m *Model) startCall(target replyTarget, title string, call func(context.Context) string) tea.Cmd {
	m.nextToken++
	token := m.nextToken
	m.inflight[token] = struct{}{}
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		return assistantReplyMsg{token: token, target: target, title: title, text: call(context.Background())}
	})
}

// navigateTo routes to the page under id and applies page-entry resets.
func (m *Model) navigateTo(id string) tea.Cmd {
	if m.router.Navigate(id) != navChanged {
		return nil
	}
	m.status = ""
	switch m.router.Current() {
	case PageAssistant:
		m.chatFocused = true
		return tea.Batch(m.chatInput.Focus(), textinput.Blink)
	case PageSchedule:
		m.clampSel()
	case PageProfile:
		m.profileEditing = false
		m.profileStatus = ""
	}
	return nil
}

func (m *Model) clampSel() {
	n := len(m.svc.State.Schedule())
	if m.sel >= n {
		m.sel = n - 1
	}
	if m.sel < 0 {
		m.sel = 0
	}
}

// Run starts the dashboard program.
func Run(svc *app.Service, log *zap.Logger) error {
	p := tea.NewProgram(New(svc, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
