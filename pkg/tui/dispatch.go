package tui

// EventKind is the delegation category an input belongs to.
type EventKind int

const (
	EventClick EventKind = iota
	EventSubmit
	EventChange
)

// Event is one user interaction, described by the identity of what was
// activated. Target carries element/form identifiers for exact matches,
// Class the pattern-match fallback, ID and Tab the per-entry payload.
type Event struct {
	Kind   EventKind
	Target string
	Class  string
	ID     int64
	Tab    string
}

// ActionKind enumerates everything the dispatcher can resolve an event to.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionShowEmergency
	ActionDeactivateEmergency
	ActionOpenCreate
	ActionCancelSchedule
	ActionGenerateSummary
	ActionAnalyzeLog
	ActionCloseAIResult
	ActionEditEntry
	ActionDeleteEntry
	ActionSwitchTab
	ActionSubmitSetup
	ActionSubmitSchedule
	ActionSubmitProfile
	ActionSubmitChat
	ActionUploadAvatar
)

// Action is a resolved event: the kind plus any payload it carried.
type Action struct {
	Kind ActionKind
	ID   int64
	Tab  string
}

var submitActions = map[string]ActionKind{
	"setupForm":    ActionSubmitSetup,
	"scheduleForm": ActionSubmitSchedule,
	"profileForm":  ActionSubmitProfile,
	"chatForm":     ActionSubmitChat,
}

var clickActions = map[string]ActionKind{
	"emergencyButton":        ActionShowEmergency,
	"deactivateEmergencyBtn": ActionDeactivateEmergency,
	"addNewScheduleBtn":      ActionOpenCreate,
	"cancelScheduleBtn":      ActionCancelSchedule,
	"generateSummaryBtn":     ActionGenerateSummary,
	"analyzeLogBtn":          ActionAnalyzeLog,
	"closeAiResultBtn":       ActionCloseAIResult,
}

// classActions is the click fallback, tried in priority order only when no
// exact target matched.
var classActions = []struct {
	class string
	kind  ActionKind
}{
	{"edit-schedule-btn", ActionEditEntry},
	{"delete-schedule-btn", ActionDeleteEntry},
	{"tab-link", ActionSwitchTab},
}

// Resolve maps an event to its action exactly once: submits consult the
// form table, clicks try exact targets before class patterns, changes know
// only the avatar upload. Anything unmatched resolves to ActionNone.
func Resolve(ev Event) Action {
	switch ev.Kind {
	case EventSubmit:
		if kind, ok := submitActions[ev.Target]; ok {
			return Action{Kind: kind}
		}
	case EventClick:
		if kind, ok := clickActions[ev.Target]; ok {
			return Action{Kind: kind}
		}
		for _, ca := range classActions {
			if ca.class == ev.Class {
				return Action{Kind: ca.kind, ID: ev.ID, Tab: ev.Tab}
			}
		}
	case EventChange:
		if ev.Target == "avatarUpload" {
			return Action{Kind: ActionUploadAvatar}
		}
	}
	return Action{Kind: ActionNone}
}
