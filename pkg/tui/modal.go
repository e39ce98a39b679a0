package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/amarlabs/amar/pkg/schedule"
)

// modalKind is which overlay is showing. Only one at a time; the loading
// indicator is tracked separately by the in-flight call set.
type modalKind int

const (
	modalNone modalKind = iota
	modalSchedule
	modalAIResult
	modalConfirmDelete
)

// formMode is the schedule overlay mode.
type formMode int

const (
	formCreate formMode = iota
	formEdit
)

// modalController mediates the overlay lifecycle: the schedule create/edit
// form, the read-only AI result, and the delete confirmation.
type modalController struct {
	visible   modalKind
	mode      formMode
	targetID  int64
	form      *form
	formErr   error
	aiTitle   string
	aiBody    string
	confirmID int64
	log       *zap.Logger
}

func newModalController(log *zap.Logger) *modalController {
	if log == nil {
		log = zap.NewNop()
	}
	return &modalController{
		form: newForm("Medication", "Time (HH:MM)", "Compartment"),
		log:  log,
	}
}

// OpenCreate clears the form and shows the schedule overlay in create mode.
func (m *modalController) OpenCreate() tea.Cmd {
	m.form.Reset()
	m.formErr = nil
	m.mode = formCreate
	m.targetID = 0
	m.visible = modalSchedule
	return m.form.Focus()
}

// OpenEdit populates the form from the entry under id and retains the id.
// A stale id is a benign race: logged, overlay not shown, found=false.
func (m *modalController) OpenEdit(id int64, lookup func(int64) (schedule.Entry, bool)) (tea.Cmd, bool) {
	e, ok := lookup(id)
	if !ok {
		m.log.Info("edit missed stale schedule id", zap.Int64("id", id))
		return nil, false
	}
	m.form.SetValues(e.Name, e.Time, strconv.Itoa(e.Compartment))
	m.formErr = nil
	m.mode = formEdit
	m.targetID = id
	m.visible = modalSchedule
	return m.form.Focus(), true
}

// FormEntry builds the entry a submit would store: the retained id in edit
// mode, zero in create mode (the service assigns a fresh one).
func (m *modalController) FormEntry() schedule.Entry {
	vals := m.form.Values()
	compartment, _ := strconv.Atoi(vals[2])
	e := schedule.Entry{Name: vals[0], Time: vals[1], Compartment: compartment}
	if m.mode == formEdit {
		e.ID = m.targetID
	}
	return e
}

// ShowResult opens the read-only AI result overlay.
func (m *modalController) ShowResult(title, body string) {
	m.aiTitle = title
	m.aiBody = body
	m.visible = modalAIResult
}

// ConfirmDelete opens the delete confirmation for id.
func (m *modalController) ConfirmDelete(id int64) {
	m.confirmID = id
	m.visible = modalConfirmDelete
}

// Close hides whichever overlay is visible. Idempotent.
func (m *modalController) Close() {
	m.visible = modalNone
	m.formErr = nil
}

// Update routes input to the schedule form while it is showing.
func (m *modalController) Update(msg tea.Msg) tea.Cmd {
	if m.visible != modalSchedule {
		return nil
	}
	return m.form.Update(msg)
}
