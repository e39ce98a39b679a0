package tui

import (
	"testing"

	"github.com/amarlabs/amar/pkg/schedule"
)

func TestModalCreateFlow(t *testing.T) {
	m := newModalController(nil)

	m.OpenCreate()
	if m.visible != modalSchedule || m.mode != formCreate {
		t.Fatalf("create did not open the schedule overlay: %v %v", m.visible, m.mode)
	}

	m.form.SetValues("Metformin", "08:00", "1")
	e := m.FormEntry()
	if e.ID != 0 {
		t.Fatalf("create mode should leave the id unassigned, got %d", e.ID)
	}
	if e.Name != "Metformin" || e.Time != "08:00" || e.Compartment != 1 {
		t.Fatalf("form values not carried: %+v", e)
	}
}

func TestModalEditRetainsID(t *testing.T) {
	m := newModalController(nil)
	stored := schedule.Entry{ID: 2, Name: "Lisinopril", Time: "14:30", Compartment: 2}
	lookup := func(id int64) (schedule.Entry, bool) {
		if id == stored.ID {
			return stored, true
		}
		return schedule.Entry{}, false
	}

	if _, found := m.OpenEdit(2, lookup); !found {
		t.Fatalf("edit of existing id reported a miss")
	}
	if m.visible != modalSchedule || m.mode != formEdit {
		t.Fatalf("edit did not open the overlay: %v %v", m.visible, m.mode)
	}

	vals := m.form.Values()
	if vals[0] != "Lisinopril" || vals[1] != "14:30" || vals[2] != "2" {
		t.Fatalf("form not populated from entry: %v", vals)
	}

	m.form.SetValues("Lisinopril XR", "15:00", "2")
	e := m.FormEntry()
	if e.ID != 2 {
		t.Fatalf("edit lost the retained id: %d", e.ID)
	}
	if e.Name != "Lisinopril XR" || e.Time != "15:00" {
		t.Fatalf("edited values not carried: %+v", e)
	}
}

func TestModalEditStaleID(t *testing.T) {
	m := newModalController(nil)
	lookup := func(int64) (schedule.Entry, bool) { return schedule.Entry{}, false }

	if _, found := m.OpenEdit(999, lookup); found {
		t.Fatalf("stale id reported found")
	}
	if m.visible != modalNone {
		t.Fatalf("stale edit opened the overlay")
	}
}

func TestModalConfirmDelete(t *testing.T) {
	m := newModalController(nil)
	m.ConfirmDelete(2)
	if m.visible != modalConfirmDelete || m.confirmID != 2 {
		t.Fatalf("confirm overlay not armed: %v id=%d", m.visible, m.confirmID)
	}
	m.Close()
	if m.visible != modalNone {
		t.Fatalf("close did not hide the overlay")
	}
	// closing again is a no-op
	m.Close()
	if m.visible != modalNone {
		t.Fatalf("repeated close changed state")
	}
}

func TestModalShowResult(t *testing.T) {
	m := newModalController(nil)
	m.ShowResult("AI Schedule Summary", "take them on time")
	if m.visible != modalAIResult {
		t.Fatalf("result overlay not shown: %v", m.visible)
	}
	if m.aiTitle != "AI Schedule Summary" || m.aiBody != "take them on time" {
		t.Fatalf("result content not stored: %q %q", m.aiTitle, m.aiBody)
	}
}
