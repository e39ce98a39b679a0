package state

import (
	"testing"

	"github.com/amarlabs/amar/pkg/chat"
	"github.com/amarlabs/amar/pkg/profile"
	"github.com/amarlabs/amar/pkg/schedule"
)

func TestProfileMutationsPersist(t *testing.T) {
	var saved []profile.Profile
	s := New(func(p profile.Profile) error {
		saved = append(saved, p)
		return nil
	})

	if err := s.SetProfile(profile.Profile{PatientName: "Alex"}); err != nil {
		t.Fatalf("SetProfile: %v", err)
	}
	if err := s.UpdateGuardian("Jane", "555-0100"); err != nil {
		t.Fatalf("UpdateGuardian: %v", err)
	}
	if err := s.SetAvatar("initials:A"); err != nil {
		t.Fatalf("SetAvatar: %v", err)
	}

	if len(saved) != 3 {
		t.Fatalf("expected 3 saves, got %d", len(saved))
	}
	last := saved[2]
	if last.PatientName != "Alex" || last.GuardianName != "Jane" || last.Avatar != "initials:A" {
		t.Fatalf("unexpected persisted profile: %+v", last)
	}
}

func TestEntryLookupMiss(t *testing.T) {
	s := NewSeeded(nil)
	if _, found := s.Entry(999); found {
		t.Fatalf("lookup of unknown id should report not found")
	}
	if e, found := s.Entry(2); !found || e.Name != "Lisinopril" {
		t.Fatalf("lookup of seeded id 2 failed: %+v found=%v", e, found)
	}
}

func TestUpsertEntryReplaceAndAppend(t *testing.T) {
	s := NewSeeded(nil)
	before := len(s.Schedule())

	replaced := s.UpsertEntry(schedule.Entry{ID: 2, Name: "Lisinopril XR", Time: "15:00", Compartment: 2})
	if !replaced {
		t.Fatalf("expected existing id 2 to be replaced")
	}
	if got := len(s.Schedule()); got != before {
		t.Fatalf("replace changed collection size: %d -> %d", before, got)
	}
	if e, _ := s.Entry(2); e.Name != "Lisinopril XR" || e.Time != "15:00" {
		t.Fatalf("replacement not applied: %+v", e)
	}

	replaced = s.UpsertEntry(schedule.Entry{ID: 99, Name: "Vitamin D", Time: "09:00", Compartment: 4})
	if replaced {
		t.Fatalf("append reported a replacement")
	}
	if got := len(s.Schedule()); got != before+1 {
		t.Fatalf("append did not grow collection: %d", got)
	}
}

func TestDeleteEntry(t *testing.T) {
	s := NewSeeded(nil)
	before := len(s.Schedule())

	if !s.DeleteEntry(2) {
		t.Fatalf("delete of seeded id 2 reported a miss")
	}
	if got := len(s.Schedule()); got != before-1 {
		t.Fatalf("delete did not shrink collection: %d", got)
	}
	if s.DeleteEntry(2) {
		t.Fatalf("second delete of id 2 should miss")
	}
	if got := len(s.Schedule()); got != before-1 {
		t.Fatalf("missed delete changed collection: %d", got)
	}
}

func TestDecrementPillsFloorsAtZero(t *testing.T) {
	s := NewSeeded(nil)

	// compartment 7 is seeded empty
	if !s.DecrementPills(7) {
		t.Fatalf("known compartment reported missing")
	}
	for _, c := range s.Pillbox() {
		if c.ID == 7 && c.Pills != 0 {
			t.Fatalf("empty compartment went negative: %d", c.Pills)
		}
	}

	if s.DecrementPills(42) {
		t.Fatalf("unknown compartment reported found")
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := NewSeeded(nil)
	snap := s.Schedule()
	snap[0].Name = "mutated"
	if e, _ := s.Entry(snap[0].ID); e.Name == "mutated" {
		t.Fatalf("snapshot mutation leaked into the store")
	}
}

func TestChatTranscript(t *testing.T) {
	s := New(nil)
	s.AppendChat(chat.Message{Role: chat.RoleUser, Text: "hello"})
	s.AppendChat(chat.Message{Role: chat.RoleAssistant, Text: "hi"})

	got := s.Chat()
	if len(got) != 2 || got[0].Role != chat.RoleUser || got[1].Role != chat.RoleAssistant {
		t.Fatalf("unexpected transcript: %+v", got)
	}
}
