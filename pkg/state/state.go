// Package state holds the single source of truth for the dashboard. Every
// component reads snapshots and mutates through typed operations; nothing
// keeps a private copy of shared data.
package state

import (
	"sync"

	"github.com/amarlabs/amar/pkg/adherence"
	"github.com/amarlabs/amar/pkg/chat"
	"github.com/amarlabs/amar/pkg/history"
	"github.com/amarlabs/amar/pkg/pillbox"
	"github.com/amarlabs/amar/pkg/profile"
	"github.com/amarlabs/amar/pkg/schedule"
)

// Saver persists the profile. It is invoked inside every profile mutation so
// a reload cannot lose data.
type Saver func(profile.Profile) error

// Store owns all application data. The UI runs on one logical thread, but
// the dispense scheduler fires from a cron goroutine, so access is guarded.
type Store struct {
	mu    sync.RWMutex
	saver Saver

	profile   profile.Profile
	schedule  []schedule.Entry
	pillbox   []pillbox.Compartment
	adherence adherence.Series
	dispense  []history.DispenseRecord
	images    []history.ImageRecord
	chat      []chat.Message
}

// New returns an empty store. The saver may be nil (nothing is persisted).
func New(saver Saver) *Store {
	return &Store{saver: saver}
}

// NewSeeded returns a store pre-loaded with the device demo data set.
func NewSeeded(saver Saver) *Store {
	s := New(saver)
	s.schedule = []schedule.Entry{
		{ID: 1, Name: "Metformin", Time: "08:00", Compartment: 1},
		{ID: 2, Name: "Lisinopril", Time: "14:30", Compartment: 2},
		{ID: 3, Name: "Aspirin", Time: "20:00", Compartment: 3},
	}
	s.pillbox = []pillbox.Compartment{
		{ID: 1, Pills: 7, Total: 7},
		{ID: 2, Pills: 7, Total: 7},
		{ID: 3, Pills: 6, Total: 7},
		{ID: 4, Pills: 5, Total: 7},
		{ID: 5, Pills: 4, Total: 7},
		{ID: 6, Pills: 2, Total: 7},
		{ID: 7, Pills: 0, Total: 7},
	}
	s.adherence = adherence.Series{95, 100, 100, 85, 100, 100, 90}
	s.dispense = []history.DispenseRecord{
		{Time: "08:01 AM", Message: "Dispensed 'Metformin'", Status: history.StatusSuccess},
		{Time: "Yesterday", Message: "Alert: 'Aspirin' not taken", Status: history.StatusWarning},
	}
	s.images = []history.ImageRecord{
		{Time: "08:01 AM", URL: "capture:pill"},
	}
	return s
}

// Profile returns the current profile snapshot.
func (s *Store) Profile() profile.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SetProfile replaces the profile and persists it in the same call.
func (s *Store) SetProfile(p profile.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	return s.save()
}

// UpdateGuardian mutates the guardian contact fields and persists.
func (s *Store) UpdateGuardian(name, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.GuardianName = name
	s.profile.GuardianPhone = phone
	return s.save()
}

// SetAvatar stores the avatar data reference and persists.
func (s *Store) SetAvatar(ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Avatar = ref
	return s.save()
}

// save must be called with the write lock held.
func (s *Store) save() error {
	if s.saver == nil {
		return nil
	}
	return s.saver(s.profile)
}

// Schedule returns a copy of the schedule collection in stored order.
func (s *Store) Schedule() []schedule.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]schedule.Entry, len(s.schedule))
	copy(out, s.schedule)
	return out
}

// Entry looks up a schedule entry by id. The found bool distinguishes a
// miss from a zero entry.
func (s *Store) Entry(id int64) (schedule.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.schedule {
		if e.ID == id {
			return e, true
		}
	}
	return schedule.Entry{}, false
}

// UpsertEntry replaces the entry with a matching id in place, or appends
// when no match exists. Reports whether an existing entry was replaced.
func (s *Store) UpsertEntry(e schedule.Entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.schedule {
		if existing.ID == e.ID {
			s.schedule[i] = e
			return true
		}
	}
	s.schedule = append(s.schedule, e)
	return false
}

// DeleteEntry removes the entry with the given id. Reports whether anything
// was removed; a miss is observable, not an error.
func (s *Store) DeleteEntry(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.schedule {
		if e.ID == id {
			s.schedule = append(s.schedule[:i], s.schedule[i+1:]...)
			return true
		}
	}
	return false
}

// Pillbox returns a copy of the compartment states.
func (s *Store) Pillbox() []pillbox.Compartment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]pillbox.Compartment, len(s.pillbox))
	copy(out, s.pillbox)
	return out
}

// DecrementPills takes one pill from the given compartment, flooring at
// zero. Reports whether the compartment exists.
func (s *Store) DecrementPills(compartment int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.pillbox {
		if c.ID == compartment {
			if s.pillbox[i].Pills > 0 {
				s.pillbox[i].Pills--
			}
			return true
		}
	}
	return false
}

// Adherence returns the weekly adherence series.
func (s *Store) Adherence() adherence.Series {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adherence
}

// DispenseLog returns a copy of the dispense records, oldest first.
func (s *Store) DispenseLog() []history.DispenseRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]history.DispenseRecord, len(s.dispense))
	copy(out, s.dispense)
	return out
}

// AppendDispense appends one dispense record.
func (s *Store) AppendDispense(r history.DispenseRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispense = append(s.dispense, r)
}

// ImageLog returns a copy of the image records.
func (s *Store) ImageLog() []history.ImageRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]history.ImageRecord, len(s.images))
	copy(out, s.images)
	return out
}

// Chat returns a copy of the transcript.
func (s *Store) Chat() []chat.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]chat.Message, len(s.chat))
	copy(out, s.chat)
	return out
}

// AppendChat appends one transcript message.
func (s *Store) AppendChat(m chat.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, m)
}
