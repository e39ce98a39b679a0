// Package app provides the high-level device operations shared by the TUI
// and the CLI.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/amarlabs/amar/pkg/assistant"
	"github.com/amarlabs/amar/pkg/dispenser"
	"github.com/amarlabs/amar/pkg/history"
	"github.com/amarlabs/amar/pkg/schedule"
	"github.com/amarlabs/amar/pkg/state"
	"github.com/amarlabs/amar/pkg/store"
)

// ErrPatientNameRequired rejects setup without a patient name; the app
// stays gated until one is set.
var ErrPatientNameRequired = errors.New("app: patient name is required")

// Service wires the state store, persistence, assistant, dispenser and
// notifier behind the operations both front ends call.
type Service struct {
	State       *state.Store
	Persistence store.Persistence
	Assistant   assistant.Client
	Dispenser   *dispenser.Dispenser
	Notifier    Notifier
	Policy      schedule.Policy
	Log         *zap.Logger
}

func (s *Service) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// Setup completes first-run setup. The patient name is the only hard
// requirement; it flips the navigation gate.
func (s *Service) Setup(patient, guardian, phone string) error {
	if strings.TrimSpace(patient) == "" {
		return ErrPatientNameRequired
	}
	p := s.State.Profile()
	p.PatientName = strings.TrimSpace(patient)
	p.GuardianName = strings.TrimSpace(guardian)
	p.GuardianPhone = strings.TrimSpace(phone)
	return s.State.SetProfile(p)
}

// UpdateGuardian edits the guardian contact fields.
func (s *Service) UpdateGuardian(name, phone string) error {
	return s.State.UpdateGuardian(strings.TrimSpace(name), strings.TrimSpace(phone))
}

// SetAvatar stores the avatar data reference.
func (s *Service) SetAvatar(ref string) error {
	return s.State.SetAvatar(ref)
}

// Schedule returns the collection sorted by time-of-day for display.
func (s *Service) Schedule() []schedule.Entry {
	entries := s.State.Schedule()
	schedule.SortByTime(entries)
	return entries
}

// SaveEntry applies a schedule form submission. When the id still matches
// an existing entry it is replaced in place; otherwise a new entry is
// appended under a fresh id. The dispenser is resynced either way.
func (s *Service) SaveEntry(e schedule.Entry) (schedule.Entry, error) {
	existing := s.State.Schedule()
	if err := s.Policy.Validate(e, existing); err != nil {
		return schedule.Entry{}, err
	}
	if _, found := s.State.Entry(e.ID); !found {
		e.ID = schedule.NewID(existing)
	}
	s.State.UpsertEntry(e)
	s.syncDispenser()
	return e, nil
}

// DeleteEntry removes an entry. A stale id reports false and changes
// nothing; callers already confirmed interactively.
func (s *Service) DeleteEntry(id int64) bool {
	if !s.State.DeleteEntry(id) {
		s.logger().Info("delete missed stale schedule id", zap.Int64("id", id))
		return false
	}
	s.syncDispenser()
	return true
}

func (s *Service) syncDispenser() {
	if s.Dispenser != nil {
		s.Dispenser.Sync(s.State.Schedule())
	}
}

// StartDispenser installs jobs for the current schedule and starts the
// cron runner, wiring the dispense cycle as its callback.
func (s *Service) StartDispenser() {
	if s.Dispenser == nil {
		return
	}
	s.Dispenser.OnDispense = s.dispenseCycle
	s.Dispenser.Sync(s.State.Schedule())
	s.Dispenser.Start()
}

// Dispense performs an immediate manual dispense from the given
// compartment, outside the daily schedule.
func (s *Service) Dispense(compartment int) error {
	if compartment <= 0 {
		return errors.New("app: compartment not specified")
	}
	s.dispenseCycle(schedule.Entry{Name: "Manual Dispense", Compartment: compartment})
	return nil
}

// dispenseCycle is the full dispense path: decrement the compartment,
// record the event, persist the record. Runs on the cron goroutine for
// scheduled jobs.
func (s *Service) dispenseCycle(e schedule.Entry) {
	s.logger().Info("dispensing",
		zap.String("name", e.Name), zap.Int("compartment", e.Compartment))
	if !s.State.DecrementPills(e.Compartment) {
		s.logger().Warn("dispense on unknown compartment", zap.Int("compartment", e.Compartment))
	}
	rec := history.DispenseRecord{
		Time:    history.TimeLabel(time.Now()),
		Message: fmt.Sprintf("Dispensed '%s'", e.Name),
		Status:  history.StatusSuccess,
	}
	s.State.AppendDispense(rec)
	if s.Persistence != nil {
		if err := s.Persistence.AppendHistory(rec); err != nil {
			s.logger().Warn("failed to persist dispense record", zap.Error(err))
		}
	}
}

// Ask runs one assistant round trip. Collaborator failures surface as the
// canned apology, never as an error.
func (s *Service) Ask(ctx context.Context, prompt string) string {
	if s.Assistant == nil {
		return assistant.Apology
	}
	reply, err := s.Assistant.Complete(ctx, prompt)
	if err != nil {
		s.logger().Warn("assistant call failed", zap.Error(err))
		return assistant.Apology
	}
	return reply
}

// SummarizeSchedule asks the assistant for a summary of the current
// schedule collection.
func (s *Service) SummarizeSchedule(ctx context.Context) string {
	data, _ := json.Marshal(s.Schedule())
	return s.Ask(ctx, fmt.Sprintf("Summarize this schedule: %s", data))
}

// AnalyzeDispenseLog asks the assistant to analyze the dispense history.
func (s *Service) AnalyzeDispenseLog(ctx context.Context) string {
	data, _ := json.Marshal(s.State.DispenseLog())
	return s.Ask(ctx, fmt.Sprintf("Analyze this log: %s", data))
}

// Emergency alerts the guardian through the configured notifier.
func (s *Service) Emergency() {
	s.logger().Warn("emergency activated")
	if s.Notifier != nil {
		s.Notifier.NotifyEmergency(s.State.Profile())
	}
}
