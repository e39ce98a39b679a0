// Package schedule defines medication schedule entries and the validation
// policy applied when they are created or edited.
package schedule

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Entry is one scheduled medication: dispensed daily at Time from the given
// dispenser compartment.
type Entry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Time        string `json:"time"` // 24h "HH:MM"
	Compartment int    `json:"compartment"`
}

// ErrMissingFields is returned when a required form field is empty.
var ErrMissingFields = errors.New("schedule: name, time and compartment are required")

// ErrBadTime is returned when the time is not a valid 24h HH:MM value.
var ErrBadTime = errors.New("schedule: time must be HH:MM")

// ConflictError reports a compartment or time collision rejected by the
// active validation policy.
type ConflictError struct {
	Field string // "compartment" or "time"
	With  Entry
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("schedule: %s already used by %q", e.Field, e.With.Name)
}

// Policy controls collision checks between entries. The zero value is
// strict; Permissive matches the observed device behavior.
type Policy struct {
	AllowCompartmentSharing bool
	AllowTimeSharing        bool
}

// Permissive allows compartment and time sharing.
var Permissive = Policy{AllowCompartmentSharing: true, AllowTimeSharing: true}

// Validate checks e against the policy and the existing entries. An entry
// with the same ID is skipped so edits do not conflict with themselves.
func (p Policy) Validate(e Entry, existing []Entry) error {
	if strings.TrimSpace(e.Name) == "" || e.Time == "" || e.Compartment == 0 {
		return ErrMissingFields
	}
	if _, _, err := ParseTime(e.Time); err != nil {
		return err
	}
	for _, other := range existing {
		if other.ID == e.ID {
			continue
		}
		if !p.AllowCompartmentSharing && other.Compartment == e.Compartment {
			return &ConflictError{Field: "compartment", With: other}
		}
		if !p.AllowTimeSharing && other.Time == e.Time {
			return &ConflictError{Field: "time", With: other}
		}
	}
	return nil
}

// ParseTime splits a 24h "HH:MM" string.
func ParseTime(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, ErrBadTime
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, ErrBadTime
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, ErrBadTime
	}
	return hour, minute, nil
}

// FormatTime renders a 24h "HH:MM" value as a 12-hour clock label.
func FormatTime(s string) string {
	hour, minute, err := ParseTime(s)
	if err != nil {
		return s
	}
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h, minute, meridiem)
}

// SortByTime orders entries by time-of-day ascending, stable for equal
// times. Display order only; the stored order is never rewritten.
func SortByTime(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})
}

// NewID generates an identifier unique within the given entries. New ids
// derive from the current time; collisions re-roll by increment.
func NewID(existing []Entry) int64 {
	used := make(map[int64]bool, len(existing))
	for _, e := range existing {
		used[e.ID] = true
	}
	id := time.Now().UnixMilli()
	for used[id] || id == 0 {
		id++
	}
	return id
}
