package schedule

import (
	"errors"
	"testing"
)

func TestValidateRequiredFields(t *testing.T) {
	cases := []Entry{
		{Name: "", Time: "08:00", Compartment: 1},
		{Name: "Metformin", Time: "", Compartment: 1},
		{Name: "Metformin", Time: "08:00", Compartment: 0},
		{Name: "   ", Time: "08:00", Compartment: 1},
	}
	for _, e := range cases {
		if err := Permissive.Validate(e, nil); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields for %+v, got %v", e, err)
		}
	}
}

func TestValidateBadTime(t *testing.T) {
	for _, bad := range []string{"25:00", "08:60", "0800", "8", "aa:bb"} {
		e := Entry{Name: "Metformin", Time: bad, Compartment: 1}
		if err := Permissive.Validate(e, nil); !errors.Is(err, ErrBadTime) {
			t.Fatalf("expected ErrBadTime for %q, got %v", bad, err)
		}
	}
}

func TestValidatePermissiveAllowsSharing(t *testing.T) {
	existing := []Entry{{ID: 1, Name: "Metformin", Time: "08:00", Compartment: 1}}
	e := Entry{ID: 2, Name: "Aspirin", Time: "08:00", Compartment: 1}
	if err := Permissive.Validate(e, existing); err != nil {
		t.Fatalf("permissive policy rejected sharing: %v", err)
	}
}

func TestValidateStrictRejectsCollisions(t *testing.T) {
	strict := Policy{}
	existing := []Entry{{ID: 1, Name: "Metformin", Time: "08:00", Compartment: 1}}

	e := Entry{ID: 2, Name: "Aspirin", Time: "09:00", Compartment: 1}
	var conflict *ConflictError
	if err := strict.Validate(e, existing); !errors.As(err, &conflict) || conflict.Field != "compartment" {
		t.Fatalf("expected compartment conflict, got %v", err)
	}

	e = Entry{ID: 2, Name: "Aspirin", Time: "08:00", Compartment: 2}
	if err := strict.Validate(e, existing); !errors.As(err, &conflict) || conflict.Field != "time" {
		t.Fatalf("expected time conflict, got %v", err)
	}
}

func TestValidateSkipsSelfOnEdit(t *testing.T) {
	strict := Policy{}
	existing := []Entry{{ID: 1, Name: "Metformin", Time: "08:00", Compartment: 1}}
	edited := Entry{ID: 1, Name: "Metformin XR", Time: "08:00", Compartment: 1}
	if err := strict.Validate(edited, existing); err != nil {
		t.Fatalf("edit conflicted with itself: %v", err)
	}
}

func TestFormatTime(t *testing.T) {
	cases := map[string]string{
		"08:00": "08:00 AM",
		"14:30": "02:30 PM",
		"00:05": "12:05 AM",
		"12:00": "12:00 PM",
		"23:59": "11:59 PM",
		"bogus": "bogus",
	}
	for in, want := range cases {
		if got := FormatTime(in); got != want {
			t.Fatalf("FormatTime(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSortByTimeStable(t *testing.T) {
	entries := []Entry{
		{ID: 1, Name: "Evening", Time: "20:00"},
		{ID: 2, Name: "First Morning", Time: "08:00"},
		{ID: 3, Name: "Second Morning", Time: "08:00"},
		{ID: 4, Name: "Afternoon", Time: "14:30"},
	}
	SortByTime(entries)

	wantOrder := []int64{2, 3, 4, 1}
	for i, id := range wantOrder {
		if entries[i].ID != id {
			t.Fatalf("position %d: got id %d, want %d", i, entries[i].ID, id)
		}
	}
}

func TestNewIDUnique(t *testing.T) {
	existing := []Entry{{ID: 1}, {ID: 2}, {ID: 3}}
	seen := map[int64]bool{1: true, 2: true, 3: true}
	for i := 0; i < 10; i++ {
		id := NewID(existing)
		if id == 0 {
			t.Fatalf("NewID returned zero")
		}
		if seen[id] {
			t.Fatalf("NewID returned duplicate %d", id)
		}
		seen[id] = true
		existing = append(existing, Entry{ID: id})
	}
}
