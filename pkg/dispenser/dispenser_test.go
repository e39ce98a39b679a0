package dispenser

import (
	"testing"

	"github.com/amarlabs/amar/pkg/schedule"
)

func jobSet(d *Dispenser) map[int64]bool {
	set := make(map[int64]bool)
	for _, id := range d.Jobs() {
		set[id] = true
	}
	return set
}

func TestSyncInstallsAndRemovesJobs(t *testing.T) {
	d := New(nil)

	d.Sync([]schedule.Entry{
		{ID: 1, Name: "Metformin", Time: "08:00", Compartment: 1},
		{ID: 2, Name: "Lisinopril", Time: "14:30", Compartment: 2},
	})
	jobs := jobSet(d)
	if len(jobs) != 2 || !jobs[1] || !jobs[2] {
		t.Fatalf("unexpected jobs after install: %v", jobs)
	}

	// entry 2 removed, entry 3 added, entry 1 rescheduled
	d.Sync([]schedule.Entry{
		{ID: 1, Name: "Metformin", Time: "09:00", Compartment: 1},
		{ID: 3, Name: "Aspirin", Time: "20:00", Compartment: 3},
	})
	jobs = jobSet(d)
	if len(jobs) != 2 || !jobs[1] || !jobs[3] {
		t.Fatalf("unexpected jobs after resync: %v", jobs)
	}
	if jobs[2] {
		t.Fatalf("stale job 2 survived resync")
	}
}

func TestSyncSkipsBadTimes(t *testing.T) {
	d := New(nil)
	d.Sync([]schedule.Entry{
		{ID: 1, Name: "Metformin", Time: "bogus", Compartment: 1},
		{ID: 2, Name: "Lisinopril", Time: "14:30", Compartment: 2},
	})
	jobs := jobSet(d)
	if jobs[1] {
		t.Fatalf("entry with bad time got a job")
	}
	if !jobs[2] {
		t.Fatalf("valid entry missing a job")
	}
}

func TestSyncEmptyClearsAll(t *testing.T) {
	d := New(nil)
	d.Sync([]schedule.Entry{{ID: 1, Name: "Metformin", Time: "08:00", Compartment: 1}})
	d.Sync(nil)
	if got := d.Jobs(); len(got) != 0 {
		t.Fatalf("jobs survived an empty sync: %v", got)
	}
}
