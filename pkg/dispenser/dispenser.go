// Package dispenser runs the daily dispense jobs derived from the
// medication schedule.
package dispenser

import (
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/amarlabs/amar/pkg/schedule"
)

// Dispenser keeps one daily cron job per schedule entry. OnDispense runs on
// the cron goroutine when a job fires.
type Dispenser struct {
	OnDispense func(schedule.Entry)

	mu      sync.Mutex
	cron    *cron.Cron
	entries map[int64]cron.EntryID
	log     *zap.Logger
}

// New builds a stopped dispenser.
func New(log *zap.Logger) *Dispenser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispenser{
		cron:    cron.New(),
		entries: make(map[int64]cron.EntryID),
		log:     log,
	}
}

// Start begins firing scheduled jobs.
func (d *Dispenser) Start() {
	d.cron.Start()
}

// Stop halts the scheduler and waits for a running job to finish.
func (d *Dispenser) Stop() {
	ctx := d.cron.Stop()
	<-ctx.Done()
}

// Sync reconciles the cron jobs with the given entries: stale jobs are
// removed, new or changed entries are (re)installed. Entries with an
// unparseable time are logged and skipped.
func (d *Dispenser) Sync(entries []schedule.Entry) {
	d.mu.Lock()
	defer d.mu.Unlock()

	keep := make(map[int64]bool, len(entries))
	for _, e := range entries {
		keep[e.ID] = true
	}
	for id, entryID := range d.entries {
		if !keep[id] {
			d.cron.Remove(entryID)
			delete(d.entries, id)
		}
	}

	for _, e := range entries {
		if existing, ok := d.entries[e.ID]; ok {
			d.cron.Remove(existing)
			delete(d.entries, e.ID)
		}
		hour, minute, err := schedule.ParseTime(e.Time)
		if err != nil {
			d.log.Warn("skipping schedule entry with bad time",
				zap.Int64("id", e.ID), zap.String("time", e.Time))
			continue
		}
		entry := e
		spec := fmt.Sprintf("%d %d * * *", minute, hour)
		entryID, err := d.cron.AddFunc(spec, func() {
			if d.OnDispense != nil {
				d.OnDispense(entry)
			}
		})
		if err != nil {
			d.log.Warn("failed to install dispense job",
				zap.Int64("id", e.ID), zap.Error(err))
			continue
		}
		d.entries[e.ID] = entryID
		d.log.Info("dispense job installed",
			zap.Int64("id", e.ID), zap.String("name", e.Name), zap.String("at", e.Time))
	}
}

// Jobs returns the ids with an installed cron job, for inspection.
func (d *Dispenser) Jobs() []int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	ids := make([]int64, 0, len(d.entries))
	for id := range d.entries {
		ids = append(ids, id)
	}
	return ids
}
