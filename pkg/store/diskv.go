package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/amarlabs/amar/pkg/history"
	"github.com/amarlabs/amar/pkg/profile"
)

const (
	profileKey    = "profile"
	historyPrefix = "history-"
)

// Persistence is the durable storage contract: the profile blob under one
// fixed key, plus the append-only dispense history.
type Persistence interface {
	LoadProfile() (profile.Profile, bool, error)
	SaveProfile(profile.Profile) error
	AppendHistory(history.DispenseRecord) error
	History() ([]history.DispenseRecord, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) LoadProfile() (profile.Profile, bool, error) {
	if !p.d.Has(profileKey) {
		return profile.Profile{}, false, nil
	}
	data, err := p.d.Read(profileKey)
	if err != nil {
		return profile.Profile{}, false, fmt.Errorf("store: read profile: %w", err)
	}
	var pr profile.Profile
	if err := json.Unmarshal(data, &pr); err != nil {
		return profile.Profile{}, false, fmt.Errorf("store: decode profile: %w", err)
	}
	return pr, true, nil
}

func (p *persistence) SaveProfile(pr profile.Profile) error {
	data, err := json.Marshal(pr)
	if err != nil {
		return err
	}
	return p.d.Write(profileKey, data)
}

func (p *persistence) AppendHistory(r history.DispenseRecord) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("%s%020d", historyPrefix, nextHistorySeq())
	return p.d.Write(key, data)
}

func (p *persistence) History() ([]history.DispenseRecord, error) {
	keys := make([]string, 0)
	for key := range p.d.Keys(nil) {
		if strings.HasPrefix(key, historyPrefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	records := make([]history.DispenseRecord, 0, len(keys))
	for _, key := range keys {
		data, err := p.d.Read(key)
		if err != nil {
			return nil, fmt.Errorf("store: read %s: %w", key, err)
		}
		var r history.DispenseRecord
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("store: decode %s: %w", key, err)
		}
		records = append(records, r)
	}
	return records, nil
}
