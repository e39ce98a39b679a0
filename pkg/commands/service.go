package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/amarlabs/amar/pkg/app"
	"github.com/amarlabs/amar/pkg/assistant"
	"github.com/amarlabs/amar/pkg/dispenser"
	"github.com/amarlabs/amar/pkg/logging"
	"github.com/amarlabs/amar/pkg/state"
	"github.com/amarlabs/amar/pkg/store"
)

// loadService assembles the full service from config: persistence, logger,
// state (seeded with the demo data set, then overlaid with whatever was
// persisted), assistant backend and dispenser.
func loadService(ctx context.Context) (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.BasePath())
	if err != nil {
		return nil, err
	}

	st := state.NewSeeded(p.SaveProfile)
	if prof, ok, err := p.LoadProfile(); err != nil {
		return nil, err
	} else if ok {
		if err := st.SetProfile(prof); err != nil {
			return nil, err
		}
	}
	if records, err := p.History(); err != nil {
		log.Warn("failed to load dispense history", zap.Error(err))
	} else {
		for _, r := range records {
			st.AppendDispense(r)
		}
	}

	var client assistant.Client
	switch cfg.AssistantBackend() {
	case "gemini":
		client, err = assistant.NewGemini(ctx, cfg.AssistantModel(), log)
		if err != nil {
			log.Warn("gemini unavailable, falling back to simulated assistant", zap.Error(err))
			client = assistant.NewSimulated()
		}
	default:
		client = assistant.NewSimulated()
	}

	return &app.Service{
		State:       st,
		Persistence: p,
		Assistant:   client,
		Dispenser:   dispenser.New(log),
		Notifier:    &app.LogNotifier{Log: log},
		Policy:      cfg.Policy(),
		Log:         log,
	}, nil
}
