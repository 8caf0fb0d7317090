package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/device-quote/internal/catalog"
	"github.com/donaldgifford/device-quote/internal/config"
	"github.com/donaldgifford/device-quote/internal/engine"
	"github.com/donaldgifford/device-quote/internal/notify"
	"github.com/donaldgifford/device-quote/internal/store"
)

// loadConfig reads the dotenv file, then the YAML config that may
// reference its variables.
func loadConfig() (*config.Config, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func storeOptions(cfg *config.Config) store.OpenOptions {
	return store.OpenOptions{
		Backend:     cfg.Store.Backend,
		PostgresDSN: cfg.Store.Postgres.DSN(),
		Firestore: store.FirestoreOptions{
			ProjectID:    cfg.Store.Firestore.ProjectID,
			EmulatorHost: cfg.Store.Firestore.EmulatorHost,
			DialTimeout:  cfg.Store.Firestore.DialTimeout,
		},
		PebbleDir: cfg.Store.Pebble.Dir,
	}
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	st, err := store.Open(ctx, storeOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Store.Backend, err)
	}
	return st, nil
}

func newNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	if cfg.Notifications.Discord.Enabled {
		return notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	}
	return notify.NewNoOpNotifier(log)
}

func newEngine(cfg *config.Config, cat *catalog.Catalog, st store.Store, log *slog.Logger) *engine.Engine {
	return engine.NewEngine(cat, st, newNotifier(cfg, log),
		engine.WithLogger(log),
		engine.WithPolicy(cfg.Quote.Policy),
		engine.WithCurrency(cfg.Quote.Currency),
		engine.WithReadTimeout(cfg.Quote.StoreTimeout),
		engine.WithAuditWorkers(cfg.Quote.AuditWorkers),
	)
}
