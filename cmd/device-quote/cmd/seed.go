package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/device-quote/internal/store"
	"github.com/donaldgifford/device-quote/pkg/logger"
)

func seedCommand() *cobra.Command {
	var (
		file    string
		migrate bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a YAML price sheet into the pricing store",
		Example: `  device-quote seed --file prices.yaml
  device-quote seed --file prices.yaml --migrate --config config.pebble.yaml`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := logger.NewConsole(os.Stderr, cfg.Logging.Level)

			f, err := os.Open(file) //nolint:gosec // path from trusted CLI flag
			if err != nil {
				return fmt.Errorf("opening price sheet: %w", err)
			}
			defer f.Close()

			sheet, err := store.LoadPriceSheet(f)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			if migrate {
				if err := st.Migrate(ctx); err != nil {
					return fmt.Errorf("running migrations: %w", err)
				}
			}

			stats, err := store.Seed(ctx, st, sheet)
			if err != nil {
				return err
			}

			log.Info("price sheet loaded",
				"backend", cfg.Store.Backend,
				"repairs", stats.Repairs,
				"buybacks", stats.Buybacks,
				"anchors", stats.Anchors,
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "price sheet YAML file")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "run migrations before seeding")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))

	return cmd
}

func init() {
	rootCmd.AddCommand(seedCommand())
}
