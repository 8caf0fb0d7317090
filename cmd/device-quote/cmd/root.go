// Package cmd implements the CLI commands for device-quote.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "device-quote",
	Short: "Repair and buyback quotes for phones, tablets and consoles",
	Long: "An API-first service that prices device repairs and buybacks from a\n" +
		"pricing store, gates buyback payouts behind manually managed anchors,\n" +
		"and audits the catalog for devices without usable prices.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")

	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
