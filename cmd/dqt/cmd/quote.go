package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/device-quote/pkg/types"
)

func quoteCmd() *cobra.Command {
	quoteRoot := &cobra.Command{
		Use:   "quote",
		Short: "Request repair or buyback quotes",
		Long: "Request a price estimate for a device. Quotes are not stored;\n" +
			"the price is recomputed when an order is submitted.",
	}

	quoteRoot.AddCommand(quoteRepairCmd(), quoteBuybackCmd())

	return quoteRoot
}

func quoteRepairCmd() *cobra.Command {
	var (
		issues  []string
		quality string
	)

	cmd := &cobra.Command{
		Use:   "repair <device>",
		Short: "Quote a repair",
		Long: "Quote one or more repairs. Selecting \"other\" requests a diagnostic\n" +
			"and drops every other issue. The screen issue is priced at the chosen\n" +
			"quality; the table also shows all three screen tiers.",
		Example: `  dqt quote repair apple-iphone-13 --issue screen --issue battery --quality oled
  dqt quote repair "Samsung Galaxy S21" --issue back_glass --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runQuote(&domain.QuoteRequest{
				DeviceSlug:            args[0],
				Type:                  domain.QuoteRepair,
				SelectedRepairs:       issues,
				SelectedScreenQuality: quality,
			})
		},
	}

	cmd.Flags().StringArrayVar(&issues, "issue", nil, "repair issue id (repeatable)")
	cmd.Flags().StringVar(&quality, "quality", "", "screen quality (generic, oled, original)")

	return cmd
}

func quoteBuybackCmd() *cobra.Command {
	var (
		answers     domain.ConditionAnswers
		turnsOn     bool
		works       bool
		unlocked    bool
		faceID      bool
		controllers int
	)

	cmd := &cobra.Command{
		Use:   "buyback <device>",
		Short: "Quote a buyback payout",
		Long: "Quote what the device would be bought back for. Unanswered\n" +
			"questions are treated as the best case.",
		Example: `  dqt quote buyback apple-iphone-13 --storage 128GB
  dqt quote buyback apple-iphone-13 --storage 256GB --screen cracked --battery service
  dqt quote buyback sony-playstation-5 --controllers 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("turns-on") {
				answers.TurnsOn = &turnsOn
			}
			if flags.Changed("works") {
				answers.WorksCorrectly = &works
			}
			if flags.Changed("unlocked") {
				answers.IsUnlocked = &unlocked
			}
			if flags.Changed("face-id") {
				answers.FaceIDWorking = &faceID
			}
			if flags.Changed("controllers") {
				answers.ControllerCount = &controllers
			}

			return runQuote(&domain.QuoteRequest{
				DeviceSlug:       args[0],
				Type:             domain.QuoteBuyback,
				ConditionAnswers: answers,
			})
		},
	}

	cmd.Flags().StringVar(&answers.Storage, "storage", "", "storage tier, e.g. 128GB")
	cmd.Flags().BoolVar(&turnsOn, "turns-on", true, "device powers on")
	cmd.Flags().BoolVar(&works, "works", true, "all functions work")
	cmd.Flags().BoolVar(&unlocked, "unlocked", true, "free of carrier and account locks")
	cmd.Flags().BoolVar(&faceID, "face-id", true, "Face ID / Touch ID works")
	cmd.Flags().StringVar(&answers.BatteryHealth, "battery", "", "battery health (normal, service)")
	cmd.Flags().StringVar(&answers.ScreenState, "screen", "", "screen state (flawless, scratches, cracked)")
	cmd.Flags().StringVar(&answers.BodyState, "body", "", "body state (flawless, scratches, dents, bent)")
	cmd.Flags().IntVar(&controllers, "controllers", 1, "controllers included (consoles)")

	return cmd
}

func runQuote(req *domain.QuoteRequest) error {
	resp, err := newClient().Quote(context.Background(), req)
	if err != nil {
		return err
	}
	if jsonOutput() {
		return outputJSON(resp)
	}
	if !resp.Success {
		return errors.New(resp.Error)
	}
	if resp.PriceOnRequest {
		fmt.Printf("%s: price on request.\n", resp.DeviceID)
		return nil
	}
	return printQuoteDetail(resp.QuoteResult)
}
