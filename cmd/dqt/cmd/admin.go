package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func anchorCmd() *cobra.Command {
	anchorRoot := &cobra.Command{
		Use:   "anchor",
		Short: "Manage buyback pricing anchors",
		Long: "A device's buyback prices only reach customers while its pricing\n" +
			"anchor is marked as managed manually.",
	}

	anchorRoot.AddCommand(anchorSetCmd(true), anchorSetCmd(false))

	return anchorRoot
}

func anchorSetCmd(managed bool) *cobra.Command {
	name, short := "enable", "Publish buyback prices for a device"
	if !managed {
		name, short = "disable", "Hide buyback prices for a device"
	}

	return &cobra.Command{
		Use:     name + " <device>",
		Short:   short,
		Example: "  dqt anchor " + name + " apple-iphone-13",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			anchor, err := newClient().SetAnchor(context.Background(), args[0], managed)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(anchor)
			}
			fmt.Printf("Buyback anchor for %s %sd.\n", anchor.DeviceID, name)
			return nil
		},
	}
}

func auditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Run a pricing audit on the server",
		Long: "Scans the catalog for devices without prices, contact-for-price\n" +
			"items and inactive buyback anchors.",
		RunE: func(_ *cobra.Command, _ []string) error {
			report, err := newClient().RunAudit(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(report)
			}
			return printAuditReport(report)
		},
	}
}
