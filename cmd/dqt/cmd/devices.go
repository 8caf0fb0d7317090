package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/device-quote/internal/api/client"
)

func devicesCmd() *cobra.Command {
	devicesRoot := &cobra.Command{
		Use:   "devices",
		Short: "Browse the device catalog",
		Long: "Browse the device catalog and inspect the prices and repair\n" +
			"options the pricing store holds for a device.",
	}

	devicesRoot.AddCommand(
		devicesListCmd(),
		devicesShowCmd(),
		devicesPricesCmd(),
		devicesRepairsCmd(),
	)

	return devicesRoot
}

func devicesListCmd() *cobra.Command {
	var filter apiclient.DeviceFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog devices",
		Example: `  dqt devices list
  dqt devices list --brand apple --category smartphone
  dqt devices list --query "galaxy fold" --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			devices, err := newClient().ListDevices(context.Background(), filter)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(devices)
			}
			if len(devices) == 0 {
				fmt.Println("No devices found.")
				return nil
			}
			return printDeviceTable(devices)
		},
	}

	cmd.Flags().StringVar(&filter.Brand, "brand", "", "brand, case insensitive")
	cmd.Flags().StringVar(&filter.Category, "category", "",
		"category (smartphone, tablet, smartwatch, console_home, console_portable)")
	cmd.Flags().StringVar(&filter.Query, "query", "", "substring of the device id")

	return cmd
}

func devicesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <device>",
		Short: "Show a catalog device",
		Example: `  dqt devices show apple-iphone-13
  dqt devices show "Apple iPhone 13" --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			d, err := newClient().GetDevice(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(d)
			}
			return printDeviceDetail(d)
		},
	}
}

func devicesPricesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "prices <device>",
		Short:   "Show normalized repair prices and buyback rows",
		Example: `  dqt devices prices apple-iphone-13`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := newClient().DevicePricing(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(p)
			}
			return printDevicePricing(p)
		},
	}
}

func devicesRepairsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "repairs <device>",
		Short:   "List the repairs offered for a device",
		Example: `  dqt devices repairs samsung-galaxy-s21`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts, err := newClient().RepairOptions(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(opts)
			}
			if len(opts) == 0 {
				fmt.Println("No repairs offered.")
				return nil
			}
			return printRepairOptions(opts)
		},
	}
}

func brandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brands",
		Short: "List catalog brands",
		RunE: func(_ *cobra.Command, _ []string) error {
			brands, err := newClient().Brands(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(brands)
			}
			for _, b := range brands {
				fmt.Println(b)
			}
			return nil
		},
	}
}

func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <slug>",
		Short: "Show the pricing-store key for a slug",
		Example: `  dqt normalize "Apple iPhone 13 Pro"
  dqt normalize samsung_galaxy_z_fold_5`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := newClient().Normalize(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(r)
			}
			fmt.Printf("%s\t(in catalog: %v)\n", r.DeviceID, r.InCatalog)
			return nil
		},
	}
}
