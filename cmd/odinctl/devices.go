package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vstars/odinctl/flasher"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List devices visible to odin4",
	Long:  "Runs \"odin4 -l\" and prints the reported device paths. A failed\nscan is reported as unknown, distinct from a successful scan that\nfound nothing.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := flasher.New(flasher.WithLogger(glogLogger{}))
		report := f.RefreshDevices(context.Background(), odinPath())

		switch report.Status {
		case flasher.DeviceStatusFound:
			fmt.Printf("%d device(s) found:\n", len(report.Devices))
			for _, path := range report.Devices {
				fmt.Printf("  %s\n", path)
			}
		case flasher.DeviceStatusNoneFound:
			fmt.Println("no devices found")
		default:
			return fmt.Errorf("device status unknown: the list command failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
