package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vstars/odinctl/adb"
	"github.com/vstars/odinctl/flasher"
)

var flagADBSerial string

var adbCmd = &cobra.Command{
	Use:   "adb",
	Short: "Run common adb operations",
	Long:  "Convenience wrappers around the adb binary. Use --serial to scope a\ncommand to one device when several are attached.",
}

// runADB executes one adb invocation and prints its output. A non-zero exit
// becomes an error carrying adb's stderr.
func runADB(args []string) error {
	binPath := adbPath()
	if binPath == "" {
		return fmt.Errorf("no adb binary configured (use --adb or settings)")
	}

	f := flasher.New(flasher.WithLogger(glogLogger{}))
	stdout, stderr, exitCode, err := f.Run(context.Background(), binPath, args)
	if err != nil {
		return err
	}
	if stdout != "" {
		fmt.Print(stdout)
	}
	if exitCode != 0 {
		return fmt.Errorf("adb exited with code %d: %s", exitCode, strings.TrimSpace(stderr))
	}
	if stderr != "" {
		fmt.Print(stderr)
	}
	return nil
}

var adbDevicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List devices visible to adb",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		binPath := adbPath()
		if binPath == "" {
			return fmt.Errorf("no adb binary configured (use --adb or settings)")
		}

		f := flasher.New(flasher.WithLogger(glogLogger{}))
		stdout, stderr, exitCode, err := f.Run(context.Background(), binPath, adb.DevicesCommand())
		if err != nil {
			return err
		}
		if exitCode != 0 {
			return fmt.Errorf("adb exited with code %d: %s", exitCode, strings.TrimSpace(stderr))
		}

		devices := adb.ParseDevices(stdout)
		if len(devices) == 0 {
			fmt.Println("no devices attached")
			return nil
		}
		for _, d := range devices {
			fmt.Printf("%-24s %s\n", d.Serial, d.State)
		}
		return nil
	},
}

var adbRebootCmd = &cobra.Command{
	Use:       "reboot [system|download|recovery]",
	Short:     "Reboot the device, optionally into download or recovery mode",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"system", "download", "recovery"},
	RunE: func(cmd *cobra.Command, args []string) error {
		target := adb.RebootSystem
		if len(args) > 0 && args[0] != "system" {
			target = args[0]
		}
		return runADB(adb.RebootCommand(flagADBSerial, target))
	},
}

var adbPushCmd = &cobra.Command{
	Use:   "push <local> <remote>",
	Short: "Copy a local file to the device",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runADB(adb.PushCommand(flagADBSerial, args[0], args[1]))
	},
}

var adbPullCmd = &cobra.Command{
	Use:   "pull <remote> <local>",
	Short: "Copy a file from the device",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runADB(adb.PullCommand(flagADBSerial, args[0], args[1]))
	},
}

var adbInstallCmd = &cobra.Command{
	Use:   "install <apk>",
	Short: "Install an APK, replacing an existing installation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runADB(adb.InstallCommand(flagADBSerial, args[0]))
	},
}

var adbShellCmd = &cobra.Command{
	Use:   "shell <command line>",
	Short: "Run a shell command on the device",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invocation, err := adb.ShellCommand(flagADBSerial, strings.Join(args, " "))
		if err != nil {
			return err
		}
		return runADB(invocation)
	},
}

var adbKillServerCmd = &cobra.Command{
	Use:   "kill-server",
	Short: "Stop the local adb server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runADB(adb.KillServerCommand())
	},
}

var adbStartServerCmd = &cobra.Command{
	Use:   "start-server",
	Short: "Start the local adb server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runADB(adb.StartServerCommand())
	},
}

func init() {
	adbCmd.PersistentFlags().StringVarP(&flagADBSerial, "serial", "s", "", "device serial to scope the command to")
	adbCmd.AddCommand(adbDevicesCmd, adbRebootCmd, adbPushCmd, adbPullCmd,
		adbInstallCmd, adbShellCmd, adbKillServerCmd, adbStartServerCmd)
	rootCmd.AddCommand(adbCmd)
}
