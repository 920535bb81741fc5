package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vstars/odinctl/firmware"
	"github.com/vstars/odinctl/flasher"
	"github.com/vstars/odinctl/odin"
)

var (
	flagPartBL  string
	flagPartAP  string
	flagPartCP  string
	flagPartCSC string
	flagPartUMS string

	flagEraseNand    bool
	flagHomeValidate bool
	flagReboot       bool
	flagRedownload   bool

	flagListedDevice string
	flagDevicePath   string

	flagAcceptRisk   bool
	flagDownloadMode bool
	flagAssumeYes    bool
)

var flashCmd = &cobra.Command{
	Use:   "flash",
	Short: "Flash the resolved firmware files onto the device",
	Long:  "Builds the odin4 invocation from the persisted file selection,\nflag overrides and device choice, shows it, asks for confirmation and\nruns it with live output.\n\nFlashing firmware can permanently damage a device. Both\n--i-understand-risks and --download-mode must be given.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, opts := assembleInvocation(cmd)
		binPath := odinPath()

		if err := flasher.Preflight(binPath, files, flagAcceptRisk, flagDownloadMode); err != nil {
			return err
		}

		argv := odin.BuildCommand(binPath, files, opts)
		fmt.Println(odin.Preview(argv))
		if !flagAssumeYes && !confirm("Proceed with flashing?") {
			return fmt.Errorf("aborted")
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		f := flasher.New(
			flasher.WithLogger(glogLogger{}),
			flasher.WithOutputCallback(func(line string) { fmt.Println(line) }),
		)
		if err := f.Start(ctx, argv); err != nil {
			return err
		}
		result, err := f.Wait()
		if err != nil {
			return err
		}

		persistInvocation(files, opts)

		if result.ExitCode != 0 {
			return fmt.Errorf("flash finished with exit code %d after %s", result.ExitCode, result.Elapsed.Round(time.Second))
		}
		fmt.Printf("flash completed in %s\n", result.Elapsed.Round(time.Second))
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the odin4 command that flash would run",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, opts := assembleInvocation(cmd)
		argv := odin.BuildCommand(odinPath(), files, opts)
		if len(argv) == 0 {
			return fmt.Errorf("no odin4 binary configured (use --odin or settings)")
		}
		fmt.Println(odin.Preview(argv))
		return nil
	},
}

// assembleInvocation merges the persisted settings with any flag overrides
// into the file selection and options for one flash invocation.
func assembleInvocation(cmd *cobra.Command) (firmware.ResolvedSet, odin.Options) {
	files := appSettings.ResolvedFiles()
	for _, override := range []struct {
		key  firmware.PartKey
		path string
	}{
		{firmware.BL, flagPartBL},
		{firmware.AP, flagPartAP},
		{firmware.CP, flagPartCP},
		{firmware.CSC, flagPartCSC},
		{firmware.UMS, flagPartUMS},
	} {
		if override.path != "" {
			files[override.key] = override.path
		}
	}

	opts := appSettings.FlashOptions()
	if cmd.Flags().Changed("erase-nand") {
		opts.NandErase = flagEraseNand
	}
	if cmd.Flags().Changed("home-validate") {
		opts.HomeValidate = flagHomeValidate
	}
	if cmd.Flags().Changed("reboot") {
		opts.Reboot = flagReboot
	}
	if cmd.Flags().Changed("redownload") {
		opts.Redownload = flagRedownload
	}
	if cmd.Flags().Changed("device-path") {
		opts.ManualDevice = flagDevicePath
	}
	opts.ListedDevice = flagListedDevice
	return files, opts
}

// persistInvocation records what was flashed so the next run starts from it.
func persistInvocation(files firmware.ResolvedSet, opts odin.Options) {
	appSettings.SetResolvedFiles(files)
	appSettings.Flags.NandErase = opts.NandErase
	appSettings.Flags.HomeValidate = opts.HomeValidate
	appSettings.Flags.Reboot = opts.Reboot
	appSettings.Flags.Redownload = opts.Redownload
	appSettings.DevicePath = opts.ManualDevice
	saveSettings()
}

// addInvocationFlags registers the flags shared by flash and preview.
func addInvocationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPartBL, "bl", "", "BL file, overriding the detected one")
	cmd.Flags().StringVar(&flagPartAP, "ap", "", "AP file, overriding the detected one")
	cmd.Flags().StringVar(&flagPartCP, "cp", "", "CP file, overriding the detected one")
	cmd.Flags().StringVar(&flagPartCSC, "csc", "", "CSC file, overriding the detected one")
	cmd.Flags().StringVar(&flagPartUMS, "ums", "", "UMS file (never auto-detected)")

	cmd.Flags().BoolVar(&flagEraseNand, "erase-nand", false, "erase NAND before flashing")
	cmd.Flags().BoolVar(&flagHomeValidate, "home-validate", false, "validate home binary")
	cmd.Flags().BoolVar(&flagReboot, "reboot", true, "reboot when flashing completes")
	cmd.Flags().BoolVar(&flagRedownload, "redownload", false, "re-enter download mode after flashing")

	cmd.Flags().StringVar(&flagListedDevice, "device", "", "target device path from the device list")
	cmd.Flags().StringVar(&flagDevicePath, "device-path", "", "manually typed target device path")
}

func init() {
	addInvocationFlags(flashCmd)
	flashCmd.Flags().BoolVar(&flagAcceptRisk, "i-understand-risks", false, "acknowledge that flashing can brick the device")
	flashCmd.Flags().BoolVar(&flagDownloadMode, "download-mode", false, "confirm the device is in download mode")
	flashCmd.Flags().BoolVarP(&flagAssumeYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(flashCmd)

	addInvocationFlags(previewCmd)
	rootCmd.AddCommand(previewCmd)
}
