// Command odinctl wraps the odin4 flashing tool and adb: it resolves
// firmware files from a directory, builds and previews flash invocations,
// runs them with streamed output, and exposes the usual adb conveniences.
package main

import (
	"bufio"
	goflag "flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/vstars/odinctl/flasher"
	"github.com/vstars/odinctl/settings"
)

var (
	flagConfig       string
	flagSettingsPath string
	flagProfilesPath string
	flagOdin         string
	flagADB          string

	cliCfg       cliConfig
	appSettings  settings.Settings
	settingsPath string
)

var rootCmd = &cobra.Command{
	Use:           "odinctl",
	Short:         "Odin4 wrapper + device tools",
	Long:          "odinctl wraps the odin4 Samsung flashing tool and adb:\nfirmware auto-detection, deterministic command construction, and\ndevice management from one place.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// setup loads the optional YAML config and the persisted settings. Settings
// load is best effort: a corrupt file is logged and replaced by defaults.
func setup() error {
	cfg, err := loadCLIConfig(flagConfig)
	if err != nil {
		return err
	}
	cliCfg = cfg

	settingsPath = flagSettingsPath
	if settingsPath == "" {
		settingsPath = cliCfg.SettingsPath
	}
	if settingsPath == "" {
		settingsPath, err = settings.DefaultPath()
		if err != nil {
			return err
		}
	}

	appSettings, err = settings.Load(settingsPath)
	if err != nil {
		glog.Warningf("ignoring settings file: %v", err)
	}
	return nil
}

// odinPath resolves the odin4 binary: flag, then config file, then persisted
// settings, then auto-discovery.
func odinPath() string {
	for _, path := range []string{flagOdin, cliCfg.OdinPath, appSettings.OdinPath} {
		if path != "" {
			return path
		}
	}
	return flasher.LocateOdin()
}

// adbPath resolves the adb binary with the same precedence as odinPath.
func adbPath() string {
	for _, path := range []string{flagADB, cliCfg.ADBPath, appSettings.ADBPath} {
		if path != "" {
			return path
		}
	}
	return flasher.LocateADB()
}

// saveSettings persists the working settings, recording the resolved tool
// paths so the next run finds them without flags.
func saveSettings() {
	if path := odinPath(); path != "" {
		appSettings.OdinPath = path
	}
	if path := adbPath(); path != "" {
		appSettings.ADBPath = path
	}
	if err := settings.Save(settingsPath, appSettings); err != nil {
		glog.Errorf("failed to save settings: %v", err)
	}
}

// confirm asks a yes/no question on the terminal and reports the answer.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// glogLogger adapts glog to the flasher Logger interface.
type glogLogger struct{}

func (glogLogger) Debug(msg string, keysAndValues ...interface{}) {
	glog.V(1).Infoln(append([]interface{}{msg}, keysAndValues...)...)
}

func (glogLogger) Info(msg string, keysAndValues ...interface{}) {
	glog.Infoln(append([]interface{}{msg}, keysAndValues...)...)
}

func (glogLogger) Error(msg string, keysAndValues ...interface{}) {
	glog.Errorln(append([]interface{}{msg}, keysAndValues...)...)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagSettingsPath, "settings", "", "path to settings file")
	rootCmd.PersistentFlags().StringVar(&flagProfilesPath, "profiles", "", "path to device profiles file")
	rootCmd.PersistentFlags().StringVar(&flagOdin, "odin", "", "path to the odin4 binary")
	rootCmd.PersistentFlags().StringVar(&flagADB, "adb", "", "path to the adb binary")
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	defer glog.Flush()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
