package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/vstars/odinctl/firmware"
	"github.com/vstars/odinctl/profile"
)

var (
	flagDetectProfile    string
	flagDetectPreferHome bool
	flagDetectSave       bool
	flagDetectWatch      bool
)

var detectCmd = &cobra.Command{
	Use:   "detect [dir]",
	Short: "Resolve firmware files in a directory",
	Long:  "Scans a firmware directory for BL/AP/CP/CSC files by name pattern\nand prints the first lexicographic match per part. With --watch the\ndirectory is rescanned whenever its contents change.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cliCfg.FirmwareDir
		if len(args) > 0 {
			dir = args[0]
		}
		if dir == "" {
			return fmt.Errorf("no firmware directory given (argument or firmware_dir in config)")
		}

		patterns := firmware.DefaultPatterns()
		preferHome := appSettings.PreferHomeCSC
		if flagDetectProfile != "" {
			prof, err := loadProfile(flagDetectProfile)
			if err != nil {
				return err
			}
			patterns = prof.PatternSet()
			preferHome = prof.DefaultCSCPreferHome
		}
		if cmd.Flags().Changed("prefer-home-csc") {
			preferHome = flagDetectPreferHome
		}

		scan := func() firmware.ResolvedSet {
			files := firmware.Detect(dir, patterns, preferHome)
			printResolved(files)
			return files
		}

		files := scan()
		if flagDetectSave {
			appSettings.SetResolvedFiles(files)
			appSettings.PreferHomeCSC = preferHome
			if flagDetectProfile != "" {
				appSettings.LastProfileID = flagDetectProfile
			}
			saveSettings()
		}

		if !flagDetectWatch {
			return nil
		}
		return watchDirectory(dir, func() { scan() })
	},
}

// printResolved writes one line per flashable part, marking unresolved ones.
func printResolved(files firmware.ResolvedSet) {
	for _, key := range firmware.PartOrder {
		path := files[key]
		if path == "" {
			path = "(not found)"
		}
		fmt.Printf("%-4s %s\n", key, path)
	}
}

// watchDirectory rescans on filesystem changes until interrupted. Events are
// debounced so an unpacking archive triggers one rescan, not hundreds.
func watchDirectory(dir string, rescan func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	fmt.Printf("watching %s, press Ctrl-C to stop\n", dir)

	const debounce = 300 * time.Millisecond
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			glog.V(1).Infof("fs event: %s", event)
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			glog.Errorf("watch error: %v", err)
		case <-timer.C:
			fmt.Println()
			rescan()
		case <-stop:
			return nil
		}
	}
}

// loadProfile loads the profiles document and returns the profile with the
// given ID.
func loadProfile(id string) (*profile.Profile, error) {
	profiles, err := loadProfiles()
	if err != nil {
		return nil, err
	}
	prof := profile.Find(profiles, id)
	if prof == nil {
		return nil, fmt.Errorf("no profile with id %q", id)
	}
	return prof, nil
}

// loadProfiles reads the profiles document from the configured location. A
// missing file at the default location yields an empty list.
func loadProfiles() ([]profile.Profile, error) {
	path := flagProfilesPath
	if path == "" {
		path = cliCfg.ProfilesPath
	}
	explicit := path != ""
	if !explicit {
		var err error
		path, err = profile.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	profiles, err := profile.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return profiles, nil
}

func init() {
	detectCmd.Flags().StringVar(&flagDetectProfile, "profile", "", "resolve with the named profile's patterns")
	detectCmd.Flags().BoolVar(&flagDetectPreferHome, "prefer-home-csc", true, "prefer HOME_CSC over CSC when both match")
	detectCmd.Flags().BoolVar(&flagDetectSave, "save", false, "persist the resolved files to settings")
	detectCmd.Flags().BoolVar(&flagDetectWatch, "watch", false, "keep rescanning when the directory changes")
	rootCmd.AddCommand(detectCmd)
}
