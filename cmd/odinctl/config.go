package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// cliConfig is the optional YAML config file for defaults that rarely
// change, as opposed to the settings file which records last-used state.
type cliConfig struct {
	OdinPath     string `yaml:"odin_path"`
	ADBPath      string `yaml:"adb_path"`
	FirmwareDir  string `yaml:"firmware_dir"`
	SettingsPath string `yaml:"settings_path"`
	ProfilesPath string `yaml:"profiles_path"`
}

// loadCLIConfig reads the YAML config. With an explicit path the file must
// exist and parse; the default location is optional and silently skipped
// when absent.
func loadCLIConfig(path string) (cliConfig, error) {
	explicit := path != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cliConfig{}, nil
		}
		path = filepath.Join(dir, "odinctl", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cliConfig{}, nil
		}
		return cliConfig{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg cliConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cliConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
