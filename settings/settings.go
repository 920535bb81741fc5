package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vstars/odinctl/firmware"
	"github.com/vstars/odinctl/odin"
)

// Flags are the persisted boolean flash options.
type Flags struct {
	NandErase    bool `json:"nand_erase"`
	HomeValidate bool `json:"home_validate"`
	Reboot       bool `json:"reboot"`
	Redownload   bool `json:"redownload"`
}

// Settings is the persisted application state. Field names mirror the keys
// written by earlier releases so existing settings files keep working.
type Settings struct {
	OdinPath      string            `json:"odin_path"`
	ADBPath       string            `json:"adb_path"`
	Files         map[string]string `json:"files"`
	Flags         Flags             `json:"flags"`
	DevicePath    string            `json:"device_path"`
	PreferHomeCSC bool              `json:"prefer_home_csc"`
	LastProfileID string            `json:"last_profile_id"`
	Language      string            `json:"language"`
}

// Default returns the settings used when nothing is persisted yet. Reboot
// after flash and the HOME_CSC preference start enabled.
func Default() Settings {
	return Settings{
		Files:         make(map[string]string),
		Flags:         Flags{Reboot: true},
		PreferHomeCSC: true,
	}
}

// ResolvedFiles converts the persisted per-part file paths into a resolver
// result, with every flashable key present.
func (s *Settings) ResolvedFiles() firmware.ResolvedSet {
	files := make(firmware.ResolvedSet, len(firmware.PartOrder))
	for _, key := range firmware.PartOrder {
		files[key] = s.Files[string(key)]
	}
	return files
}

// SetResolvedFiles stores a resolver result, replacing only parts the scan
// actually found so a manual selection survives a partial rescan.
func (s *Settings) SetResolvedFiles(files firmware.ResolvedSet) {
	if s.Files == nil {
		s.Files = make(map[string]string, len(firmware.PartOrder))
	}
	for _, key := range firmware.PartOrder {
		if files[key] != "" {
			s.Files[string(key)] = files[key]
		}
	}
}

// FlashOptions returns the odin options encoded in the persisted flags and
// manual device path.
func (s *Settings) FlashOptions() odin.Options {
	return odin.Options{
		NandErase:    s.Flags.NandErase,
		HomeValidate: s.Flags.HomeValidate,
		Reboot:       s.Flags.Reboot,
		Redownload:   s.Flags.Redownload,
		ManualDevice: s.DevicePath,
	}
}

// Load reads settings from path. A missing file returns the defaults with a
// nil error; an unreadable or corrupt file returns the defaults together
// with the error so callers can log it and continue.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read settings: %w", err)
	}

	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if s.Files == nil {
		s.Files = make(map[string]string)
	}
	return s, nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// DefaultPath returns the per-user location of the settings file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "odinctl", "settings.json"), nil
}
