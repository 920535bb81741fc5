package profile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vstars/odinctl/firmware"
	"github.com/vstars/odinctl/odin"
)

// Flag names recognized in a profile's flag mapping.
const (
	FlagNandErase    = "nand_erase"
	FlagHomeValidate = "home_validate"
	FlagReboot       = "reboot"
	FlagRedownload   = "redownload"
)

// Profile describes one device: how its firmware files are named and which
// flash options it wants by default.
type Profile struct {
	// ID is the stable identifier referenced by persisted settings
	ID string

	// Name is the human-readable display name
	Name string

	// Model is the device model string, e.g. "SM-G950F"
	Model string

	// Notes is free-form text shown alongside the profile
	Notes string

	// Patterns maps part names to file name patterns
	Patterns map[string]string

	// Flags maps flash option names to their default values
	Flags map[string]bool

	// DefaultCSCPreferHome selects HOME_CSC over CSC by default
	DefaultCSCPreferHome bool
}

// PatternSet converts the profile's pattern mapping for the firmware
// resolver. Unknown part names are carried through untouched; the resolver
// only consults the keys it knows.
func (p *Profile) PatternSet() firmware.PatternSet {
	set := make(firmware.PatternSet, len(p.Patterns))
	for name, pattern := range p.Patterns {
		set[firmware.PartKey(name)] = pattern
	}
	return set
}

// FlashOptions returns the odin options encoded in the profile's flag
// mapping. Absent flags default to false; the device selector fields are
// left empty.
func (p *Profile) FlashOptions() odin.Options {
	return odin.Options{
		NandErase:    p.Flags[FlagNandErase],
		HomeValidate: p.Flags[FlagHomeValidate],
		Reboot:       p.Flags[FlagReboot],
		Redownload:   p.Flags[FlagRedownload],
	}
}

// document is the wire shape of a profiles file.
type document struct {
	Profiles []profileDoc `json:"profiles"`
}

type profileDoc struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Model                string            `json:"model"`
	Notes                string            `json:"notes"`
	Patterns             map[string]string `json:"patterns"`
	Flags                map[string]bool   `json:"flags"`
	DefaultCSCPreferHome *bool             `json:"default_csc_prefer_home"`
}

// Load reads a profiles document from the given file path.
func Load(path string) ([]Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profiles file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadReader(f)
}

// LoadReader parses a profiles document from any io.Reader.
func LoadReader(r io.Reader) ([]Profile, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse profiles document: %w", err)
	}

	profiles := make([]Profile, 0, len(doc.Profiles))
	for _, item := range doc.Profiles {
		p := Profile{
			ID:       item.ID,
			Name:     item.Name,
			Model:    item.Model,
			Notes:    item.Notes,
			Patterns: item.Patterns,
			Flags:    item.Flags,

			// Preferring HOME_CSC is the data-preserving default.
			DefaultCSCPreferHome: true,
		}
		if p.Name == "" {
			p.Name = "Unnamed"
		}
		if item.DefaultCSCPreferHome != nil {
			p.DefaultCSCPreferHome = *item.DefaultCSCPreferHome
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}

// Find returns the profile with the given ID, or nil if none matches.
func Find(profiles []Profile, id string) *Profile {
	if id == "" {
		return nil
	}
	for i := range profiles {
		if profiles[i].ID == id {
			return &profiles[i]
		}
	}
	return nil
}

// DefaultPath returns the per-user location of the profiles document.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "odinctl", "devices.json"), nil
}
