package odin

import (
	"github.com/kballard/go-shellquote"

	"github.com/vstars/odinctl/firmware"
)

// Flag tokens understood by odin4.
const (
	// FlagListDevices prints the attached devices, one path per line
	FlagListDevices = "-l"

	// FlagNandErase erases the NAND before flashing
	FlagNandErase = "-e"

	// FlagHomeValidate validates a home binary (HOME_CSC) flash
	FlagHomeValidate = "-V"

	// FlagReboot reboots the device once flashing completes
	FlagReboot = "--reboot"

	// FlagRedownload re-enters download mode after flashing
	FlagRedownload = "--redownload"

	// FlagDevice selects a specific target device path
	FlagDevice = "-d"
)

// partFlags maps each firmware part to its odin4 short flag.
var partFlags = map[firmware.PartKey]string{
	firmware.BL:  "-b",
	firmware.AP:  "-a",
	firmware.CP:  "-c",
	firmware.CSC: "-s",
	firmware.UMS: "-u",
}

// Options are the boolean flags and the target-device selection for a flash
// invocation. ManualDevice is a hand-typed device path; ListedDevice is a
// path picked from the discovered device list. ManualDevice wins when both
// are set; when both are empty the device flag is omitted and odin4
// auto-detects.
type Options struct {
	NandErase    bool
	HomeValidate bool
	Reboot       bool
	Redownload   bool

	ManualDevice string
	ListedDevice string
}

// BuildCommand constructs the complete odin4 argument vector for the given
// binary path, resolved firmware files and options. The first token is the
// binary path itself.
//
// An empty binary path yields an empty command: the invocation is not ready
// to be built, which is a normal outcome, not an error. BuildCommand builds
// whatever it is given, including a command with zero part flags; preflight
// validation belongs to the caller.
func BuildCommand(binPath string, files firmware.ResolvedSet, opts Options) []string {
	if binPath == "" {
		return nil
	}

	cmd := []string{binPath}
	for _, key := range firmware.PartOrder {
		if path := files[key]; path != "" {
			cmd = append(cmd, partFlags[key], path)
		}
	}

	if opts.NandErase {
		cmd = append(cmd, FlagNandErase)
	}
	if opts.HomeValidate {
		cmd = append(cmd, FlagHomeValidate)
	}
	if opts.Reboot {
		cmd = append(cmd, FlagReboot)
	}
	if opts.Redownload {
		cmd = append(cmd, FlagRedownload)
	}

	switch {
	case opts.ManualDevice != "":
		cmd = append(cmd, FlagDevice, opts.ManualDevice)
	case opts.ListedDevice != "":
		cmd = append(cmd, FlagDevice, opts.ListedDevice)
	}

	return cmd
}

// BuildListCommand constructs the odin4 device-list invocation. An empty
// binary path yields an empty command.
func BuildListCommand(binPath string) []string {
	if binPath == "" {
		return nil
	}
	return []string{binPath, FlagListDevices}
}

// Preview renders a command as a single shell-quoted line suitable for
// display or copying. It is a pure formatting transform: splitting the
// result with shell word rules reproduces the original tokens.
func Preview(cmd []string) string {
	return shellquote.Join(cmd...)
}
