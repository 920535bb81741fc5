package adb

import (
	"fmt"

	"github.com/kballard/go-shellquote"
)

// Reboot targets accepted by RebootCommand.
const (
	// RebootSystem reboots into the normal system
	RebootSystem = ""

	// RebootDownload reboots into firmware download mode
	RebootDownload = "download"

	// RebootRecovery reboots into the recovery environment
	RebootRecovery = "recovery"
)

// scoped prepends the device scope when serial is non-empty.
func scoped(serial string, args ...string) []string {
	if serial == "" {
		return args
	}
	return append([]string{"-s", serial}, args...)
}

// DevicesCommand lists attached devices with descriptive columns.
func DevicesCommand() []string {
	return []string{"devices", "-l"}
}

// RebootCommand reboots the device into the given target. An empty target
// reboots into the normal system.
func RebootCommand(serial, target string) []string {
	if target == "" {
		return scoped(serial, "reboot")
	}
	return scoped(serial, "reboot", target)
}

// PushCommand copies a local file to a remote path on the device.
func PushCommand(serial, local, remote string) []string {
	return scoped(serial, "push", local, remote)
}

// PullCommand copies a remote path from the device to a local path.
func PullCommand(serial, remote, local string) []string {
	return scoped(serial, "pull", remote, local)
}

// InstallCommand installs an APK, replacing an existing installation.
func InstallCommand(serial, apkPath string) []string {
	return scoped(serial, "install", "-r", apkPath)
}

// ShellCommand runs a command line on the device via adb shell. The command
// is split with shell word rules, so quoted arguments survive intact.
func ShellCommand(serial, commandLine string) ([]string, error) {
	words, err := shellquote.Split(commandLine)
	if err != nil {
		return nil, fmt.Errorf("invalid shell command: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("empty shell command")
	}
	return scoped(serial, append([]string{"shell"}, words...)...), nil
}

// KillServerCommand stops the local adb server.
func KillServerCommand() []string {
	return []string{"kill-server"}
}

// StartServerCommand starts the local adb server.
func StartServerCommand() []string {
	return []string{"start-server"}
}
