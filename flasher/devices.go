package flasher

import (
	"context"

	"github.com/vstars/odinctl/odin"
)

// DeviceStatus distinguishes a failed device scan from a genuinely empty
// one.
type DeviceStatus int

const (
	// DeviceStatusUnknown means the list command failed; the device count
	// could not be determined
	DeviceStatusUnknown DeviceStatus = iota

	// DeviceStatusNoneFound means the scan succeeded and reported zero
	// devices
	DeviceStatusNoneFound

	// DeviceStatusFound means the scan succeeded and reported devices
	DeviceStatusFound
)

func (s DeviceStatus) String() string {
	switch s {
	case DeviceStatusNoneFound:
		return "no devices found"
	case DeviceStatusFound:
		return "devices found"
	default:
		return "device status unknown"
	}
}

// DeviceReport is the outcome of one device refresh. The previous report is
// always replaced wholesale; lists are never merged.
type DeviceReport struct {
	Status  DeviceStatus
	Devices []string
}

// RefreshDevices runs "odin4 -l" and parses the reported device paths. A
// spawn failure or non-zero exit yields DeviceStatusUnknown; a clean run
// with zero parsed devices yields DeviceStatusNoneFound.
func (f *Flasher) RefreshDevices(ctx context.Context, odinPath string) DeviceReport {
	cmd := odin.BuildListCommand(odinPath)
	if len(cmd) == 0 {
		return DeviceReport{Status: DeviceStatusUnknown}
	}

	stdout, stderr, exitCode, err := f.Run(ctx, cmd[0], cmd[1:])
	if err != nil || exitCode != 0 {
		f.logError("device list failed", "exit_code", exitCode, "stderr", stderr, "err", err)
		return DeviceReport{Status: DeviceStatusUnknown}
	}

	devices := odin.ParseDeviceList(stdout)
	if len(devices) == 0 {
		return DeviceReport{Status: DeviceStatusNoneFound}
	}
	return DeviceReport{Status: DeviceStatusFound, Devices: devices}
}
