package adb

import "strings"

// Device is one entry from the adb device list.
type Device struct {
	// Serial is the device identifier used with the -s flag
	Serial string

	// State is the remaining descriptive text, e.g. "device" or
	// "unauthorized usb:1-2 model:SM_G950F"
	State string
}

// ParseDevices parses the output of "adb devices" or "adb devices -l". The
// first line is the header and is discarded; each remaining non-blank line
// is split on whitespace with the first field as the serial and the joined
// remainder as state text. Malformed or empty output yields an empty list,
// never an error: callers must treat that as "no devices reported".
func ParseDevices(raw string) []Device {
	lines := strings.Split(raw, "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}

	var devices []Device
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		d := Device{Serial: fields[0]}
		if len(fields) > 1 {
			d.State = strings.Join(fields[1:], " ")
		}
		devices = append(devices, d)
	}
	return devices
}
