package odin

import "strings"

// ParseDeviceList parses the output of "odin4 -l". Every non-blank line is
// one device path; there is no header row. Surrounding whitespace is
// trimmed. Malformed or empty output yields an empty list, never an error.
//
// This format is specific to odin4. The adb device list has a header row and
// per-line state columns and is parsed by the adb package; the two formats
// must not share a parser.
func ParseDeviceList(raw string) []string {
	var devices []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		devices = append(devices, line)
	}
	return devices
}
