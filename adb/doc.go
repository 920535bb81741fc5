// Package adb constructs argument vectors for the adb device bridge and
// parses its device-list output.
//
// Builders return the argument list without the adb binary path itself; the
// caller supplies the binary to its process runner. Every builder accepts a
// serial: when non-empty the arguments are scoped to that device with
// "-s <serial>", otherwise adb applies the command to the only (or all)
// attached devices.
//
//	args := adb.RebootCommand("R58N1234", adb.RebootDownload)
//	// ["-s", "R58N1234", "reboot", "download"]
//
// # Device List Format
//
// "adb devices -l" prints a header line followed by one device per line,
// serial first, then state and descriptive columns:
//
//	List of devices attached
//	R58N1234               device usb:1-2 product:dreamltexx model:SM_G950F
//
// ParseDevices discards the header, splits each remaining non-blank line on
// whitespace, and keeps the serial and the joined remainder as descriptive
// state text. This format differs from the odin4 device list (parsed by the
// odin package); the two parsers are deliberately separate.
package adb
