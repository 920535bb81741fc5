// Package odin constructs command lines for the odin4 flashing tool and
// parses its device-list output.
//
// # Invocation Layout
//
// odin4 takes one short flag per firmware part, a handful of boolean option
// flags, and an optional target device:
//
//	odin4 -b BL.tar.md5 -a AP.tar.md5 -c CP.tar.md5 -s CSC.tar.md5 -u UMS.tar.md5 \
//	      -e -V --reboot --redownload -d /dev/bus/usb/001/002
//
// BuildCommand emits tokens in exactly that order: binary path, part flags
// in BL, AP, CP, CSC, UMS order (skipping unresolved parts), option flags in
// -e, -V, --reboot, --redownload order, and the device flag last. The output
// is fully determined by the inputs; there is no hidden state and no I/O.
//
// # Target Device Precedence
//
// A manually typed device path overrides a device picked from the discovered
// list; when neither is set the -d flag is omitted entirely and odin4
// auto-detects the device.
//
// # Usage
//
//	files := firmware.Detect(dir, firmware.DefaultPatterns(), true)
//	cmd := odin.BuildCommand("/usr/local/bin/odin4", files, odin.Options{Reboot: true})
//	fmt.Println(odin.Preview(cmd))
//
// BuildCommand never fails. An empty binary path yields an empty command,
// which callers must treat as "not ready to build". Validating that the
// binary exists and that at least one part is set is the caller's job; see
// the flasher package.
package odin
