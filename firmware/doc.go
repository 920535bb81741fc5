// Package firmware resolves Samsung firmware part files from a directory.
//
// # Firmware Parts
//
// A stock Samsung firmware package ships as a set of .tar.md5 archives, one
// per part:
//
//	BL_*.tar.md5        Bootloader
//	AP_*.tar.md5        Application processor image
//	CP_*.tar.md5        Communication processor (modem) image
//	CSC_*.tar.md5       Carrier customization (wipes user data)
//	HOME_CSC_*.tar.md5  Carrier customization (preserves user data)
//
// The UMS (user mass storage) part has no stock naming pattern and is never
// resolved by a directory scan; it is left for manual selection.
//
// # Usage
//
// Scan a firmware directory with the stock patterns:
//
//	files := firmware.Detect("/path/to/fw", firmware.DefaultPatterns(), true)
//	for _, key := range firmware.PartOrder {
//	    fmt.Printf("%s: %s\n", key, files[key])
//	}
//
// Detect always returns all five flashable keys. An empty path means the
// part was not found. When both a CSC and a HOME_CSC file match and
// preferHomeCSC is set, the HOME_CSC file wins the CSC slot; the HOME_CSC
// key itself never appears in the result.
//
// # Best-Effort Contract
//
// Resolution is a convenience scan, not a validator. A missing directory, an
// unreadable directory, a malformed pattern, or zero matches all yield "not
// found" rather than an error. When several files match one pattern the
// lexicographically smallest name is chosen, so repeated scans of an
// unchanged directory always agree.
package firmware
