// Package flasher runs the external flashing and bridge tools.
//
// # Overview
//
// Flasher owns the process side of a flash: it launches odin4 with a
// prepared argument vector, streams its output line by line, enforces that
// only one flash is in flight at a time, and runs ancillary commands (device
// refresh, adb actions) with captured output.
//
// The lifecycle is Idle -> Flashing -> Idle. Starting a flash while one is
// active is rejected with ErrFlashInProgress, never queued. A flash returns
// to Idle on process exit (any exit code) or when Stop kills it.
//
// # Basic Usage
//
//	f := flasher.New(
//	    flasher.WithOutputCallback(func(line string) { fmt.Println(line) }),
//	    flasher.WithLogger(myLogger),
//	)
//
//	cmd := odin.BuildCommand(odinPath, files, opts)
//	if err := flasher.Preflight(odinPath, files, riskOK, downloadOK); err != nil {
//	    log.Fatal(err)
//	}
//	if err := f.Start(ctx, cmd); err != nil {
//	    log.Fatal(err)
//	}
//	result, _ := f.Wait()
//	fmt.Printf("flash finished with code %d\n", result.ExitCode)
//
// # Preflight Gating
//
// Preflight collects every reason an invocation must not be launched: a
// missing binary, zero firmware parts, and unacknowledged risk flags. All
// failures are reported together so the caller can surface the complete
// list at once.
//
// # Device Refresh
//
// RefreshDevices runs the list command and reports a three-state result:
// the device count is unknown (the command failed), zero devices were
// reported, or N devices were found. An empty list from a successful run is
// genuinely "no devices", never conflated with a failed scan.
package flasher
