package flasher

import "time"

// OutputCallback receives one trimmed output line at a time from the running
// process, stdout and stderr interleaved in arrival order. Implementations
// should return quickly to avoid stalling the output pump.
type OutputCallback func(line string)

// Result describes a finished flash.
type Result struct {
	// ExitCode is the process exit code; -1 when the process was killed
	// or never ran to completion
	ExitCode int

	// Err is the wait error, nil on a clean zero exit
	Err error

	// Elapsed is the wall-clock duration of the run
	Elapsed time.Duration
}

// Logger is an optional logging interface. This allows integration with any
// logging framework; the CLI wires it to glog.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
