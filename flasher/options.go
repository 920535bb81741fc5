package flasher

// Config holds the flasher configuration.
type Config struct {
	// OutputCallback receives streamed process output lines (optional)
	OutputCallback OutputCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// WorkDir is the working directory for spawned processes; empty means
	// the current directory
	WorkDir string
}

// Option is a functional option for configuring the Flasher.
type Option func(*Config)

// WithOutputCallback sets a callback receiving each output line of the
// running process.
//
// Example:
//
//	f := flasher.New(flasher.WithOutputCallback(func(line string) {
//	    fmt.Println(line)
//	}))
func WithOutputCallback(callback OutputCallback) Option {
	return func(c *Config) {
		c.OutputCallback = callback
	}
}

// WithLogger sets a logger for flasher operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithWorkDir sets the working directory for spawned processes.
func WithWorkDir(dir string) Option {
	return func(c *Config) {
		c.WorkDir = dir
	}
}
