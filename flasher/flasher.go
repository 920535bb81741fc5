package flasher

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// Flash lifecycle states.
const (
	StateIdle     = "idle"
	StateFlashing = "flashing"
)

// Flasher launches external tool processes and serializes flash starts.
// Only one flash runs at a time; ancillary commands via Run are unlimited.
//
// Flasher is safe for concurrent use.
type Flasher struct {
	config Config

	mu     sync.Mutex
	active *flash
}

// flash tracks one in-flight flashing process.
type flash struct {
	cmd    *exec.Cmd
	start  time.Time
	done   chan struct{}
	result Result
}

// New creates a Flasher with the given options.
//
// Example:
//
//	f := flasher.New(
//	    flasher.WithOutputCallback(printLine),
//	    flasher.WithLogger(myLogger),
//	)
func New(opts ...Option) *Flasher {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Flasher{config: cfg}
}

// State returns the current lifecycle state.
func (f *Flasher) State() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.active != nil {
		return StateFlashing
	}
	return StateIdle
}

// Start launches the flash described by argv, where argv[0] is the binary
// path. Output lines are streamed to the configured OutputCallback. Start
// returns as soon as the process is running; use Wait for the result.
//
// While a flash is active further Starts are rejected with
// ErrFlashInProgress. An empty argv is rejected with ErrEmptyCommand:
// callers must not treat a not-ready invocation as launchable.
func (f *Flasher) Start(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyCommand
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.active != nil {
		return ErrFlashInProgress
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = f.config.WorkDir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", argv[0], err)
	}

	fl := &flash{
		cmd:   cmd,
		start: time.Now(),
		done:  make(chan struct{}),
	}
	f.active = fl

	f.logInfo("flash started", "binary", argv[0], "args", strings.Join(argv[1:], " "))

	var pumps sync.WaitGroup
	var outMu sync.Mutex
	pump := func(r *bufio.Scanner) {
		defer pumps.Done()
		for r.Scan() {
			line := strings.TrimSpace(r.Text())
			if line == "" {
				continue
			}
			outMu.Lock()
			f.emit(line)
			outMu.Unlock()
		}
	}
	pumps.Add(2)
	go pump(bufio.NewScanner(stdout))
	go pump(bufio.NewScanner(stderr))

	go func() {
		pumps.Wait()
		err := cmd.Wait()

		fl.result = Result{
			ExitCode: cmd.ProcessState.ExitCode(),
			Err:      err,
			Elapsed:  time.Since(fl.start),
		}

		f.logInfo("flash finished",
			"exit_code", fl.result.ExitCode,
			"elapsed", fl.result.Elapsed.String(),
		)

		close(fl.done)

		f.mu.Lock()
		f.active = nil
		f.mu.Unlock()
	}()

	return nil
}

// Wait blocks until the active flash exits and returns its result. It
// returns ErrNoActiveFlash when nothing is running.
func (f *Flasher) Wait() (Result, error) {
	f.mu.Lock()
	fl := f.active
	f.mu.Unlock()

	if fl == nil {
		return Result{}, ErrNoActiveFlash
	}
	<-fl.done
	return fl.result, nil
}

// Stop kills the active flash. The lifecycle returns to Idle through the
// normal exit path, so a pending Wait still observes the (killed) result.
func (f *Flasher) Stop() error {
	f.mu.Lock()
	fl := f.active
	f.mu.Unlock()

	if fl == nil {
		return ErrNoActiveFlash
	}

	f.logInfo("stopping flash")
	if err := fl.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("failed to kill flash process: %w", err)
	}
	return nil
}

// Run executes an ancillary command synchronously and returns its captured
// stdout, stderr and exit code. Unlike Start it is not subject to the
// single-flight guard: device refreshes and adb actions may run while a
// flash is active.
//
// A non-zero exit is not an error at this level; err reports spawn and wait
// failures only when the process could not run at all.
func (f *Flasher) Run(ctx context.Context, binPath string, args []string) (stdout, stderr string, exitCode int, err error) {
	if binPath == "" {
		return "", "", -1, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, binPath, args...)
	cmd.Dir = f.config.WorkDir

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	f.logDebug("running command", "binary", binPath, "args", strings.Join(args, " "))

	runErr := cmd.Run()
	if cmd.ProcessState == nil {
		return "", "", -1, fmt.Errorf("failed to run %s: %w", binPath, runErr)
	}

	return outBuf.String(), errBuf.String(), cmd.ProcessState.ExitCode(), nil
}

// emit delivers one output line to the callback if configured.
func (f *Flasher) emit(line string) {
	if f.config.OutputCallback != nil {
		f.config.OutputCallback(line)
	}
}

// logDebug logs a debug message if a logger is configured.
func (f *Flasher) logDebug(msg string, keysAndValues ...interface{}) {
	if f.config.Logger != nil {
		f.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (f *Flasher) logInfo(msg string, keysAndValues ...interface{}) {
	if f.config.Logger != nil {
		f.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (f *Flasher) logError(msg string, keysAndValues ...interface{}) {
	if f.config.Logger != nil {
		f.config.Logger.Error(msg, keysAndValues...)
	}
}
