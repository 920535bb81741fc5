package flasher

import (
	"errors"
	"fmt"
)

// ErrFlashInProgress is returned by Start while another flash is active.
var ErrFlashInProgress = errors.New("a flash is already in progress")

// ErrNoActiveFlash is returned by Wait and Stop when no flash is running.
var ErrNoActiveFlash = errors.New("no flash is active")

// ErrEmptyCommand is returned by Start and Run for an empty argument vector.
var ErrEmptyCommand = errors.New("command is empty")

// Preflight failures.
var (
	// ErrNoBinary means no flashing binary path is configured.
	ErrNoBinary = errors.New("flashing binary path is not set")

	// ErrNoFirmwareParts means no firmware part has a resolved path.
	ErrNoFirmwareParts = errors.New("no firmware part selected")

	// ErrRiskNotAcknowledged means the user has not confirmed the risks.
	ErrRiskNotAcknowledged = errors.New("risks not acknowledged")

	// ErrDownloadModeNotConfirmed means the user has not confirmed that the
	// device is in download mode.
	ErrDownloadModeNotConfirmed = errors.New("download mode not confirmed")
)

// BinaryNotFoundError indicates the configured binary path does not exist.
type BinaryNotFoundError struct {
	Path string
	Err  error
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("flashing binary not found at %s: %v", e.Path, e.Err)
}

func (e *BinaryNotFoundError) Unwrap() error {
	return e.Err
}
