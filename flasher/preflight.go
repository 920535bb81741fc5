package flasher

import (
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/vstars/odinctl/firmware"
)

// Preflight checks every condition that gates Idle -> Flashing and reports
// all failures together: the binary path must be set and exist, at least one
// firmware part must be resolved, and both user risk-acknowledgment flags
// must be set.
//
// A nil return means the invocation may be launched. Preflight never
// launches anything itself.
func Preflight(binPath string, files firmware.ResolvedSet, riskAcknowledged, downloadModeConfirmed bool) error {
	var errs *multierror.Error

	if binPath == "" {
		errs = multierror.Append(errs, ErrNoBinary)
	} else if _, err := os.Stat(binPath); err != nil {
		errs = multierror.Append(errs, &BinaryNotFoundError{Path: binPath, Err: err})
	}

	if !files.Any() {
		errs = multierror.Append(errs, ErrNoFirmwareParts)
	}

	if !riskAcknowledged {
		errs = multierror.Append(errs, ErrRiskNotAcknowledged)
	}
	if !downloadModeConfirmed {
		errs = multierror.Append(errs, ErrDownloadModeNotConfirmed)
	}

	return errs.ErrorOrNil()
}
