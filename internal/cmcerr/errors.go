// Package cmcerr defines the three error kinds the CMC core can surface:
// InvalidConfig, OracleContractViolation, Cancelled. Sphere and energy
// rejects are normal outcomes, counted by the driver, and never reach this
// package.
package cmcerr

import "github.com/pkg/errors"

// Sentinel kinds. Wrap with errors.Wrap/Wrapf at the call site for context;
// test membership with errors.Is.
var (
	// InvalidConfig is fatal to construction: T <= 0, non-finite phi/theta,
	// N = 0, an out-of-range material index, or mu_s <= 0.
	InvalidConfig = errors.New("invalid config")

	// OracleContractViolation is surfaced from the current sweep call when
	// an EnergyOracle returns a non-finite energy or a missing material.
	OracleContractViolation = errors.New("oracle contract violation")

	// Cancelled is returned when cancellation was observed between sweeps.
	Cancelled = errors.New("cancelled")
)
