// Package energy defines the Oracle contract and ships one concrete
// reference Hamiltonian, Heisenberg, built from exchange, uniaxial
// anisotropy and Zeeman terms over the current spin.Field.
package energy

import (
	"math"

	"github.com/pkg/errors"

	"github.com/sarat-asymmetrica/cmcspin/internal/cmcerr"
)

// Oracle is the external-collaborator contract: given a site index, return
// that site's contribution to the total Hamiltonian against the current
// Field, such that flipping sᵢ alone and re-querying SiteEnergy captures
// the full ΔE with no double-counting needed at the call site.
//
// Implementations may use any atomistic Hamiltonian (exchange, anisotropy,
// Zeeman, dipolar). Thermal fluctuation fields, if present, must be
// disabled while driven by a CMC run; SetThermalNoise is how the
// Initializer enforces that.
type Oracle interface {
	SiteEnergy(i int) (float64, error)
	SetThermalNoise(enabled bool)
}

// nonFinite wraps cmcerr.OracleContractViolation with the offending value,
// the one place every Oracle implementation in this module funnels through
// so contract violations are reported consistently.
func nonFinite(site int, value float64) error {
	return errors.Wrapf(cmcerr.OracleContractViolation, "site %d: energy %v is not finite", site, value)
}

func checkFinite(site int, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nonFinite(site, value)
	}
	return nil
}
