// Package physconst provides the physical constants and angle helpers used
// throughout the CMC integrator. The Bohr magneton and Boltzmann constant
// pin every energy term to a common unit system (μ_B·T) so acceptance
// ratios never carry hidden scale factors; degree/radian conversions are
// centralized here so every caller rounds angles the same way.
package physconst

import "math"

const (
	// MuB is the Bohr magneton, in joules per tesla.
	MuB = 9.27400915e-24

	// InvMuB is the precomputed reciprocal of MuB, joules -> μ_B·T.
	InvMuB = 1.07828231e23

	// KB is the Boltzmann constant, in joules per kelvin.
	KB = 1.3806503e-23
)

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// NormalizeDeg reduces an angle in degrees to the half-open range [0, 360).
func NormalizeDeg(deg float64) float64 {
	m := math.Mod(deg, 360.0)
	if m < 0 {
		m += 360.0
	}
	return m
}

// Beta returns μ_B / (k_B · T) for a temperature T in kelvin.
//
// Callers must have already rejected T <= 0; Beta does not validate.
func Beta(temperatureKelvin float64) float64 {
	return MuB / (KB * temperatureKelvin)
}
