package cmc

import (
	"math"

	"github.com/pkg/errors"

	"github.com/sarat-asymmetrica/cmcspin/internal/cmcerr"
)

// Config holds the per-run constraint direction and temperature. Phi and
// Theta are in degrees and are stored modulo 360°; Temperature is in
// kelvin and must be > 0.
type Config struct {
	Phi         float64
	Theta       float64
	Temperature float64

	// CompatShortCircuit reproduces the legacy behavior of skipping the
	// modified-Metropolis evaluation outright when the combined
	// ΔE = ΔE₁ + ΔE₂ < 0. Left false,
	// every trial is evaluated in full. This exists purely as a documented,
	// opt-in compatibility knob.
	CompatShortCircuit bool
}

func (c Config) validate() error {
	if math.IsNaN(c.Phi) || math.IsInf(c.Phi, 0) {
		return errors.Wrap(cmcerr.InvalidConfig, "phi must be finite")
	}
	if math.IsNaN(c.Theta) || math.IsInf(c.Theta, 0) {
		return errors.Wrap(cmcerr.InvalidConfig, "theta must be finite")
	}
	if !(c.Temperature > 0) {
		return errors.Wrapf(cmcerr.InvalidConfig, "temperature must be > 0, got %v", c.Temperature)
	}
	return nil
}
