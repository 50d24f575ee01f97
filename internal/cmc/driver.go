// Package cmc implements the constrained Monte Carlo integrator: the
// per-trial step, the driver loop that runs it sweep by sweep, and the
// initializer that sets up a run from a constraint direction and
// temperature.
package cmc

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sarat-asymmetrica/cmcspin/internal/cmcerr"
	"github.com/sarat-asymmetrica/cmcspin/internal/energy"
	"github.com/sarat-asymmetrica/cmcspin/internal/frame"
	"github.com/sarat-asymmetrica/cmcspin/internal/physconst"
	"github.com/sarat-asymmetrica/cmcspin/internal/rng"
	"github.com/sarat-asymmetrica/cmcspin/internal/spin"
)

// SweepDelta reports the counter deltas produced by one Sweep or Run call.
type SweepDelta struct {
	Successes     int
	EnergyRejects int
	SphereRejects int
	TotalTrials   int
}

// Stats is the cumulative, read-only counter snapshot.
type Stats struct {
	Successes       int
	EnergyRejects   int
	SphereRejects   int
	Total           int
	AcceptanceRatio float64
}

// Driver is the outer loop performing N trial pair-moves per sweep, owning
// the running magnetization and counters. A Driver owns its Field and
// Source exclusively — never share either across goroutines; run
// independent replicas with independent Drivers instead.
type Driver struct {
	field     *spin.Field
	materials spin.MaterialTable
	oracle    energy.Oracle
	src       rng.Source
	fr        frame.Frame
	cfg       Config

	m spin.Vector3

	successes     int
	energyRejects int
	sphereRejects int
	totalTrials   int
}

// NewDriver validates cfg and materials, builds the constraint Frame, sets
// every spin parallel to the constraint direction, computes M = N·d, zeroes
// counters, and disables thermal noise on the oracle. Re-calling NewDriver
// on the same field refills every site along d and returns a Driver with
// fresh M and counters, replacing the previous state wholesale.
func NewDriver(cfg Config, field *spin.Field, oracle energy.Oracle, materials spin.MaterialTable, seed int64) (*Driver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if field.N() == 0 {
		return nil, errors.Wrap(cmcerr.InvalidConfig, "spin field must have N > 0 sites")
	}
	for i := 0; i < field.N(); i++ {
		if _, err := materials.MuS(field.Material(i)); err != nil {
			return nil, errors.Wrapf(cmcerr.InvalidConfig, "site %d: %v", i, err)
		}
	}

	cfg.Phi = physconst.NormalizeDeg(cfg.Phi)
	cfg.Theta = physconst.NormalizeDeg(cfg.Theta)

	fr := frame.Build(cfg.Phi, cfg.Theta)
	d := frame.Direction(cfg.Phi, cfg.Theta)

	field.FillAll(d)
	oracle.SetThermalNoise(false)

	return &Driver{
		field:     field,
		materials: materials,
		oracle:    oracle,
		src:       rng.New(seed),
		fr:        fr,
		cfg:       cfg,
		m:         field.Sum(),
	}, nil
}

// Sweep executes exactly N CMCStep invocations and returns the deltas from
// this sweep alone.
func (d *Driver) Sweep() (SweepDelta, error) {
	n := d.field.N()
	delta := SweepDelta{}

	for k := 0; k < n; k++ {
		result, deltaM, err := step(d.field, d.materials, d.fr, d.oracle, d.src, d.m, d.cfg)
		if err != nil {
			return delta, errors.Wrap(err, "sweep")
		}

		switch result {
		case outcomeAccept:
			d.m = d.m.Add(deltaM)
			d.successes++
			delta.Successes++
		case outcomeEnergyReject:
			d.energyRejects++
			delta.EnergyRejects++
		case outcomeSphereReject:
			d.sphereRejects++
			delta.SphereRejects++
		}
		d.totalTrials++
		delta.TotalTrials++
	}

	return delta, nil
}

// Run executes K sweeps, checking ctx between sweeps (never between
// pair-moves) and returning cmcerr.Cancelled if ctx is done before a sweep
// starts. The Field is left in a consistent, fully accepted state
// regardless of where cancellation occurs.
func (d *Driver) Run(ctx context.Context, k int) (SweepDelta, error) {
	total := SweepDelta{}
	for s := 0; s < k; s++ {
		select {
		case <-ctx.Done():
			return total, errors.Wrap(cmcerr.Cancelled, ctx.Err().Error())
		default:
		}

		delta, err := d.Sweep()
		total.Successes += delta.Successes
		total.EnergyRejects += delta.EnergyRejects
		total.SphereRejects += delta.SphereRejects
		total.TotalTrials += delta.TotalTrials
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Stats returns the cumulative counter snapshot.
func (d *Driver) Stats() Stats {
	s := Stats{
		Successes:     d.successes,
		EnergyRejects: d.energyRejects,
		SphereRejects: d.sphereRejects,
		Total:         d.totalTrials,
	}
	if s.Total > 0 {
		s.AcceptanceRatio = float64(s.Successes) / float64(s.Total)
	}
	return s
}

// Magnetization returns the running magnetization M in lab-frame coordinates.
func (d *Driver) Magnetization() (mx, my, mz float64) {
	return d.m.X, d.m.Y, d.m.Z
}

// Field exposes the underlying Field for read access (e.g. test assertions,
// snapshotting for resume). Mutating it outside of Sweep/Run breaks the
// single-owner contract Driver relies on.
func (d *Driver) Field() *spin.Field {
	return d.field
}
