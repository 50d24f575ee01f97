package cmc

import (
	"math"

	"github.com/sarat-asymmetrica/cmcspin/internal/energy"
	"github.com/sarat-asymmetrica/cmcspin/internal/frame"
	"github.com/sarat-asymmetrica/cmcspin/internal/physconst"
	"github.com/sarat-asymmetrica/cmcspin/internal/rng"
	"github.com/sarat-asymmetrica/cmcspin/internal/spin"
)

// outcome identifies how a single trial pair-move resolved.
type outcome int

const (
	outcomeAccept outcome = iota
	outcomeEnergyReject
	outcomeSphereReject
)

// step runs one trial pair-move: picks a pair (i, j), proposes a correlated
// move conserving the in-plane (constraint-frame) components of M, evaluates
// the modified Metropolis acceptance, and commits or reverts. It mutates
// field in place and returns the lab-frame change in running magnetization
// on accept.
//
// Every trial runs the full acceptance evaluation; there is no short-circuit
// on ΔE < 0 unless cfg.CompatShortCircuit opts into the legacy behavior.
func step(
	f *spin.Field,
	materials spin.MaterialTable,
	fr frame.Frame,
	oracle energy.Oracle,
	src rng.Source,
	m spin.Vector3,
	cfg Config,
) (result outcome, deltaM spin.Vector3, err error) {
	n := f.N()

	// 1. Pick first site. Snapshot s_i, map to constraint frame.
	i := src.Index(n)
	sOld := f.Snapshot(i)
	sCF := fr.ToConstraintFrame(sOld)

	// 2. Propose s_i': add Gaussian noise to the current (pre-move) s_i,
	// then normalize. Asselin-style: the proposal distribution depends on
	// the current configuration rather than being configuration-independent.
	g := spin.Vector3{X: src.Gaussian(), Y: src.Gaussian(), Z: src.Gaussian()}
	sPrime := sOld.Add(g).Normalized()
	sPrimeCF := fr.ToConstraintFrame(sPrime)

	// 3. Tentative accept of move 1: evaluate E_i before and after the
	// provisional write, scale to units of mu_B*T.
	eBefore, err := oracle.SiteEnergy(i)
	if err != nil {
		return 0, spin.Vector3{}, err
	}
	f.Set(i, sPrime)
	eAfter, err := oracle.SiteEnergy(i)
	if err != nil {
		f.Restore(i, sOld)
		return 0, spin.Vector3{}, err
	}
	muI, err := materials.MuS(f.Material(i))
	if err != nil {
		f.Restore(i, sOld)
		return 0, spin.Vector3{}, err
	}
	deltaE1 := (eAfter - eBefore) * muI * physconst.InvMuB

	// 4. Pick second site. Snapshot s_j, map to constraint frame.
	j := src.Index(n)
	if j == i {
		f.Restore(i, sOld)
		return outcomeSphereReject, spin.Vector3{}, nil
	}
	sJOld := f.Snapshot(j)
	sJCF := fr.ToConstraintFrame(sJOld)

	// 5. Compensate move on site j in the constraint frame: conserve the
	// x- and y-components of M in the constraint frame.
	sjpX := sCF.X + sJCF.X - sPrimeCF.X
	sjpY := sCF.Y + sJCF.Y - sPrimeCF.Y
	disk := sjpX*sjpX + sjpY*sjpY
	if disk >= 1 {
		f.Restore(i, sOld)
		return outcomeSphereReject, spin.Vector3{}, nil
	}

	sign := 1.0
	if sJCF.Z < 0 {
		sign = -1.0
	}
	sjpZ := sign * math.Sqrt(1-disk)
	sJPrimeCF := spin.Vector3{X: sjpX, Y: sjpY, Z: sjpZ}
	sJPrime := fr.ToLabFrame(sJPrimeCF)

	// 6. Evaluate ΔE₂.
	jBefore, err := oracle.SiteEnergy(j)
	if err != nil {
		f.Restore(i, sOld)
		return 0, spin.Vector3{}, err
	}
	f.Set(j, sJPrime)
	jAfter, err := oracle.SiteEnergy(j)
	if err != nil {
		f.Restore(i, sOld)
		f.Restore(j, sJOld)
		return 0, spin.Vector3{}, err
	}
	muJ, err := materials.MuS(f.Material(j))
	if err != nil {
		f.Restore(i, sOld)
		f.Restore(j, sJOld)
		return 0, spin.Vector3{}, err
	}
	deltaE2 := (jAfter - jBefore) * muJ * physconst.InvMuB
	deltaE := deltaE1 + deltaE2

	// Optional legacy compatibility path: skip the modified Metropolis
	// evaluation outright and accept unconditionally when the combined
	// energy change is favorable. Off by default.
	if cfg.CompatShortCircuit && deltaE < 0 {
		delta := sPrime.Add(sJPrime).Sub(sOld).Sub(sJOld)
		return outcomeAccept, delta, nil
	}

	// 7. Projected magnetization along the constraint.
	mzOld := m.Dot(fr.C)
	mNew := m.Add(sPrime).Add(sJPrime).Sub(sOld).Sub(sJOld)
	mzNew := mNew.Dot(fr.C)

	// 8. Acceptance: full modified-Metropolis evaluation, no short-circuit.
	if mzOld == 0 || mzNew < 0 {
		f.Restore(i, sOld)
		f.Restore(j, sJOld)
		return outcomeEnergyReject, spin.Vector3{}, nil
	}

	beta := physconst.Beta(cfg.Temperature)
	weightRatio := mzNew / mzOld
	weight := weightRatio * weightRatio
	jacobian := math.Abs(sJCF.Z / sJPrimeCF.Z)
	p := math.Exp(-deltaE*beta) * weight * jacobian

	if p < src.Uniform() {
		f.Restore(i, sOld)
		f.Restore(j, sJOld)
		return outcomeEnergyReject, spin.Vector3{}, nil
	}

	// 9. Commit.
	delta := sPrime.Add(sJPrime).Sub(sOld).Sub(sJOld)
	return outcomeAccept, delta, nil
}
