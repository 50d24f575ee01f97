package energy

import (
	"github.com/pkg/errors"

	"github.com/sarat-asymmetrica/cmcspin/internal/cmcerr"
	"github.com/sarat-asymmetrica/cmcspin/internal/spin"
)

// HeisenbergConfig parameterizes the reference Hamiltonian. ExchangeJ and
// AnisotropyK are in joules; FieldB is in tesla, so that μ_s·B with
// spin.Material.MomentMuS in joules per tesla is also in joules.
type HeisenbergConfig struct {
	// ExchangeJ is the exchange constant per neighbor bond, in joules.
	ExchangeJ float64

	// NeighborRadius is the cutoff distance (same units as Positions) within
	// which two sites are considered exchange-coupled.
	NeighborRadius float64

	// AnisotropyK is the uniaxial anisotropy constant, in joules.
	AnisotropyK float64

	// EasyAxis is the uniaxial easy axis ê. Need not be unit length; it is
	// normalized once, in NewHeisenberg.
	EasyAxis spin.Vector3

	// FieldB is the external (Zeeman) field, in tesla.
	FieldB spin.Vector3
}

// Heisenberg is a concrete Oracle combining exchange, uniaxial anisotropy
// and Zeeman terms over a spin.Field.
//
// Dipolar coupling is deliberately not computed here: a correct dipolar
// term needs Ewald summation or a hierarchical (fast multipole / tree)
// evaluator to avoid O(N²) cost at scale, which is out of proportion to
// what this reference oracle needs to exercise the CMC core. Callers
// wanting dipolar fields must supply their own Oracle.
type Heisenberg struct {
	field     *spin.Field
	materials spin.MaterialTable
	positions []Position
	neighbors *NeighborList
	cfg       HeisenbergConfig
	easyAxis  spin.Vector3
	thermal   bool
}

// NewHeisenberg builds a Heisenberg oracle over field, using positions (one
// per site, in the same coordinate units as cfg.NeighborRadius) to build
// the exchange neighbor list once.
func NewHeisenberg(field *spin.Field, materials spin.MaterialTable, positions []Position, cfg HeisenbergConfig) *Heisenberg {
	nl := NewNeighborList(cfg.NeighborRadius)
	nl.Build(positions)

	return &Heisenberg{
		field:     field,
		materials: materials,
		positions: positions,
		neighbors: nl,
		cfg:       cfg,
		easyAxis:  cfg.EasyAxis.Normalized(),
	}
}

// SetThermalNoise enables or disables the oracle's thermal fluctuation
// field. Heisenberg carries no thermal term of its own (there is nothing to
// disable physically); the flag is only recorded, and Heisenberg exposes
// no accessor for it.
func (h *Heisenberg) SetThermalNoise(enabled bool) {
	h.thermal = enabled
}

// SiteEnergy returns the full site energy against the current field: the
// exchange sum over neighbors, the uniaxial anisotropy term, and the
// Zeeman term, all in joules.
func (h *Heisenberg) SiteEnergy(i int) (float64, error) {
	if i < 0 || i >= h.field.N() {
		return 0, errors.Wrapf(cmcerr.OracleContractViolation, "site %d out of range [0, %d)", i, h.field.N())
	}
	muS, err := h.materials.MuS(h.field.Material(i))
	if err != nil {
		return 0, errors.Wrapf(cmcerr.OracleContractViolation, "site %d: %v", i, err)
	}

	s := h.field.Get(i)

	exch := 0.0
	if h.cfg.ExchangeJ != 0 {
		for _, j := range h.neighbors.Neighbors(i, h.positions, h.cfg.NeighborRadius) {
			exch += -h.cfg.ExchangeJ * s.Dot(h.field.Get(j))
		}
	}

	anis := 0.0
	if h.cfg.AnisotropyK != 0 {
		proj := s.Dot(h.easyAxis)
		anis = -h.cfg.AnisotropyK * proj * proj
	}

	zeeman := -muS * s.Dot(h.cfg.FieldB)

	total := exch + anis + zeeman
	if err := checkFinite(i, total); err != nil {
		return 0, err
	}
	return total, nil
}

// ZeroField is a trivial Oracle returning zero energy for every site,
// letting acceptance reduce to the Jacobian/geometric-weight terms alone.
// Useful for end-to-end tests that want every ΔE = 0.
type ZeroField struct {
	thermal bool
}

// SiteEnergy always returns 0.
func (ZeroField) SiteEnergy(i int) (float64, error) { return 0, nil }

// SetThermalNoise records the flag; ZeroField has no noise to disable.
func (z *ZeroField) SetThermalNoise(enabled bool) { z.thermal = enabled }
