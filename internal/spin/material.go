package spin

import (
	"github.com/pkg/errors"

	"github.com/sarat-asymmetrica/cmcspin/internal/cmcerr"
)

// Material is a read-only record keyed by material index, exposing the
// per-species magnetic moment μ_s in joules per tesla.
type Material struct {
	MomentMuS float64 // μ_s, joules/tesla
}

// MaterialTable is the immutable, index-addressed set of materials for a run.
type MaterialTable []Material

// NewMaterialTable validates that every μ_s is strictly positive.
func NewMaterialTable(moments []float64) (MaterialTable, error) {
	if len(moments) == 0 {
		return nil, errors.New("material table must have at least one entry")
	}
	table := make(MaterialTable, len(moments))
	for i, mu := range moments {
		if !(mu > 0) {
			return nil, errors.Wrapf(cmcerr.InvalidConfig, "material %d: mu_s must be > 0, got %v", i, mu)
		}
		table[i] = Material{MomentMuS: mu}
	}
	return table, nil
}

// MuS returns μ_s for material index m, or an error if m is out of range.
func (t MaterialTable) MuS(m int) (float64, error) {
	if m < 0 || m >= len(t) {
		return 0, errors.Wrapf(cmcerr.OracleContractViolation, "material index %d out of range [0,%d)", m, len(t))
	}
	return t[m].MomentMuS, nil
}
