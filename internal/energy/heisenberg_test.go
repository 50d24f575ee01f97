package energy

import (
	"math"
	"testing"

	"github.com/sarat-asymmetrica/cmcspin/internal/spin"
)

func twoSiteField(t *testing.T) (*spin.Field, spin.MaterialTable) {
	t.Helper()
	field, err := spin.NewField(2, []uint16{0, 0})
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	materials, err := spin.NewMaterialTable([]float64{9.27400915e-24})
	if err != nil {
		t.Fatalf("NewMaterialTable: %v", err)
	}
	return field, materials
}

func TestHeisenbergExchangeAligned(t *testing.T) {
	field, materials := twoSiteField(t)
	field.Set(0, spin.Vector3{X: 0, Y: 0, Z: 1})
	field.Set(1, spin.Vector3{X: 0, Y: 0, Z: 1})

	positions := []Position{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}
	h := NewHeisenberg(field, materials, positions, HeisenbergConfig{
		ExchangeJ:      1.0,
		NeighborRadius: 1.5,
	})

	e, err := h.SiteEnergy(0)
	if err != nil {
		t.Fatalf("SiteEnergy: %v", err)
	}
	if math.Abs(e-(-1.0)) > 1e-12 {
		t.Errorf("aligned exchange energy = %v, want -1", e)
	}
}

func TestHeisenbergExchangeOutOfRange(t *testing.T) {
	field, materials := twoSiteField(t)
	field.Set(0, spin.Vector3{X: 0, Y: 0, Z: 1})
	field.Set(1, spin.Vector3{X: 0, Y: 0, Z: 1})

	positions := []Position{{X: 0, Y: 0, Z: 0}, {X: 100, Y: 0, Z: 0}}
	h := NewHeisenberg(field, materials, positions, HeisenbergConfig{
		ExchangeJ:      1.0,
		NeighborRadius: 1.5,
	})

	e, err := h.SiteEnergy(0)
	if err != nil {
		t.Fatalf("SiteEnergy: %v", err)
	}
	if e != 0 {
		t.Errorf("out-of-range neighbor contributed energy %v, want 0", e)
	}
}

func TestHeisenbergAnisotropyAndZeeman(t *testing.T) {
	field, materials := twoSiteField(t)
	field.Set(0, spin.Vector3{X: 0, Y: 0, Z: 1})
	field.Set(1, spin.Vector3{X: 1, Y: 0, Z: 0})

	positions := []Position{{X: 0, Y: 0, Z: 0}, {X: 100, Y: 0, Z: 0}}
	h := NewHeisenberg(field, materials, positions, HeisenbergConfig{
		AnisotropyK: 2.0,
		EasyAxis:    spin.Vector3{X: 0, Y: 0, Z: 1},
		FieldB:      spin.Vector3{X: 0, Y: 0, Z: 1},
	})

	e0, err := h.SiteEnergy(0)
	if err != nil {
		t.Fatalf("SiteEnergy(0): %v", err)
	}
	want0 := -2.0 - 9.27400915e-24
	if math.Abs(e0-want0) > 1e-30 {
		t.Errorf("site 0 energy = %v, want %v", e0, want0)
	}
}

func TestHeisenbergContractViolationOnMissingMaterial(t *testing.T) {
	field, err := spin.NewField(1, []uint16{5})
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	materials, err := spin.NewMaterialTable([]float64{1e-23})
	if err != nil {
		t.Fatalf("NewMaterialTable: %v", err)
	}
	field.Set(0, spin.Vector3{X: 0, Y: 0, Z: 1})

	h := NewHeisenberg(field, materials, []Position{{}}, HeisenbergConfig{})
	if _, err := h.SiteEnergy(0); err == nil {
		t.Error("expected OracleContractViolation for out-of-range material index")
	}
}

func TestZeroField(t *testing.T) {
	var z ZeroField
	e, err := z.SiteEnergy(0)
	if err != nil || e != 0 {
		t.Errorf("ZeroField.SiteEnergy = %v, %v; want 0, nil", e, err)
	}
}
