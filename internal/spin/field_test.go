package spin

import (
	"math"
	"testing"
)

func TestNewFieldValidatesN(t *testing.T) {
	if _, err := NewField(0, nil); err == nil {
		t.Error("expected error for N=0")
	}
	if _, err := NewField(3, []uint16{0, 0}); err == nil {
		t.Error("expected error for mismatched materials length")
	}
}

func TestFieldGetSetSnapshotRestore(t *testing.T) {
	f, err := NewField(4, []uint16{0, 0, 1, 1})
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}

	f.FillAll(Vector3{X: 0, Y: 0, Z: 1})
	snap := f.Snapshot(2)
	f.Set(2, Vector3{X: 1, Y: 0, Z: 0})

	if got := f.Get(2); got.X != 1 {
		t.Errorf("Set did not take effect: %+v", got)
	}

	f.Restore(2, snap)
	if got := f.Get(2); got != snap {
		t.Errorf("Restore did not roll back: got %+v want %+v", got, snap)
	}

	if f.Material(2) != 1 {
		t.Errorf("Material(2) = %d, want 1", f.Material(2))
	}
}

func TestFieldSum(t *testing.T) {
	f, err := NewField(3, []uint16{0, 0, 0})
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	f.FillAll(Vector3{X: 0, Y: 0, Z: 1})

	sum := f.Sum()
	if math.Abs(sum.Z-3) > 1e-12 || sum.X != 0 || sum.Y != 0 {
		t.Errorf("Sum() = %+v, want {0,0,3}", sum)
	}
}

func TestMaterialTableValidation(t *testing.T) {
	if _, err := NewMaterialTable(nil); err == nil {
		t.Error("expected error for empty table")
	}
	if _, err := NewMaterialTable([]float64{1.0, 0}); err == nil {
		t.Error("expected error for non-positive mu_s")
	}

	table, err := NewMaterialTable([]float64{9.27e-24, 1.8e-23})
	if err != nil {
		t.Fatalf("NewMaterialTable: %v", err)
	}
	if _, err := table.MuS(5); err == nil {
		t.Error("expected out-of-range error")
	}
	mu, err := table.MuS(1)
	if err != nil || mu != 1.8e-23 {
		t.Errorf("MuS(1) = %v, %v; want 1.8e-23, nil", mu, err)
	}
}
