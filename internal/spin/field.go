package spin

import "github.com/pkg/errors"

// Field owns the array of N spin vectors and per-site material indices.
// Site count is immutable for the lifetime of a run; Field is the single
// owner of its storage.
//
// No concurrent writers: exactly one driver mutates a given Field.
type Field struct {
	spins     []Vector3
	materials []uint16
}

// NewField builds a Field of N sites, every site assigned materials[i].
// materials must have length N and every entry must be a valid index into
// the caller's MaterialTable; NewField checks only the length, and the
// indices are checked against the table when a driver is constructed.
func NewField(n int, materials []uint16) (*Field, error) {
	if n <= 0 {
		return nil, errors.New("spin field must have N > 0 sites")
	}
	if len(materials) != n {
		return nil, errors.Errorf("materials length %d does not match N=%d", len(materials), n)
	}
	f := &Field{
		spins:     make([]Vector3, n),
		materials: make([]uint16, n),
	}
	copy(f.materials, materials)
	return f, nil
}

// N returns the site count.
func (f *Field) N() int {
	return len(f.spins)
}

// Get reads the spin at site i.
func (f *Field) Get(i int) Vector3 {
	return f.spins[i]
}

// Set writes the spin at site i. The caller is responsible for ‖s‖ = 1.
func (f *Field) Set(i int, s Vector3) {
	f.spins[i] = s
}

// Material returns the material index of site i.
func (f *Field) Material(i int) int {
	return int(f.materials[i])
}

// Snapshot returns the current spin at site i, for later Restore.
func (f *Field) Snapshot(i int) Vector3 {
	return f.spins[i]
}

// Restore writes a previously snapshotted spin back to site i.
func (f *Field) Restore(i int, s Vector3) {
	f.spins[i] = s
}

// FillAll sets every site to the same direction — used by the Initializer
// to set all spins parallel to the constraint direction.
func (f *Field) FillAll(s Vector3) {
	for i := range f.spins {
		f.spins[i] = s
	}
}

// Sum returns Σ sᵢ over all sites. Used to (re)derive M from scratch, e.g.
// at Initializer time or when checking running-sum consistency in tests.
func (f *Field) Sum() Vector3 {
	var total Vector3
	for _, s := range f.spins {
		total = total.Add(s)
	}
	return total
}
