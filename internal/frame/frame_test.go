package frame

import (
	"math"
	"testing"

	"github.com/sarat-asymmetrica/cmcspin/internal/spin"
)

func TestBuildOrthogonal(t *testing.T) {
	cases := []struct{ phi, theta float64 }{
		{0, 0}, {45, 30}, {90, 180}, {123.4, -77}, {360, 720},
	}
	for _, c := range cases {
		f := Build(c.phi, c.theta)
		rrt := matMul(f.R, f.Rt)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				if math.Abs(rrt[i][j]-want) > 1e-12 {
					t.Errorf("phi=%v theta=%v: R*Rt[%d][%d] = %v, want %v", c.phi, c.theta, i, j, rrt[i][j], want)
				}
			}
		}

		cNorm := math.Sqrt(f.C.Dot(f.C))
		if math.Abs(cNorm-1) > 1e-12 {
			t.Errorf("phi=%v theta=%v: ||c|| = %v, want 1", c.phi, c.theta, cNorm)
		}

		d := Direction(c.phi, c.theta)
		if math.Abs(f.C.X-d.X) > 1e-12 || math.Abs(f.C.Y-d.Y) > 1e-12 || math.Abs(f.C.Z-d.Z) > 1e-12 {
			t.Errorf("phi=%v theta=%v: c = %+v, want d = %+v", c.phi, c.theta, f.C, d)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	f := Build(37, 211)
	v := spin.Vector3{X: 0.3, Y: -0.5, Z: 0.8}
	cf := f.ToConstraintFrame(v)
	lab := f.ToLabFrame(cf)
	if math.Abs(lab.X-v.X) > 1e-12 || math.Abs(lab.Y-v.Y) > 1e-12 || math.Abs(lab.Z-v.Z) > 1e-12 {
		t.Errorf("round trip mismatch: got %+v want %+v", lab, v)
	}
}
