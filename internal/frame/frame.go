// Package frame builds the rotation pair mapping the lab frame to the
// constraint frame whose ẑ′ axis is the chosen constraint direction. R is
// built once from (φ, θ) and kept as plain [3][3]float64 arrays — never a
// resizable matrix type — so every per-step matrix-vector product in the
// CMC hot path is nine multiplies and six adds, inlined, with no heap
// allocation.
package frame

import (
	"math"

	"github.com/sarat-asymmetrica/cmcspin/internal/physconst"
	"github.com/sarat-asymmetrica/cmcspin/internal/spin"
)

// Frame is the immutable rotation pair (R, Rᵀ) plus the constraint row
// vector c = ẑᵀ·R, built once per run from (φ, θ) in degrees.
type Frame struct {
	R  [3][3]float64
	Rt [3][3]float64
	C  spin.Vector3
}

// Build computes R = R_y(φ)·R_z(θ) and derives Rᵀ and c.
func Build(phiDeg, thetaDeg float64) Frame {
	a := physconst.DegToRad(phiDeg)
	b := physconst.DegToRad(thetaDeg)

	cosA, sinA := math.Cos(a), math.Sin(a)
	cosB, sinB := math.Cos(b), math.Sin(b)

	// R_y(a)
	ry := [3][3]float64{
		{cosA, 0, -sinA},
		{0, 1, 0},
		{sinA, 0, cosA},
	}
	// R_z(b)
	rz := [3][3]float64{
		{cosB, sinB, 0},
		{-sinB, cosB, 0},
		{0, 0, 1},
	}

	r := matMul(ry, rz)
	rt := transpose(r)

	return Frame{
		R:  r,
		Rt: rt,
		C:  spin.Vector3{X: r[2][0], Y: r[2][1], Z: r[2][2]},
	}
}

// Direction returns the constraint direction d = (sinφ cosθ, sinφ sinθ, cosφ).
func Direction(phiDeg, thetaDeg float64) spin.Vector3 {
	a := physconst.DegToRad(phiDeg)
	b := physconst.DegToRad(thetaDeg)
	sinA := math.Sin(a)
	return spin.Vector3{
		X: sinA * math.Cos(b),
		Y: sinA * math.Sin(b),
		Z: math.Cos(a),
	}
}

// ToConstraintFrame maps a lab-frame vector into the constraint frame: R·v.
func (f Frame) ToConstraintFrame(v spin.Vector3) spin.Vector3 {
	return apply(f.R, v)
}

// ToLabFrame maps a constraint-frame vector back to the lab frame: Rᵀ·v.
func (f Frame) ToLabFrame(v spin.Vector3) spin.Vector3 {
	return apply(f.Rt, v)
}

func apply(m [3][3]float64, v spin.Vector3) spin.Vector3 {
	return spin.Vector3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

func matMul(a, b [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return out
}

func transpose(m [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j][i] = m[i][j]
		}
	}
	return out
}
