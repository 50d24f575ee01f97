// Package rng provides the deterministic, seedable random stream the CMC
// driver draws from: uniform(0,1), standard Gaussian, and integer-in-range.
package rng

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source provides uniform U(0,1), Gaussian N(0,1), and integer-in-range
// streams, seedable and reproducible.
type Source interface {
	Uniform() float64
	Gaussian() float64
	Index(n int) int
}

// Gonum is a Source backed by gonum's distuv distributions, all sharing a
// single *rand.Rand so that a given seed reproduces an identical sequence
// of values for the same sequence of Uniform/Gaussian/Index calls within
// one goroutine.
type Gonum struct {
	src     *rand.Rand
	uniform distuv.Uniform
	normal  distuv.Normal
}

// New builds a Gonum random source from an int64 seed.
func New(seed int64) *Gonum {
	src := rand.New(rand.NewSource(seed))
	return &Gonum{
		src:     src,
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: src},
		normal:  distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}
}

// Uniform draws from U(0,1).
func (g *Gonum) Uniform() float64 {
	return g.uniform.Rand()
}

// Gaussian draws from N(0,1).
func (g *Gonum) Gaussian() float64 {
	return g.normal.Rand()
}

// Index draws a uniform integer in [0, n).
func (g *Gonum) Index(n int) int {
	return g.src.Intn(n)
}
