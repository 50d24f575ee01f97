package rng

import "testing"

func TestDeterminism(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 1000; i++ {
		switch i % 3 {
		case 0:
			if u, v := a.Uniform(), b.Uniform(); u != v {
				t.Fatalf("uniform mismatch at draw %d: %v != %v", i, u, v)
			}
		case 1:
			if u, v := a.Gaussian(), b.Gaussian(); u != v {
				t.Fatalf("gaussian mismatch at draw %d: %v != %v", i, u, v)
			}
		case 2:
			if u, v := a.Index(100), b.Index(100); u != v {
				t.Fatalf("index mismatch at draw %d: %v != %v", i, u, v)
			}
		}
	}
}

func TestIndexRange(t *testing.T) {
	src := New(7)
	for i := 0; i < 10000; i++ {
		v := src.Index(13)
		if v < 0 || v >= 13 {
			t.Fatalf("Index(13) out of range: %d", v)
		}
	}
}

func TestUniformRange(t *testing.T) {
	src := New(7)
	for i := 0; i < 10000; i++ {
		v := src.Uniform()
		if v < 0 || v >= 1 {
			t.Fatalf("Uniform() out of [0,1): %v", v)
		}
	}
}
