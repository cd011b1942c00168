package perlin

import (
	"testing"

	"continent/internal/core"
)

func TestPerlinRangeAndDeterminism(t *testing.T) {
	a := New(3)
	b := New(3)
	nonZero := false
	for i := 0; i < 200; i++ {
		x := float64(i)*0.37 + 0.11
		y := float64(i)*0.21 + 0.05
		va := a.Eval2(x, y)
		if va < -1 || va > 1 {
			t.Fatalf("value %f outside [-1,1]", va)
		}
		if vb := b.Eval2(x, y); va != vb {
			t.Fatalf("same seed produced %f and %f", va, vb)
		}
		if va != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Fatal("perlin source returned only zeros")
	}
}

func TestPerlinRegistered(t *testing.T) {
	if core.NewNoise(Name, 1) == nil {
		t.Fatal("perlin backend not registered")
	}
	if _, ok := core.NewNoise(Name, 1).(*Source); !ok {
		t.Fatal("expected perlin adapter from registry")
	}
}
