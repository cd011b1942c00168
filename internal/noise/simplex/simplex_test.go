package simplex

import (
	"testing"

	"continent/internal/core"
)

func TestSimplexRangeAndDeterminism(t *testing.T) {
	a := New(7)
	b := New(7)
	c := New(8)
	differs := false
	for i := 0; i < 200; i++ {
		x := float64(i) * 0.173
		y := float64(i) * 0.091
		va := a.Eval2(x, y)
		if va < -1 || va > 1 {
			t.Fatalf("value %f at (%f,%f) outside [-1,1]", va, x, y)
		}
		if vb := b.Eval2(x, y); va != vb {
			t.Fatalf("same seed produced %f and %f", va, vb)
		}
		if c.Eval2(x, y) != va {
			differs = true
		}
	}
	if !differs {
		t.Fatal("different seeds should produce different noise")
	}
}

func TestSimplexRegistered(t *testing.T) {
	if _, ok := core.Noises()[Name]; !ok {
		t.Fatal("simplex backend not registered")
	}
	if core.NewNoise("", 1) == nil {
		t.Fatal("default backend should resolve to simplex")
	}
}
