package tessella

import "testing"

func TestRandDeterminism(t *testing.T) {
	seeds := []int64{0, 1, 42, -7, 1 << 40}
	for _, seed := range seeds {
		a := NewRand(seed)
		b := NewRand(seed)
		for i := 0; i < 1000; i++ {
			va, vb := a.Float64(), b.Float64()
			if va != vb {
				t.Fatalf("seed %d diverged at draw %d: %v != %v", seed, i, va, vb)
			}
		}
	}
}

func TestRandRange(t *testing.T) {
	r := NewRand(99)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, v)
		}
	}
}

func TestRandKnownSequence(t *testing.T) {
	// First draws of seed 1 follow directly from the recurrence.
	r := NewRand(1)
	want := []float64{
		58598.0 / 233280,
		float64((58598*9301+49297)%233280) / 233280,
	}
	for i, w := range want {
		if got := r.Float64(); got != w {
			t.Errorf("draw %d = %v, want %v", i, got, w)
		}
	}
}

func TestRandSeedsDiffer(t *testing.T) {
	a, b := NewRand(1), NewRand(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
		}
	}
	if same {
		t.Error("seeds 1 and 2 produced identical 10-draw prefixes")
	}
}
