package tessella

// Linear congruential recurrence parameters. These exact constants are
// part of the reproducibility contract: a pattern generated from a seed
// must come out bit-identical on every platform and in every port of
// the generator, so the platform RNG cannot be used here.
const (
	lcgMul = 9301
	lcgInc = 49297
	lcgMod = 233280
)

// Rand is a small, auditable seeded pseudo-random generator producing
// values in [0, 1). It is not safe for concurrent use; each generation
// pass owns its own instance.
type Rand struct {
	state int64
}

// NewRand creates a generator seeded with the given value. Equal seeds
// always produce equal output sequences.
func NewRand(seed int64) *Rand {
	return &Rand{state: ((seed % lcgMod) + lcgMod) % lcgMod}
}

// Float64 returns the next value of the stream in [0, 1).
func (r *Rand) Float64() float64 {
	r.state = (r.state*lcgMul + lcgInc) % lcgMod
	return float64(r.state) / lcgMod
}
