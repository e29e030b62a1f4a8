package random

import (
	"math/rand/v2"
	"time"
)

// Source is the randomness used by the mindmap and quiz builders.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// New returns a PCG-backed source. A zero seed draws one from the clock,
// any other seed makes the sequence reproducible.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		now := uint64(time.Now().UnixNano())
		return rand.New(rand.NewPCG(now, now>>17^0x9e3779b97f4a7c15))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
