// Package randutil centralises how shuffle randomness is seeded so that a
// simulation run can be replayed from the seed it reports.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// rand/v2's PCG needs two 64-bit seeds; both are derived from seed here so all
// call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Resolve returns seed unchanged unless it is zero, in which case a non-zero
// seed is derived from now.
func Resolve(seed int64, now time.Time) int64 {
	if seed != 0 {
		return seed
	}
	derived := int64(mix(uint64(now.UnixNano())) >> 1)
	if derived == 0 {
		derived = 1
	}
	return derived
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
