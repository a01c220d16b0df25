// Package randutil centralises how int64 seeds become rand sources, so every
// call site derives reproducible sequences the same way.
package randutil

import "math/rand"

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The seed goes through a splitmix64 finalisation step first, so that nearby
// seeds (consecutive game numbers, for instance) do not produce correlated
// streams.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(int64(mix(uint64(seed)))))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
