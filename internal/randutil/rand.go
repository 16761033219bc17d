package randutil

import "math/rand"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided
// int64. Sequential seeds (1, 2, 3...) are common at call sites, so the
// raw value is mixed first to decorrelate the streams.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(int64(mix(uint64(seed)))))
}

// Child derives an independent stream from an existing source, for
// components that need their own reproducible randomness.
func Child(rng *rand.Rand) *rand.Rand {
	return New(rng.Int63())
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x + goldenRatio64
}
