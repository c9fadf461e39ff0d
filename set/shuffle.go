package set

import rand "math/rand/v2"

// Shuffle permutes s in place using Fisher-Yates. The random source is
// always injected so callers control determinism; see
// internal/randutil for seeded construction.
func Shuffle[S ~[]E, E any](rng *rand.Rand, s S) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
