package engine

import "math/rand"

// RNG wraps math/rand.Rand behind the handful of draws the engine
// needs: pool shuffles, letter picks, and letter samples. Seeded for
// deterministic runs and tests.
type RNG struct {
	seed int64
	src  *rand.Rand
}

// NewRNG creates a deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed this RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a random integer in [0, n).
func (r *RNG) Intn(n int) int {
	return r.src.Intn(n)
}

// Shuffle randomizes the order of n elements via the swap function.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.src.Shuffle(n, swap)
}

// PickRune returns a uniformly chosen element of letters.
// letters must be non-empty.
func (r *RNG) PickRune(letters []rune) rune {
	return letters[r.src.Intn(len(letters))]
}

// SampleRunes returns k distinct elements of letters, uniformly chosen.
// Returns fewer when letters has fewer than k elements. The input slice
// is not modified.
func (r *RNG) SampleRunes(letters []rune, k int) []rune {
	pool := make([]rune, len(letters))
	copy(pool, letters)
	r.src.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if k > len(pool) {
		k = len(pool)
	}
	return pool[:k]
}
