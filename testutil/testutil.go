package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Bits returns n bits, each set independently with probability density.
func (r *RNG) Bits(n int, density float64) []uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()

	bits := make([]uint8, n)
	for i := range bits {
		if r.rand.Float64() < density {
			bits[i] = 1
		}
	}
	return bits
}

// RunBits returns n bits made of alternating runs of zeros and ones whose
// lengths are uniform in [1, 2*meanRun). The first run is zeros.
func (r *RNG) RunBits(n, meanRun int) []uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()

	bits := make([]uint8, n)
	var bit uint8
	for i := 0; i < n; {
		run := 1 + r.rand.Intn(max(1, 2*meanRun-1))
		for ; run > 0 && i < n; run-- {
			bits[i] = bit
			i++
		}
		bit ^= 1
	}
	return bits
}

// Values returns n values that each fit in width bits.
func (r *RNG) Values(n, width int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	values := make([]uint64, n)
	for i := range values {
		v := r.rand.Uint64()
		if width < 64 {
			v &= (1 << uint(width)) - 1
		}
		values[i] = v
	}
	return values
}

// ============================================================================
// Adversarial Patterns
// ============================================================================

// BoundaryBits returns n bits set only at positions p where p, p+1 or p-1 is
// a multiple of stride. With stride 64 this targets word edges, and with a
// block size it targets block edges.
func BoundaryBits(n, stride int) []uint8 {
	bits := make([]uint8, n)
	if stride <= 0 {
		return bits
	}
	for p := 0; p < n; p += stride {
		for _, q := range []int{p - 1, p, p + 1} {
			if q >= 0 && q < n {
				bits[q] = 1
			}
		}
	}
	return bits
}

// ============================================================================
// Reference Answers
// ============================================================================

// LinearRank returns the number of non-zero entries in bits[0..i].
func LinearRank(bits []uint8, i int) uint64 {
	var r uint64
	for _, b := range bits[:i+1] {
		if b != 0 {
			r++
		}
	}
	return r
}

// LinearSelect returns the position of the k-th entry (k >= 1) equal to bit,
// where any non-zero entry counts as 1. It returns -1 if there is none.
func LinearSelect(bits []uint8, k int, bit uint8) int {
	if k <= 0 {
		return -1
	}
	want := bit != 0
	for i, b := range bits {
		if (b != 0) == want {
			k--
			if k == 0 {
				return i
			}
		}
	}
	return -1
}
