package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	rng := NewRNG(4711)

	bits := rng.Bits(10_000, 0.25)
	assert.Len(t, bits, 10_000)

	var ones int
	for _, b := range bits {
		assert.LessOrEqual(t, b, uint8(1))
		ones += int(b)
	}
	assert.InDelta(t, 2500, ones, 250)

	assert.NotContains(t, rng.Bits(100, 0), uint8(1))
	assert.NotContains(t, rng.Bits(100, 1), uint8(0))
}

func TestRunBits(t *testing.T) {
	rng := NewRNG(4711)

	bits := rng.RunBits(5_000, 32)
	assert.Len(t, bits, 5_000)
	assert.Equal(t, uint8(0), bits[0])

	runs := 1
	for i := 1; i < len(bits); i++ {
		if bits[i] != bits[i-1] {
			runs++
		}
	}
	// Mean run length 32 gives roughly 5000/32 runs.
	assert.InDelta(t, 5_000/32, runs, 60)
}

func TestValues(t *testing.T) {
	rng := NewRNG(4711)

	for _, width := range []int{1, 7, 33, 64} {
		for _, v := range rng.Values(100, width) {
			if width < 64 {
				assert.Less(t, v, uint64(1)<<uint(width))
			}
		}
	}
}

func TestBoundaryBits(t *testing.T) {
	bits := BoundaryBits(130, 64)

	var set []int
	for i, b := range bits {
		if b != 0 {
			set = append(set, i)
		}
	}
	assert.Equal(t, []int{0, 1, 63, 64, 65, 127, 128, 129}, set)
	assert.NotContains(t, BoundaryBits(10, 0), uint8(1))
}

func TestLinearRankSelect(t *testing.T) {
	bits := []uint8{0, 1, 0, 0, 1, 1, 0}

	assert.Equal(t, uint64(0), LinearRank(bits, 0))
	assert.Equal(t, uint64(2), LinearRank(bits, 4))
	assert.Equal(t, uint64(3), LinearRank(bits, 6))

	assert.Equal(t, 1, LinearSelect(bits, 1, 1))
	assert.Equal(t, 5, LinearSelect(bits, 3, 1))
	assert.Equal(t, -1, LinearSelect(bits, 4, 1))
	assert.Equal(t, 3, LinearSelect(bits, 3, 0))
	assert.Equal(t, -1, LinearSelect(bits, 0, 0))
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.Bits(64, 0.5)
	rng.Reset()
	b := rng.Bits(64, 0.5)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
}
