package bitvector

import "math/bits"

// maskThrough returns a mask with bits [0, hi] set. hi must be < 64.
func maskThrough(hi uint) uint64 {
	return ^uint64(0) >> (WordBits - 1 - hi)
}

// maskRange returns a mask with bits [lo, hi] set. lo <= hi < 64.
func maskRange(lo, hi uint) uint64 {
	return maskThrough(hi) &^ ((uint64(1) << lo) - 1)
}

// select64 returns the bit offset of the j-th (0-indexed) set bit of word.
// The caller guarantees that word has more than j set bits.
func select64(word uint64, j int) int {
	for i := 0; i < j; i++ {
		word &= word - 1
	}
	return bits.TrailingZeros64(word)
}
