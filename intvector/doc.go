// Package intvector provides a compact vector of fixed-width unsigned integers.
//
// Each of the n values occupies exactly l bits (1 <= l <= 64) of a contiguous
// bit stream stored in 64-bit words, least-significant bit first. A value
// may straddle two words; Set and Get then split the value at the word
// boundary:
//
//	word k                          word k+1
//	┌──────────────┬───────────┐    ┌────────────┬──────────────┐
//	│ low(v)       │ other     │    │ other      │ high(v)      │
//	└──────────────┴───────────┘    └────────────┴──────────────┘
//	 bits [off,63]   [0,off)          [spill,63]   [0,spill)
//
// Values are accepted iff v < 2^l.
package intvector
