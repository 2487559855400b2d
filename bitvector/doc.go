// Package bitvector provides a fixed-length packed bit array with word-level
// rank, select and range-scan operations.
//
// # Layout
//
// Bits are stored least-significant first in 64-bit words: logical position
// p lives in word p/64 at bit p%64.
//
//	┌──────────────────────┬──────────────────────┬─────────────┐
//	│ word 0: bits [0,63]  │ word 1: bits [64,127]│ ...         │
//	└──────────────────────┴──────────────────────┴─────────────┘
//
// A vector of length n owns ceil(n/64) words (at least one). Bits above n in
// the last word are never observed by any query.
//
// # Queries
//
//   - Rank1(i): number of 1-bits in [0, i], linear in i/64.
//   - Select1(k) / Select0(k): position of the k-th 1-bit / 0-bit (1-indexed).
//   - Scan(start, stop, kind, limit): bounded count over a closed range. This
//     is the primitive the rank package builds its block tables with.
//
// For O(1) rank queries wrap a vector in a rank.Index.
//
// # Interop
//
// FromRoaring/ToRoaring convert to and from Roaring bitmaps, FromBitSet/ToBitSet
// to and from bits-and-blooms bitsets. The bitset layout is word-compatible so
// that conversion is a copy of the backing words.
//
// A BitVector is not safe for concurrent mutation.
package bitvector
