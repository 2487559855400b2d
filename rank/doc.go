// Package rank provides a two-level rank index over a bit vector.
//
// # Structure
//
// For a vector of n bits the index uses two block sizes:
//
//	b1 = ceil(log2 n)^2   coarse blocks
//	b2 = floor(log2 n)    fine blocks
//
// Level 1 stores, per coarse block, the number of ones before it. Level 2
// stores, per fine block, the number of ones between the start of the
// enclosing coarse block and the fine block start, so its entries stay
// below b1 and pack into few bits:
//
//	bits    │0 ─────────── b1 ─────────── 2·b1 ──────── n│
//	level1  │0             │L1[1]          │L1[2]        │
//	level2  │0 │·│·│·│·│·│ 0 │·│·│·│·│·│  0 │·│·│·│·│·│  │
//
// Both tables are stored in intvector.IntVector using the smallest width
// that holds their largest entry.
//
// A query combines one entry of each table with a scan of at most b2 bits:
//
//	rank1(i) = level1[block1(k·b2)] + level2[k] + ones[k·b2, i],  k = i / b2
//
// When n is too small for a level (b1 > n, or n < 2) that level is unblocked
// and its single entry covers the whole vector.
//
// # Ownership
//
// New copies the input vector, and Bits returns a read-only view, so the
// indexed bits cannot change after construction. An Index is safe for
// concurrent readers.
package rank
