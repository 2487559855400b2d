package rank

import "math/bits"

// blocking describes how positions are grouped into fixed-size blocks. The
// zero value is unblocked: the whole vector is a single block.
type blocking struct {
	size int
}

// blockedBy returns a blocking of the given size. Sizes < 1 are unblocked.
func blockedBy(size int) blocking {
	if size < 1 {
		return blocking{}
	}
	return blocking{size: size}
}

func (b blocking) blocked() bool { return b.size > 0 }

// block returns the block containing position i.
func (b blocking) block(i int) int {
	if !b.blocked() {
		return 0
	}
	return i / b.size
}

// start returns the first position of block k.
func (b blocking) start(k int) int {
	if !b.blocked() {
		return 0
	}
	return k * b.size
}

// count returns the number of blocks covering n positions, at least one.
func (b blocking) count(n int) int {
	if !b.blocked() {
		return 1
	}
	return max(1, (n+b.size-1)/b.size)
}

// blockSizes derives the coarse and fine blockings for a vector of n bits:
// coarse = ceil(log2 n)^2 and fine = floor(log2 n). A coarse size larger
// than n, and any size of zero, leaves that level unblocked.
func blockSizes(n int) (coarse, fine blocking) {
	if n < 2 {
		return blocking{}, blocking{}
	}
	floorLog := bits.Len(uint(n)) - 1
	ceilLog := floorLog
	if n&(n-1) != 0 {
		ceilLog++
	}
	if c := ceilLog * ceilLog; c <= n {
		coarse = blockedBy(c)
	}
	return coarse, blockedBy(floorLog)
}
