package rank

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/hupe1980/succinct/bitvector"
	"github.com/hupe1980/succinct/intvector"
)

// ErrInconsistent is returned by Restore when the supplied tables do not
// describe the supplied bit vector.
var ErrInconsistent = errors.New("inconsistent rank index")

// Index answers rank queries over a bit vector in constant time.
//
// The index owns a private copy of the bits, so it is immutable once built
// and safe for concurrent readers.
type Index struct {
	bv *bitvector.BitVector

	coarse blocking
	fine   blocking

	// level1[j] is the number of ones in [0, j*b1).
	level1 *intvector.IntVector

	// level2[k] is the number of ones between the start of the coarse block
	// containing k*b2 and k*b2.
	level2 *intvector.IntVector

	ones uint64
}

// New builds a rank index over a copy of bv. Later changes to bv are not
// observed by the index.
//
// Construction scans every coarse block once for level 1 and every fine
// block once for level 2, so it runs in O(n).
func New(bv *bitvector.BitVector, opts ...Option) *Index {
	o := applyOptions(opts)
	began := time.Now()

	own := bv.Clone()
	n := own.Len()
	coarse, fine := blockSizes(n)

	l1 := buildLevel1(own, coarse)
	l2 := buildLevel2(own, coarse, fine)

	idx := &Index{
		bv:     own,
		coarse: coarse,
		fine:   fine,
		level1: intvector.FromValues(l1),
		level2: intvector.FromValues(l2),
		ones:   own.Count(bitvector.One),
	}

	o.logger.Debug("rank index built",
		"bits", n,
		"coarse_block", coarse.size,
		"fine_block", fine.size,
		"level1_entries", idx.level1.Len(),
		"level1_width", idx.level1.Width(),
		"level2_entries", idx.level2.Len(),
		"level2_width", idx.level2.Width(),
		"duration", time.Since(began),
	)
	return idx
}

// buildLevel1 returns the cumulative ones before each coarse block.
func buildLevel1(bv *bitvector.BitVector, coarse blocking) []uint64 {
	n := bv.Len()
	out := make([]uint64, coarse.count(n))
	for j := 1; j < len(out); j++ {
		out[j] = out[j-1] + onesIn(bv, coarse.start(j-1), coarse.start(j)-1)
	}
	return out
}

// buildLevel2 returns, for each fine block, the ones between the start of
// the enclosing coarse block and the fine block start. When a fine block
// straddles a coarse boundary the running sum restarts at that boundary.
func buildLevel2(bv *bitvector.BitVector, coarse, fine blocking) []uint64 {
	n := bv.Len()
	out := make([]uint64, fine.count(n))
	if !fine.blocked() {
		return out
	}
	for k := 1; k < len(out); k++ {
		pos := fine.start(k)
		prev := fine.start(k - 1)
		blockStart := coarse.start(coarse.block(pos))
		switch {
		case blockStart == pos:
			out[k] = 0
		case blockStart > prev:
			out[k] = onesIn(bv, blockStart, pos-1)
		default:
			out[k] = out[k-1] + onesIn(bv, prev, pos-1)
		}
	}
	return out
}

// onesIn counts the ones in [start, stop]. Callers pass in-range bounds.
func onesIn(bv *bitvector.BitVector, start, stop int) uint64 {
	c, _, err := bv.Scan(start, stop, bitvector.One, ^uint64(0))
	if err != nil {
		panic(fmt.Sprintf("rank: scan [%d, %d] of %d bits: %v", start, stop, bv.Len(), err))
	}
	return c
}

// Len returns the number of indexed bits.
func (idx *Index) Len() int {
	return idx.bv.Len()
}

// Rank1 returns the number of ones in [0, i].
func (idx *Index) Rank1(i int) (uint64, error) {
	if i < 0 || i >= idx.bv.Len() {
		return 0, fmt.Errorf("%w: index %d, length %d", bitvector.ErrIndexOutOfRange, i, idx.bv.Len())
	}
	k := idx.fine.block(i)
	before, err := idx.onesBefore(k)
	if err != nil {
		return 0, err
	}
	tail, _, err := idx.bv.Scan(idx.fine.start(k), i, bitvector.One, ^uint64(0))
	if err != nil {
		return 0, err
	}
	return before + tail, nil
}

// Rank0 returns the number of zeros in [0, i].
func (idx *Index) Rank0(i int) (uint64, error) {
	r, err := idx.Rank1(i)
	if err != nil {
		return 0, err
	}
	return uint64(i) + 1 - r, nil
}

// onesBefore returns the number of ones in [0, start of fine block k).
func (idx *Index) onesBefore(k int) (uint64, error) {
	pos := idx.fine.start(k)
	l1, err := idx.level1.Get(idx.coarse.block(pos))
	if err != nil {
		return 0, err
	}
	l2, err := idx.level2.Get(k)
	if err != nil {
		return 0, err
	}
	return l1 + l2, nil
}

// Select1 returns the position of the k-th one, counting from k = 1.
func (idx *Index) Select1(k int) (int, error) {
	return idx.selectBit(k, bitvector.One)
}

// Select0 returns the position of the k-th zero, counting from k = 1.
func (idx *Index) Select0(k int) (int, error) {
	return idx.selectBit(k, bitvector.Zero)
}

// selectBit binary-searches the fine blocks for the last block starting
// before the k-th match, then scans forward from that block start.
func (idx *Index) selectBit(k int, kind bitvector.Bit) (int, error) {
	total := idx.Count(kind)
	if k <= 0 || uint64(k) > total {
		return 0, fmt.Errorf("%w: k=%d, %d %s-bits in %d bits",
			bitvector.ErrSelectOutOfRange, k, total, kind, idx.bv.Len())
	}

	var searchErr error
	before := func(block int) uint64 {
		ones, err := idx.onesBefore(block)
		if err != nil {
			searchErr = err
			return 0
		}
		if kind == bitvector.One {
			return ones
		}
		return uint64(idx.fine.start(block)) - ones
	}

	blocks := idx.level2.Len()
	// First block whose prefix already holds k matches; the answer lies in
	// the block before it.
	b := sort.Search(blocks, func(j int) bool { return before(j) >= uint64(k) }) - 1
	if searchErr != nil {
		return 0, searchErr
	}
	b = max(b, 0)

	need := uint64(k) - before(b)
	_, pos, err := idx.bv.Scan(idx.fine.start(b), idx.bv.Len()-1, kind, need)
	if err != nil {
		return 0, err
	}
	return pos, nil
}

// Count returns the number of bits equal to kind.
func (idx *Index) Count(kind bitvector.Bit) uint64 {
	if kind == bitvector.Zero {
		return uint64(idx.bv.Len()) - idx.ones
	}
	return idx.ones
}

// Bits returns a read-only view of the indexed bits.
func (idx *Index) Bits() bitvector.View {
	return idx.bv.View()
}

// Level1 returns a copy of the coarse block table.
func (idx *Index) Level1() *intvector.IntVector {
	return idx.level1.Clone()
}

// Level2 returns a copy of the fine block table.
func (idx *Index) Level2() *intvector.IntVector {
	return idx.level2.Clone()
}

// BlockSizes returns the coarse and fine block sizes. Zero means the level
// is unblocked and a single table entry covers the whole vector.
func (idx *Index) BlockSizes() (coarse, fine int) {
	return idx.coarse.size, idx.fine.size
}
