package bitvector

import (
	"fmt"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/succinct/internal/conv"
)

// FromRoaring returns a vector of length n with the positions contained in rb set.
// It fails if rb contains a position >= n. A nil bitmap yields an all-zero vector.
func FromRoaring(rb *roaring.Bitmap, n int) (*BitVector, error) {
	bv := New(n)
	if rb == nil || rb.IsEmpty() {
		return bv, nil
	}
	if maxPos := int64(rb.Maximum()); maxPos >= int64(n) {
		return nil, fmt.Errorf("%w: bitmap position %d, length %d", ErrIndexOutOfRange, maxPos, n)
	}
	it := rb.Iterator()
	for it.HasNext() {
		p := it.Next()
		bv.words[p/WordBits] |= 1 << (p % WordBits)
	}
	return bv, nil
}

// ToRoaring returns a Roaring bitmap containing the positions of the set bits.
// It fails if a set bit lies beyond the 32-bit Roaring universe.
func (bv *BitVector) ToRoaring() (*roaring.Bitmap, error) {
	rb := roaring.New()
	batch := make([]uint32, 0, WordBits)
	for w := range bv.words {
		word := bv.match(w, One)
		for word != 0 {
			p, err := conv.IntToUint32(w*WordBits + bits.TrailingZeros64(word))
			if err != nil {
				return nil, fmt.Errorf("to roaring: %w", err)
			}
			batch = append(batch, p)
			word &= word - 1
		}
		if len(batch) > 0 {
			rb.AddMany(batch)
			batch = batch[:0]
		}
	}
	return rb, nil
}

// FromBitSet returns a vector with the length and bits of bs.
func FromBitSet(bs *bitset.BitSet) *BitVector {
	if bs == nil {
		return New(0)
	}
	n := int(bs.Len())
	bv := New(n)
	copy(bv.words, bs.Words())
	if last := len(bv.words) - 1; last >= 0 {
		bv.words[last] &= bv.validMask(last)
	}
	return bv
}

// ToBitSet returns a bits-and-blooms bitset with the same length and bits.
func (bv *BitVector) ToBitSet() *bitset.BitSet {
	words := make([]uint64, (bv.n+WordBits-1)/WordBits)
	for w := range words {
		words[w] = bv.match(w, One)
	}
	return bitset.FromWithLength(uint(bv.n), words)
}
