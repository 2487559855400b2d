package rank

import (
	"fmt"

	"github.com/hupe1980/succinct/bitvector"
	"github.com/hupe1980/succinct/intvector"
)

// Restore reassembles an index from previously built tables without
// rescanning the bits. The tables are checked for shape and for the
// structural invariants (level1 starts at zero and never decreases, level2
// is zero at every coarse boundary); the sums themselves are trusted.
//
// Like New, Restore copies all three inputs.
func Restore(bv *bitvector.BitVector, level1, level2 *intvector.IntVector) (*Index, error) {
	if bv == nil || level1 == nil || level2 == nil {
		return nil, fmt.Errorf("%w: missing component", ErrInconsistent)
	}
	n := bv.Len()
	coarse, fine := blockSizes(n)

	if want := coarse.count(n); level1.Len() != want {
		return nil, fmt.Errorf("%w: level1 has %d entries, want %d", ErrInconsistent, level1.Len(), want)
	}
	if want := fine.count(n); level2.Len() != want {
		return nil, fmt.Errorf("%w: level2 has %d entries, want %d", ErrInconsistent, level2.Len(), want)
	}

	l1 := level1.Values()
	if l1[0] != 0 {
		return nil, fmt.Errorf("%w: level1[0] = %d", ErrInconsistent, l1[0])
	}
	for j := 1; j < len(l1); j++ {
		if l1[j] < l1[j-1] {
			return nil, fmt.Errorf("%w: level1 decreases at %d", ErrInconsistent, j)
		}
	}

	l2 := level2.Values()
	for k, v := range l2 {
		pos := fine.start(k)
		if coarse.start(coarse.block(pos)) == pos && v != 0 {
			return nil, fmt.Errorf("%w: level2[%d] = %d at a coarse boundary", ErrInconsistent, k, v)
		}
	}

	ones := bv.Count(bitvector.One)
	if last := l1[len(l1)-1]; last > ones {
		return nil, fmt.Errorf("%w: level1 counts %d ones, vector has %d", ErrInconsistent, last, ones)
	}

	return &Index{
		bv:     bv.Clone(),
		coarse: coarse,
		fine:   fine,
		level1: level1.Clone(),
		level2: level2.Clone(),
		ones:   ones,
	}, nil
}
