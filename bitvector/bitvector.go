package bitvector

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"
)

// WordBits is the number of bits per backing word.
const WordBits = 64

// BitVector is a fixed-length packed array of bits.
type BitVector struct {
	// words is the backing storage, ceil(n/64) words with a minimum of one.
	words []uint64

	// n is the logical length in bits.
	n int
}

// wordsFor returns the number of backing words for n bits.
func wordsFor(n int) int {
	w := (n + WordBits - 1) / WordBits
	if w == 0 {
		return 1
	}
	return w
}

// New returns an all-zero vector of length n.
func New(n int) *BitVector {
	if n < 0 {
		panic(fmt.Sprintf("bitvector: negative length %d", n))
	}
	return &BitVector{
		words: make([]uint64, wordsFor(n)),
		n:     n,
	}
}

// Build returns a vector with len(values) bits where bit i is set iff values[i] != 0.
func Build[T constraints.Integer](values []T) *BitVector {
	bv := New(len(values))
	for i, v := range values {
		if v != 0 {
			bv.words[i/WordBits] |= 1 << (uint(i) % WordBits)
		}
	}
	return bv
}

// FromWords returns a vector of length 64*len(words) whose bit k*64+j is bit j of words[k].
// The words are copied.
func FromWords(words []uint64) *BitVector {
	bv := New(len(words) * WordBits)
	copy(bv.words, words)
	return bv
}

// FromWordsWithLength returns a vector of length n backed by a copy of words.
// len(words) must be exactly the number of words New(n) would allocate. Bits
// at positions n and above are cleared.
func FromWordsWithLength(n int, words []uint64) (*BitVector, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if len(words) != wordsFor(n) {
		return nil, fmt.Errorf("%w: %d words for %d bits, want %d", ErrInvalidLength, len(words), n, wordsFor(n))
	}
	bv := New(n)
	copy(bv.words, words)
	last := len(bv.words) - 1
	bv.words[last] &= bv.validMask(last)
	return bv, nil
}

// ParseString builds a vector from a string of '0' and '1' characters.
// Underscores are accepted as visual separators and skipped.
func ParseString(s string) (*BitVector, error) {
	values := make([]uint8, 0, len(s))
	for i, c := range s {
		switch c {
		case '0':
			values = append(values, 0)
		case '1':
			values = append(values, 1)
		case '_':
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidBitString, c, i)
		}
	}
	return Build(values), nil
}

// Len returns the logical length in bits.
func (bv *BitVector) Len() int {
	return bv.n
}

// Get returns the bit at position i.
func (bv *BitVector) Get(i int) (Bit, error) {
	if err := bv.checkIndex(i); err != nil {
		return Zero, err
	}
	return Bit((bv.words[i/WordBits] >> (uint(i) % WordBits)) & 1), nil
}

// Set assigns the bit at position i. Any non-zero b sets the bit.
func (bv *BitVector) Set(i int, b Bit) error {
	if err := bv.checkIndex(i); err != nil {
		return err
	}
	mask := uint64(1) << (uint(i) % WordBits)
	if b != Zero {
		bv.words[i/WordBits] |= mask
	} else {
		bv.words[i/WordBits] &^= mask
	}
	return nil
}

// Rank1 returns the number of 1-bits in [0, i].
func (bv *BitVector) Rank1(i int) (uint64, error) {
	if err := bv.checkIndex(i); err != nil {
		return 0, err
	}
	w := i / WordBits
	var rank int
	for _, word := range bv.words[:w] {
		rank += bits.OnesCount64(word)
	}
	rank += bits.OnesCount64(bv.words[w] & maskThrough(uint(i)%WordBits))
	return uint64(rank), nil
}

// Rank0 returns the number of 0-bits in [0, i].
func (bv *BitVector) Rank0(i int) (uint64, error) {
	r, err := bv.Rank1(i)
	if err != nil {
		return 0, err
	}
	return uint64(i) + 1 - r, nil
}

// Select1 returns the position of the k-th 1-bit, counting from k = 1.
func (bv *BitVector) Select1(k int) (int, error) {
	return bv.selectBit(k, One)
}

// Select0 returns the position of the k-th 0-bit, counting from k = 1.
// Bits above Len() in the last word are never counted.
func (bv *BitVector) Select0(k int) (int, error) {
	return bv.selectBit(k, Zero)
}

func (bv *BitVector) selectBit(k int, kind Bit) (int, error) {
	if k <= 0 {
		return 0, fmt.Errorf("%w: k=%d, want k >= 1", ErrSelectOutOfRange, k)
	}
	remaining := k
	for w := range bv.words {
		word := bv.match(w, kind)
		c := bits.OnesCount64(word)
		if c >= remaining {
			return w*WordBits + select64(word, remaining-1), nil
		}
		remaining -= c
	}
	return 0, fmt.Errorf("%w: k=%d, only %d %s-bits in %d bits",
		ErrSelectOutOfRange, k, k-remaining, kind, bv.n)
}

// Scan counts occurrences of kind in the closed range [start, stop], stopping
// early once limit matches have been seen. It returns the number of matches
// and the position where counting stopped: the position of the limit-th
// match when the limit is reached, stop otherwise. A limit of zero stops
// before examining any bit and reports start.
//
// Words that lie entirely inside the range are popcounted in one step; the
// boundary words are masked first.
func (bv *BitVector) Scan(start, stop int, kind Bit, limit uint64) (uint64, int, error) {
	if err := bv.checkIndex(start); err != nil {
		return 0, 0, err
	}
	if stop < start || stop >= bv.n {
		return 0, 0, fmt.Errorf("%w: scan [%d, %d], length %d", ErrIndexOutOfRange, start, stop, bv.n)
	}
	if limit == 0 {
		return 0, start, nil
	}

	var count uint64
	first, last := start/WordBits, stop/WordBits
	for w := first; w <= last; w++ {
		lo, hi := uint(0), uint(WordBits-1)
		if w == first {
			lo = uint(start) % WordBits
		}
		if w == last {
			hi = uint(stop) % WordBits
		}

		word := bv.words[w]
		if kind == Zero {
			word = ^word
		}
		word &= maskRange(lo, hi)

		c := uint64(bits.OnesCount64(word))
		if count+c >= limit {
			return limit, w*WordBits + select64(word, int(limit-count-1)), nil
		}
		count += c
	}
	return count, stop, nil
}

// Count returns the number of bits equal to kind.
func (bv *BitVector) Count(kind Bit) uint64 {
	var c int
	for w := range bv.words {
		c += bits.OnesCount64(bv.match(w, kind))
	}
	return uint64(c)
}

// Ones iterates over the positions of the set bits in ascending order.
func (bv *BitVector) Ones() iter.Seq[int] {
	return func(yield func(int) bool) {
		for w := range bv.words {
			word := bv.match(w, One)
			for word != 0 {
				if !yield(w*WordBits + bits.TrailingZeros64(word)) {
					return
				}
				word &= word - 1
			}
		}
	}
}

// Words returns a copy of the backing words.
func (bv *BitVector) Words() []uint64 {
	out := make([]uint64, len(bv.words))
	copy(out, bv.words)
	return out
}

// Clone returns a deep copy.
func (bv *BitVector) Clone() *BitVector {
	return &BitVector{
		words: bv.Words(),
		n:     bv.n,
	}
}

// Equal reports whether both vectors have the same length and bits.
func (bv *BitVector) Equal(other *BitVector) bool {
	if other == nil || bv.n != other.n {
		return false
	}
	for w := range bv.words {
		if bv.match(w, One) != other.match(w, One) {
			return false
		}
	}
	return true
}

// String renders the vector as a string of '0' and '1', position 0 first.
func (bv *BitVector) String() string {
	var sb strings.Builder
	sb.Grow(bv.n)
	for i := 0; i < bv.n; i++ {
		if bv.words[i/WordBits]&(1<<(uint(i)%WordBits)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// View returns a read-only handle to the vector.
func (bv *BitVector) View() View {
	return View{bv: bv}
}

func (bv *BitVector) checkIndex(i int) error {
	if i < 0 || i >= bv.n {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, bv.n)
	}
	return nil
}

// match returns word w with the bits equal to kind set, restricted to
// positions below n.
func (bv *BitVector) match(w int, kind Bit) uint64 {
	word := bv.words[w]
	if kind == Zero {
		word = ^word
	}
	return word & bv.validMask(w)
}

// validMask returns the mask of positions below n within word w.
func (bv *BitVector) validMask(w int) uint64 {
	valid := bv.n - w*WordBits
	switch {
	case valid <= 0:
		return 0
	case valid >= WordBits:
		return ^uint64(0)
	default:
		return (uint64(1) << uint(valid)) - 1
	}
}
