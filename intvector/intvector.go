package intvector

import (
	"fmt"
	"math/bits"
	"slices"
	"strconv"
	"strings"

	"github.com/hupe1980/succinct/internal/conv"
)

const wordBits = 64

// IntVector stores n unsigned integers using l bits each.
type IntVector struct {
	// l is the width of each value in bits, in [1, 64].
	l int

	// n is the number of values.
	n int

	// data holds the packed values, ceil(n*l/64) words.
	data []uint64
}

// New returns a zeroed vector of n values, l bits each.
func New(n, l int) (*IntVector, error) {
	if l < 1 || l > wordBits {
		return nil, fmt.Errorf("%w: %d, want [1,64]", ErrInvalidWidth, l)
	}
	total, err := conv.MulInt(n, l)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLength, err)
	}
	return &IntVector{
		l:    l,
		n:    n,
		data: make([]uint64, (total+wordBits-1)/wordBits),
	}, nil
}

// FromValues packs values using the smallest width that holds the largest
// value, with a minimum of one bit.
func FromValues(values []uint64) *IntVector {
	var maxVal uint64
	for _, v := range values {
		maxVal = max(maxVal, v)
	}
	iv, _ := New(len(values), BitsNeeded(maxVal))
	for i, v := range values {
		iv.put(i, v)
	}
	return iv
}

// FromWords returns a vector backed by a copy of words. It fails if the word
// count does not match ceil(n*l/64).
func FromWords(n, l int, words []uint64) (*IntVector, error) {
	iv, err := New(n, l)
	if err != nil {
		return nil, err
	}
	if len(words) != len(iv.data) {
		return nil, fmt.Errorf("%w: %d words for %d values of %d bits, want %d",
			ErrWordCount, len(words), n, l, len(iv.data))
	}
	copy(iv.data, words)
	return iv, nil
}

// BitsNeeded returns the number of bits needed to represent v, at least 1.
func BitsNeeded(v uint64) int {
	return max(1, bits.Len64(v))
}

// Len returns the number of values.
func (iv *IntVector) Len() int {
	return iv.n
}

// Width returns the number of bits per value.
func (iv *IntVector) Width() int {
	return iv.l
}

// SizeInBits returns the size of the packed storage.
func (iv *IntVector) SizeInBits() int {
	return len(iv.data) * wordBits
}

// Set stores v at index i. It fails if i is out of range or if v does not
// fit in Width() bits, i.e. v >= 2^l. Nothing is written on failure.
func (iv *IntVector) Set(i int, v uint64) error {
	if err := iv.checkIndex(i); err != nil {
		return err
	}
	if bits.Len64(v) > iv.l {
		return fmt.Errorf("%w: %d needs %d bits, width is %d", ErrValueTooWide, v, bits.Len64(v), iv.l)
	}
	iv.put(i, v)
	return nil
}

// put writes v at index i. The caller has validated both.
func (iv *IntVector) put(i int, v uint64) {
	pos := i * iv.l
	k, off := pos/wordBits, uint(pos%wordBits)
	l := uint(iv.l)

	if off+l <= wordBits {
		mask := lowMask(l) << off
		iv.data[k] = iv.data[k]&^mask | v<<off
		return
	}

	// The value straddles words k and k+1: the low (64-off) bits go to the
	// top of word k, the remaining high bits to the bottom of word k+1.
	spill := off + l - wordBits
	iv.data[k] = iv.data[k]&lowMask(off) | v<<off
	iv.data[k+1] = iv.data[k+1]&^lowMask(spill) | v>>(wordBits-off)
}

// Get returns the value at index i.
func (iv *IntVector) Get(i int) (uint64, error) {
	if err := iv.checkIndex(i); err != nil {
		return 0, err
	}
	return iv.at(i), nil
}

func (iv *IntVector) at(i int) uint64 {
	pos := i * iv.l
	k, off := pos/wordBits, uint(pos%wordBits)
	l := uint(iv.l)

	if off+l <= wordBits {
		return (iv.data[k] >> off) & lowMask(l)
	}

	spill := off + l - wordBits
	low := iv.data[k] >> off
	high := iv.data[k+1] & lowMask(spill)
	return high<<(wordBits-off) | low
}

// Values returns all values in order.
func (iv *IntVector) Values() []uint64 {
	out := make([]uint64, iv.n)
	for i := range out {
		out[i] = iv.at(i)
	}
	return out
}

// Words returns a copy of the packed storage.
func (iv *IntVector) Words() []uint64 {
	return slices.Clone(iv.data)
}

// Clone returns a deep copy.
func (iv *IntVector) Clone() *IntVector {
	return &IntVector{
		l:    iv.l,
		n:    iv.n,
		data: slices.Clone(iv.data),
	}
}

// Equal reports whether both vectors have the same length, width and contents.
func (iv *IntVector) Equal(other *IntVector) bool {
	if other == nil {
		return false
	}
	return iv.n == other.n && iv.l == other.l && slices.Equal(iv.data, other.data)
}

// String renders the values as "[v0,v1,...]".
func (iv *IntVector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < iv.n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(iv.at(i), 10))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (iv *IntVector) checkIndex(i int) error {
	if i < 0 || i >= iv.n {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, iv.n)
	}
	return nil
}

// lowMask returns a mask with the low w bits set, for w in [0, 64].
func lowMask(w uint) uint64 {
	if w >= wordBits {
		return ^uint64(0)
	}
	return (uint64(1) << w) - 1
}
