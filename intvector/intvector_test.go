package intvector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/succinct/testutil"
)

func TestNew(t *testing.T) {
	t.Run("one value per width", func(t *testing.T) {
		for l := 1; l <= 64; l++ {
			iv, err := New(1, l)
			require.NoError(t, err)
			assert.Len(t, iv.Words(), 1)
			assert.Equal(t, l, iv.Width())
		}
	})

	t.Run("word counts", func(t *testing.T) {
		tests := []struct {
			n, l      int
			wantWords int
		}{
			{2, 32, 1},
			{2, 33, 2},
			{3, 21, 1},
			{3, 22, 2},
			{3, 42, 2},
			{3, 43, 3},
			{4, 3, 1},
			{4, 32, 2},
			{0, 8, 0},
		}
		for _, tt := range tests {
			iv, err := New(tt.n, tt.l)
			require.NoError(t, err)
			assert.Len(t, iv.Words(), tt.wantWords, "n=%d l=%d", tt.n, tt.l)
			assert.Equal(t, tt.n, iv.Len())
		}
	})

	t.Run("invalid width", func(t *testing.T) {
		_, err := New(10, 65)
		assert.ErrorIs(t, err, ErrInvalidWidth)
		_, err = New(10, 0)
		assert.ErrorIs(t, err, ErrInvalidWidth)
	})

	t.Run("invalid length", func(t *testing.T) {
		_, err := New(-1, 8)
		assert.ErrorIs(t, err, ErrInvalidLength)
		_, err = New(math.MaxInt, 64)
		assert.ErrorIs(t, err, ErrInvalidLength)
	})
}

func TestSetGet(t *testing.T) {
	t.Run("small values", func(t *testing.T) {
		iv, err := New(5, 8)
		require.NoError(t, err)

		require.NoError(t, iv.Set(0, 12))
		got, err := iv.Get(0)
		require.NoError(t, err)
		assert.Equal(t, uint64(12), got)

		for i := 1; i < 5; i++ {
			got, err := iv.Get(i)
			require.NoError(t, err)
			assert.Equal(t, uint64(0), got)
		}

		require.NoError(t, iv.Set(2, 1))
		require.NoError(t, iv.Set(3, 0))
		require.NoError(t, iv.Set(4, 2))
		assert.Equal(t, []uint64{12, 0, 1, 0, 2}, iv.Values())
	})

	t.Run("full width words", func(t *testing.T) {
		iv, err := New(2, 64)
		require.NoError(t, err)
		require.NoError(t, iv.Set(0, math.MaxUint64))
		require.NoError(t, iv.Set(1, math.MaxUint64))
		assert.Equal(t, []uint64{math.MaxUint64, math.MaxUint64}, iv.Words())

		require.NoError(t, iv.Set(0, 0))
		assert.Equal(t, []uint64{0, math.MaxUint64}, iv.Words())
	})

	t.Run("half words fill storage", func(t *testing.T) {
		iv, err := New(4, 32)
		require.NoError(t, err)
		for i := 0; i < 4; i++ {
			require.NoError(t, iv.Set(i, math.MaxUint32))
		}
		assert.Equal(t, []uint64{math.MaxUint64, math.MaxUint64}, iv.Words())
	})

	t.Run("crossing a word boundary", func(t *testing.T) {
		// With l=7 value 9 occupies bits [63, 69].
		iv, err := New(12, 7)
		require.NoError(t, err)
		require.NoError(t, iv.Set(8, 0))
		require.NoError(t, iv.Set(9, 0b1010101))
		require.NoError(t, iv.Set(10, 0b1111111))

		got, err := iv.Get(9)
		require.NoError(t, err)
		assert.Equal(t, uint64(0b1010101), got)

		words := iv.Words()
		assert.Equal(t, uint64(1), words[0]>>63)
		assert.Equal(t, uint64(0b101010), words[1]&0b111111)

		// Overwriting the straddling value leaves its neighbours intact.
		require.NoError(t, iv.Set(9, 0))
		assert.Equal(t, []uint64{0, 0, 0b1111111}, iv.Values()[8:11])
	})

	t.Run("out of range", func(t *testing.T) {
		iv, err := New(3, 4)
		require.NoError(t, err)
		assert.ErrorIs(t, iv.Set(3, 1), ErrIndexOutOfRange)
		_, err = iv.Get(3)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		_, err = iv.Get(-1)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("value width is exact", func(t *testing.T) {
		iv, err := New(2, 3)
		require.NoError(t, err)
		require.NoError(t, iv.Set(0, 7))
		assert.ErrorIs(t, iv.Set(1, 8), ErrValueTooWide)

		got, err := iv.Get(1)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), got, "rejected value must not be written")
	})
}

func TestRoundTripAllWidths(t *testing.T) {
	rng := testutil.NewRNG(42)

	for l := 1; l <= 64; l++ {
		n := 1 + rng.Intn(200)
		iv, err := New(n, l)
		require.NoError(t, err)

		want := rng.Values(n, l)
		// Write in random order so that every value is written next to
		// already populated neighbours.
		for _, i := range rng.Perm(n) {
			require.NoError(t, iv.Set(i, want[i]))
		}
		for i, w := range want {
			got, err := iv.Get(i)
			require.NoError(t, err)
			require.Equal(t, w, got, "l=%d i=%d", l, i)
		}

		// Largest representable value.
		top := ^uint64(0) >> (64 - l)
		require.NoError(t, iv.Set(n-1, top))
		got, _ := iv.Get(n - 1)
		require.Equal(t, top, got, "l=%d max value", l)
		if l < 64 {
			require.ErrorIs(t, iv.Set(0, top+1), ErrValueTooWide, "l=%d", l)
		}
	}
}

func TestFromValues(t *testing.T) {
	iv := FromValues([]uint64{0, 6, 12, 18, 24, 30})
	assert.Equal(t, 5, iv.Width())
	assert.Equal(t, "[0,6,12,18,24,30]", iv.String())

	zeros := FromValues([]uint64{0, 0, 0})
	assert.Equal(t, 1, zeros.Width())

	empty := FromValues(nil)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, "[]", empty.String())
}

func TestFromWords(t *testing.T) {
	src := FromValues([]uint64{1, 2, 3, 4, 5})
	iv, err := FromWords(src.Len(), src.Width(), src.Words())
	require.NoError(t, err)
	assert.True(t, src.Equal(iv))

	_, err = FromWords(5, 3, []uint64{0, 0})
	assert.ErrorIs(t, err, ErrWordCount)
}

func TestBitsNeeded(t *testing.T) {
	assert.Equal(t, 1, BitsNeeded(0))
	assert.Equal(t, 1, BitsNeeded(1))
	assert.Equal(t, 2, BitsNeeded(2))
	assert.Equal(t, 2, BitsNeeded(3))
	assert.Equal(t, 3, BitsNeeded(4))
	assert.Equal(t, 6, BitsNeeded(36))
	assert.Equal(t, 64, BitsNeeded(math.MaxUint64))
}

func TestEqualClone(t *testing.T) {
	a, err := New(4, 8)
	require.NoError(t, err)
	require.NoError(t, a.Set(1, 200))

	b := a.Clone()
	assert.True(t, a.Equal(b))

	require.NoError(t, b.Set(2, 1))
	assert.False(t, a.Equal(b))

	c, err := New(4, 9)
	require.NoError(t, err)
	require.NoError(t, c.Set(1, 200))
	assert.False(t, a.Equal(c), "different widths are never equal")
	assert.False(t, a.Equal(nil))
}

func TestString(t *testing.T) {
	iv, err := New(4, 8)
	require.NoError(t, err)
	require.NoError(t, iv.Set(1, 1))
	require.NoError(t, iv.Set(2, 2))
	require.NoError(t, iv.Set(3, 3))
	assert.Equal(t, "[0,1,2,3]", iv.String())
}
