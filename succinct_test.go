package succinct

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/succinct/bitvector"
	"github.com/hupe1980/succinct/codec"
	"github.com/hupe1980/succinct/intvector"
	"github.com/hupe1980/succinct/rank"
)

func TestBuildRank(t *testing.T) {
	idx := BuildRank([]uint8{0, 1, 0, 0, 1, 1, 0})
	require.Equal(t, 7, idx.Len())

	want := []uint64{0, 1, 1, 1, 2, 3, 3}
	for i, w := range want {
		r, err := idx.Rank1(i)
		require.NoError(t, err)
		assert.Equal(t, w, r, "rank1(%d)", i)
	}

	p, err := idx.Select1(2)
	require.NoError(t, err)
	assert.Equal(t, 4, p)
}

func TestParseRank(t *testing.T) {
	idx, err := ParseRank("0100_110")
	require.NoError(t, err)
	assert.Equal(t, "0100110", idx.Bits().String())

	_, err = ParseRank("01x")
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.ErrorIs(t, err, bitvector.ErrInvalidBitString)
}

func TestEncodeDecode(t *testing.T) {
	bv := bitvector.Build([]int{1, 0, 1, 1})
	iv := intvector.FromValues([]uint64{3, 1, 4, 1, 5, 9, 2, 6})
	idx := rank.New(bv)

	for _, c := range []codec.Compression{codec.CompressionNone, codec.CompressionLZ4, codec.CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			opts := []Option{WithCompression(c), WithChecksum(codec.ChecksumXXH3)}

			data, err := Encode(bv, opts...)
			require.NoError(t, err)
			v, err := Decode(data)
			require.NoError(t, err)
			require.IsType(t, &bitvector.BitVector{}, v)
			assert.True(t, bv.Equal(v.(*bitvector.BitVector)))

			data, err = Encode(iv, opts...)
			require.NoError(t, err)
			gotIV, err := DecodeAs[*intvector.IntVector](data)
			require.NoError(t, err)
			assert.True(t, iv.Equal(gotIV))

			data, err = Encode(idx, opts...)
			require.NoError(t, err)
			gotIdx, err := DecodeAs[*rank.Index](data)
			require.NoError(t, err)
			assert.True(t, gotIdx.Bits().Equal(bv))

			data, err = Encode(idx.Bits(), opts...)
			require.NoError(t, err)
			gotBV, err := DecodeAs[*bitvector.BitVector](data)
			require.NoError(t, err)
			assert.True(t, gotBV.Equal(bv))
		})
	}
}

func TestEncode_UnsupportedType(t *testing.T) {
	_, err := Encode([]int{1, 0})

	var ut *ErrUnsupportedType
	require.ErrorAs(t, err, &ut)
	assert.Equal(t, "[]int", ut.Type)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestDecodeAs_KindMismatch(t *testing.T) {
	data, err := Encode(bitvector.New(3))
	require.NoError(t, err)

	_, err = DecodeAs[*rank.Index](data)

	var km *ErrKindMismatch
	require.ErrorAs(t, err, &km)
	assert.Equal(t, codec.KindRank, km.Expected)
	assert.Equal(t, codec.KindBitVector, km.Actual)
	require.ErrorIs(t, err, codec.ErrKindMismatch)
}

func TestDecode_Errors(t *testing.T) {
	data, err := Encode(BuildRank([]int{1, 1, 0, 1}))
	require.NoError(t, err)

	corrupt := append([]byte(nil), data...)
	corrupt[len(corrupt)-1] ^= 0xff
	_, err = Decode(corrupt)
	require.ErrorIs(t, err, ErrCorrupt)
	require.ErrorIs(t, err, codec.ErrChecksum)

	_, err = Decode(data[:5])
	require.ErrorIs(t, err, ErrCorrupt)

	future := append([]byte(nil), data...)
	future[4] = 2
	_, err = Decode(future)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{bitvector.ErrIndexOutOfRange, ErrOutOfRange},
		{bitvector.ErrSelectOutOfRange, ErrOutOfRange},
		{intvector.ErrIndexOutOfRange, ErrOutOfRange},
		{intvector.ErrInvalidWidth, ErrInvalidArgument},
		{intvector.ErrValueTooWide, ErrInvalidArgument},
		{bitvector.ErrInvalidBitString, ErrInvalidArgument},
		{codec.ErrCorrupt, ErrCorrupt},
		{codec.ErrChecksum, ErrCorrupt},
		{rank.ErrInconsistent, ErrCorrupt},
		{codec.ErrUnsupported, ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got := translateError(tt.err)
			require.ErrorIs(t, got, tt.want)
			require.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, translateError(nil))

	other := errors.New("other")
	assert.Equal(t, other, translateError(other))
}

func TestMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	opts := []Option{WithMetricsCollector(metrics)}

	idx := BuildRank([]int{1, 0, 1, 0, 1}, opts...)
	data, err := Encode(idx, opts...)
	require.NoError(t, err)
	_, err = Decode(data, opts...)
	require.NoError(t, err)
	_, err = Decode(data[:len(data)-1], opts...)
	require.Error(t, err)
	_, err = Encode(struct{}{}, opts...)
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.BuildCount)
	assert.Equal(t, int64(5), stats.BuildBits)
	assert.Equal(t, int64(1), stats.EncodeCount)
	assert.Equal(t, int64(len(data)), stats.EncodeBytes)
	assert.Equal(t, int64(0), stats.EncodeErrors)
	assert.Equal(t, int64(2), stats.DecodeCount)
	assert.Equal(t, int64(1), stats.DecodeErrors)
	assert.Equal(t, int64(2*len(data)-1), stats.DecodeBytes)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	idx := BuildRank(make([]int, 1000), WithLogger(logger))
	out := buf.String()
	assert.Contains(t, out, "rank index built")
	assert.Contains(t, out, "rank index ready")
	assert.Contains(t, out, "bits=1000")

	buf.Reset()
	data, err := Encode(idx, WithLogger(logger.WithKind(codec.KindRank)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "encode completed")

	buf.Reset()
	_, err = Decode(data[:len(data)-2], WithLogger(logger))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "decode failed")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestNilOptions(t *testing.T) {
	idx := BuildRank([]int{1}, nil, WithLogger(nil), WithMetricsCollector(nil))
	require.Equal(t, 1, idx.Len())
}
