package succinct

import (
	"fmt"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/succinct/bitvector"
	"github.com/hupe1980/succinct/codec"
	"github.com/hupe1980/succinct/intvector"
	"github.com/hupe1980/succinct/rank"
)

// Structure is the set of types Encode and Decode handle.
type Structure interface {
	*bitvector.BitVector | *intvector.IntVector | *rank.Index
}

// BuildRank builds a rank index over bits, where any non-zero value is a set bit.
func BuildRank[T constraints.Integer](bits []T, opts ...Option) *rank.Index {
	o := applyOptions(opts)
	return buildRank(bitvector.Build(bits), o)
}

// ParseRank builds a rank index over a string of '0' and '1' characters.
// Underscores are skipped.
func ParseRank(s string, opts ...Option) (*rank.Index, error) {
	bv, err := bitvector.ParseString(s)
	if err != nil {
		return nil, translateError(err)
	}
	return buildRank(bv, applyOptions(opts)), nil
}

func buildRank(bv *bitvector.BitVector, o options) *rank.Index {
	start := time.Now()
	idx := rank.New(bv, rank.WithLogger(o.logger.Logger))
	elapsed := time.Since(start)

	o.logger.LogBuild(idx.Stats(), elapsed)
	o.metricsCollector.RecordBuild(bv.Len(), elapsed)
	return idx
}

// Encode returns a snapshot of v, which must be a *bitvector.BitVector,
// a bitvector.View, an *intvector.IntVector or a *rank.Index.
func Encode(v any, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)

	var (
		kind codec.Kind
		data []byte
		err  error
	)
	start := time.Now()
	switch v := v.(type) {
	case *bitvector.BitVector:
		kind = codec.KindBitVector
		data, err = codec.EncodeBitVector(v, o.codecOptions...)
	case bitvector.View:
		kind = codec.KindBitVector
		data, err = codec.EncodeBitVector(v.Clone(), o.codecOptions...)
	case *intvector.IntVector:
		kind = codec.KindIntVector
		data, err = codec.EncodeIntVector(v, o.codecOptions...)
	case *rank.Index:
		kind = codec.KindRank
		data, err = codec.EncodeRank(v, o.codecOptions...)
	default:
		return nil, &ErrUnsupportedType{Type: fmt.Sprintf("%T", v)}
	}
	err = translateError(err)

	o.logger.LogEncode(kind, len(data), err)
	o.metricsCollector.RecordEncode(kind, len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Decode restores a snapshot written by Encode. The result is a
// *bitvector.BitVector, an *intvector.IntVector or a *rank.Index depending on
// the kind recorded in the header.
func Decode(data []byte, opts ...Option) (any, error) {
	o := applyOptions(opts)

	start := time.Now()
	kind, err := codec.KindOf(data)
	if err != nil {
		err = translateError(err)
		o.logger.LogDecode(kind, len(data), err)
		o.metricsCollector.RecordDecode(kind, len(data), time.Since(start), err)
		return nil, err
	}

	var v any
	switch kind {
	case codec.KindBitVector:
		v, err = codec.DecodeBitVector(data)
	case codec.KindIntVector:
		v, err = codec.DecodeIntVector(data)
	case codec.KindRank:
		v, err = codec.DecodeRank(data)
	default:
		err = fmt.Errorf("%w: %s", codec.ErrUnsupported, kind)
	}
	err = translateError(err)

	o.logger.LogDecode(kind, len(data), err)
	o.metricsCollector.RecordDecode(kind, len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeAs is Decode with the expected structure type. It fails with
// *ErrKindMismatch when the snapshot holds something else.
func DecodeAs[T Structure](data []byte, opts ...Option) (T, error) {
	var zero T

	v, err := Decode(data, opts...)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		actual, _ := codec.KindOf(data)
		return zero, &ErrKindMismatch{
			Expected: kindOf(zero),
			Actual:   actual,
			cause:    codec.ErrKindMismatch,
		}
	}
	return t, nil
}

func kindOf(v any) codec.Kind {
	switch v.(type) {
	case *bitvector.BitVector:
		return codec.KindBitVector
	case *intvector.IntVector:
		return codec.KindIntVector
	case *rank.Index:
		return codec.KindRank
	default:
		return 0
	}
}
