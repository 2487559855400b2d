package succinct

import (
	"errors"
	"fmt"

	"github.com/hupe1980/succinct/bitvector"
	"github.com/hupe1980/succinct/codec"
	"github.com/hupe1980/succinct/intvector"
	"github.com/hupe1980/succinct/rank"
)

var (
	// ErrOutOfRange is returned for positions or ranks outside a structure.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidArgument is returned for malformed input such as a bad bit
	// string, a width outside [1, 64] or a value wider than its slot.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCorrupt is returned when a snapshot fails validation.
	ErrCorrupt = errors.New("corrupt snapshot")

	// ErrUnsupported is returned for snapshot versions, kinds or options
	// this build does not understand.
	ErrUnsupported = errors.New("unsupported")
)

// ErrUnsupportedType indicates a value Encode does not know how to encode.
type ErrUnsupportedType struct {
	Type string
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported type: %s", e.Type)
}

func (e *ErrUnsupportedType) Unwrap() error { return ErrUnsupported }

// ErrKindMismatch indicates a snapshot holding a different structure than
// the caller asked for.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrKindMismatch struct {
	Expected codec.Kind
	Actual   codec.Kind
	cause    error
}

func (e *ErrKindMismatch) Error() string {
	return fmt.Sprintf("kind mismatch: expected %s, got %s", e.Expected, e.Actual)
}

func (e *ErrKindMismatch) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Snapshot validation.
	if errors.Is(err, codec.ErrCorrupt) || errors.Is(err, codec.ErrChecksum) ||
		errors.Is(err, codec.ErrKindMismatch) || errors.Is(err, rank.ErrInconsistent) {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if errors.Is(err, codec.ErrUnsupported) {
		return fmt.Errorf("%w: %w", ErrUnsupported, err)
	}

	// Positions and ranks.
	if errors.Is(err, bitvector.ErrIndexOutOfRange) || errors.Is(err, bitvector.ErrSelectOutOfRange) ||
		errors.Is(err, intvector.ErrIndexOutOfRange) {
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}

	// Argument normalization.
	if errors.Is(err, bitvector.ErrInvalidBitString) || errors.Is(err, bitvector.ErrInvalidLength) ||
		errors.Is(err, intvector.ErrInvalidWidth) || errors.Is(err, intvector.ErrInvalidLength) ||
		errors.Is(err, intvector.ErrValueTooWide) || errors.Is(err, intvector.ErrWordCount) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
