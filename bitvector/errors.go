package bitvector

import "errors"

var (
	// ErrIndexOutOfRange is returned when a position lies outside [0, Len()),
	// or when a scan range is empty or reversed.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrSelectOutOfRange is returned when select is asked for the 0-th
	// occurrence or for more occurrences than the vector holds.
	ErrSelectOutOfRange = errors.New("select out of range")

	// ErrInvalidLength is returned when a length and its backing words disagree.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidBitString is returned by ParseString for characters other than '0' and '1'.
	ErrInvalidBitString = errors.New("invalid bit string")
)
