package intvector

import "errors"

var (
	// ErrInvalidWidth is returned when the value width is outside [1, 64].
	ErrInvalidWidth = errors.New("invalid value width")

	// ErrInvalidLength is returned when the vector length is negative or
	// its packed size overflows.
	ErrInvalidLength = errors.New("invalid length")

	// ErrIndexOutOfRange is returned when an index lies outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrValueTooWide is returned when a value needs more bits than the vector width.
	ErrValueTooWide = errors.New("value too wide")

	// ErrWordCount is returned by FromWords when the word count does not match the geometry.
	ErrWordCount = errors.New("word count mismatch")
)
