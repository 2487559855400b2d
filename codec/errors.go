package codec

import "errors"

var (
	// ErrCorrupt is returned when a snapshot is truncated or structurally invalid.
	ErrCorrupt = errors.New("corrupt snapshot")

	// ErrChecksum is returned when the payload does not match its checksum.
	ErrChecksum = errors.New("checksum mismatch")

	// ErrUnsupported is returned for unknown versions, kinds, compressions or
	// checksum algorithms.
	ErrUnsupported = errors.New("unsupported snapshot")

	// ErrKindMismatch is returned when a snapshot holds a different structure
	// than the decoder expects.
	ErrKindMismatch = errors.New("snapshot kind mismatch")
)
