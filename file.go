package succinct

import (
	"fmt"

	"github.com/hupe1980/succinct/internal/fs"
	"github.com/hupe1980/succinct/internal/mmap"
)

// WriteFile encodes v like Encode and atomically replaces the file at path
// with the snapshot.
func WriteFile(path string, v any, opts ...Option) error {
	data, err := Encode(v, opts...)
	if err != nil {
		return err
	}
	o := applyOptions(opts)
	if err := fs.WriteAtomic(o.fileSystem, path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

// ReadFile memory-maps the snapshot at path and decodes it like Decode.
// The result does not reference the mapping.
func ReadFile(path string, opts ...Option) (any, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	defer m.Close()

	return Decode(m.Bytes(), opts...)
}
