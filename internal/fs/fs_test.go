package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.scnt")

	require.NoError(t, WriteAtomic(Default, path, []byte("first"), 0o600))
	require.NoError(t, WriteAtomic(Default, path, []byte("second"), 0o600))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	_, err = os.Stat(path + ".tmp")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteAtomic_Faults(t *testing.T) {
	tests := []struct {
		name  string
		fault Fault
	}{
		{"short write", Fault{FailAfterBytes: 3}},
		{"sync", Fault{FailAfterBytes: -1, FailOnSync: true}},
		{"close", Fault{FailAfterBytes: -1, FailOnClose: true}},
		{"rename", Fault{FailAfterBytes: -1, FailOnRename: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "index.scnt")
			require.NoError(t, os.WriteFile(path, []byte("original"), 0o600))

			ffs := NewFaultyFS(nil)
			ffs.AddRule(".tmp", tt.fault)

			err := WriteAtomic(ffs, path, []byte("replacement"), 0o600)
			require.ErrorIs(t, err, ErrInjected)

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "original", string(got), "target must survive a failed write")

			_, err = os.Stat(path + ".tmp")
			assert.ErrorIs(t, err, os.ErrNotExist, "temporary file must be removed")
		})
	}
}

func TestFaultyFS_CustomError(t *testing.T) {
	custom := os.ErrPermission
	ffs := NewFaultyFS(LocalFS{})
	ffs.Default = Fault{FailAfterBytes: 0, Err: custom}

	f, err := ffs.OpenFile(filepath.Join(t.TempDir(), "x"), os.O_CREATE|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Write([]byte{1})
	require.ErrorIs(t, err, custom)
}

func TestWriteAtomic_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "index.scnt")
	require.Error(t, WriteAtomic(Default, path, []byte("x"), 0o600))
}
