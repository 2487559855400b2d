package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/succinct"
	"github.com/hupe1980/succinct/codec"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := newApp(&buf).Run(append([]string{"succinct"}, args...))
	return buf.String(), err
}

func TestDemo(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)
	assert.Equal(t, "bit 0: 0\nbit 1: 1\nbit 0 after set: 1\nbits: 1100110\n", out)
}

func TestRank(t *testing.T) {
	out, err := run(t, "rank", "--bits", "0100110", "--index", "4")
	require.NoError(t, err)
	assert.Equal(t, "rank1(4) = 2\nrank0(4) = 3\n", out)

	_, err = run(t, "rank", "--bits", "0100110", "--index", "7")
	require.ErrorIs(t, err, succinct.ErrOutOfRange)

	_, err = run(t, "rank", "--bits", "01a", "--index", "0")
	require.ErrorIs(t, err, succinct.ErrInvalidArgument)

	_, err = run(t, "rank", "--index", "0")
	require.Error(t, err)
}

func TestSelect(t *testing.T) {
	out, err := run(t, "select", "--bits", "0100110", "--k", "2")
	require.NoError(t, err)
	assert.Equal(t, "select1(2) = 4\n", out)

	out, err = run(t, "select", "--bits", "0100110", "--k", "3", "--zero")
	require.NoError(t, err)
	assert.Equal(t, "select0(3) = 3\n", out)

	_, err = run(t, "select", "--bits", "0100110", "--k", "4")
	require.ErrorIs(t, err, succinct.ErrOutOfRange)
}

func TestStats(t *testing.T) {
	out, err := run(t, "stats", "--bits", "0100110")
	require.NoError(t, err)
	assert.Contains(t, out, "bits=7 ones=3")
	assert.Contains(t, out, "(none)")

	_, err = run(t, "stats", "--bits", "0100110", "--compression", "snappy")
	require.ErrorIs(t, err, codec.ErrUnsupported)
}

func TestEncode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.scnt")

	out, err := run(t, "encode", "--bits", "0100_1100", "--out", path, "--compression", "lz4", "--checksum", "xxh3")
	require.NoError(t, err)
	assert.Equal(t, "wrote "+path+" (8 bits)\n", out)

	out, err = run(t, "inspect", path)
	require.NoError(t, err)
	assert.Regexp(t, `kind\s+\|\s+rank`, out)
	assert.Regexp(t, `length\s+\|\s+8`, out)

	_, err = run(t, "encode", "--bits", "01", "--out", path, "--checksum", "md5")
	require.ErrorIs(t, err, codec.ErrUnsupported)
}

func TestInspect(t *testing.T) {
	idx, err := succinct.ParseRank("0100110")
	require.NoError(t, err)
	data, err := succinct.Encode(idx, succinct.WithChecksum(codec.ChecksumXXH3))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "index.scnt")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	out, err := run(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "FIELD")
	assert.Regexp(t, `kind\s+\|\s+rank`, out)
	assert.Regexp(t, `checksum\s+\|\s+xxh3 [0-9a-f]{16}`, out)
	assert.Regexp(t, `length\s+\|\s+7`, out)
	assert.Contains(t, out, "payload: ok\n")

	data[len(data)-1] ^= 0xff
	require.NoError(t, os.WriteFile(path, data, 0o600))
	_, err = run(t, "inspect", path)
	require.ErrorIs(t, err, succinct.ErrCorrupt)

	_, err = run(t, "inspect")
	require.ErrorIs(t, err, succinct.ErrInvalidArgument)

	require.NoError(t, os.WriteFile(path, []byte("SCNT"), 0o600))
	_, err = run(t, "inspect", path)
	require.ErrorIs(t, err, succinct.ErrCorrupt)
}

func TestBench(t *testing.T) {
	out, err := run(t, "bench", "--n", "5000", "--queries", "3000", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "build: 5000 bits in ")
	assert.Contains(t, out, "rank1: 3000 queries, ")
	assert.Contains(t, out, "select1: 3000 queries, ")

	out, err = run(t, "bench", "--n", "100", "--queries", "10", "--density", "0", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "select1: skipped, no ones\n")

	_, err = run(t, "bench", "--n", "0")
	require.ErrorIs(t, err, succinct.ErrInvalidArgument)

	_, err = run(t, "bench", "--density", "1.5")
	require.ErrorIs(t, err, succinct.ErrInvalidArgument)
}
