package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/succinct/bitvector"
	"github.com/hupe1980/succinct/internal/conv"
	"github.com/hupe1980/succinct/internal/hash"
	"github.com/hupe1980/succinct/intvector"
	"github.com/hupe1980/succinct/rank"
)

const (
	magic   = 0x544E4353 // "SCNT"
	version = 1

	// HeaderSize is the fixed size of the snapshot header in bytes.
	HeaderSize = 28
)

// Kind identifies the structure held by a snapshot.
type Kind uint8

const (
	KindBitVector Kind = 1
	KindIntVector Kind = 2
	KindRank      Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindBitVector:
		return "bitvector"
	case KindIntVector:
		return "intvector"
	case KindRank:
		return "rank"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Checksum selects the hash stored over the uncompressed payload.
type Checksum uint8

const (
	// ChecksumCRC32C is CRC-32 with the Castagnoli polynomial.
	ChecksumCRC32C Checksum = 0
	// ChecksumXXH3 is the 64-bit XXH3 hash.
	ChecksumXXH3 Checksum = 1
)

func (c Checksum) String() string {
	switch c {
	case ChecksumCRC32C:
		return "crc32c"
	case ChecksumXXH3:
		return "xxh3"
	default:
		return fmt.Sprintf("checksum(%d)", uint8(c))
	}
}

// ParseChecksum maps "crc32c" or "xxh3" to a Checksum.
func ParseChecksum(s string) (Checksum, error) {
	switch s {
	case "", "crc32c":
		return ChecksumCRC32C, nil
	case "xxh3":
		return ChecksumXXH3, nil
	default:
		return 0, fmt.Errorf("%w: checksum %q", ErrUnsupported, s)
	}
}

func (c Checksum) sum(payload []byte) (uint64, error) {
	switch c {
	case ChecksumCRC32C:
		return uint64(hash.CRC32C(payload)), nil
	case ChecksumXXH3:
		return hash.XXH3(payload), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupported, c)
	}
}

// Options configures encoding. Decoding reads everything from the header.
type Options struct {
	// Compression is the requested payload compression. The payload is stored
	// uncompressed when compression does not pay off.
	Compression Compression

	// Checksum is the hash used to protect the payload.
	Checksum Checksum
}

// DefaultOptions returns uncompressed snapshots with CRC32C checksums.
func DefaultOptions() Options {
	return Options{
		Compression: CompressionNone,
		Checksum:    ChecksumCRC32C,
	}
}

// Header is the decoded fixed-size snapshot prefix.
type Header struct {
	Version     uint32
	Kind        Kind
	Compression Compression
	Checksum    Checksum
	Sum         uint64
	RawSize     uint32
	StoredSize  uint32
}

// EncodeBitVector returns a snapshot of bv.
func EncodeBitVector(bv *bitvector.BitVector, optFns ...func(o *Options)) ([]byte, error) {
	pb := newPayloadBuffer(make([]byte, 0, 16+8*len(bv.Words())))
	pb.writeBitVector(bv)
	return seal(KindBitVector, pb, optFns)
}

// DecodeBitVector restores a vector written by EncodeBitVector.
func DecodeBitVector(data []byte) (*bitvector.BitVector, error) {
	pb, err := open(data, KindBitVector)
	if err != nil {
		return nil, err
	}
	bv := pb.readBitVector()
	if err := finish(pb); err != nil {
		return nil, err
	}
	return bv, nil
}

// EncodeIntVector returns a snapshot of iv.
func EncodeIntVector(iv *intvector.IntVector, optFns ...func(o *Options)) ([]byte, error) {
	pb := newPayloadBuffer(make([]byte, 0, 24+iv.SizeInBits()/8))
	pb.writeIntVector(iv)
	return seal(KindIntVector, pb, optFns)
}

// DecodeIntVector restores a vector written by EncodeIntVector.
func DecodeIntVector(data []byte) (*intvector.IntVector, error) {
	pb, err := open(data, KindIntVector)
	if err != nil {
		return nil, err
	}
	iv := pb.readIntVector()
	if err := finish(pb); err != nil {
		return nil, err
	}
	return iv, nil
}

// EncodeRank returns a snapshot of the indexed bits and both tables, so that
// DecodeRank does not rescan the vector.
func EncodeRank(idx *rank.Index, optFns ...func(o *Options)) ([]byte, error) {
	bits := idx.Bits()
	level1, level2 := idx.Level1(), idx.Level2()

	pb := newPayloadBuffer(make([]byte, 0, 64+8*len(bits.Words())+(level1.SizeInBits()+level2.SizeInBits())/8))
	pb.writeBitVector(bits.Clone())
	pb.writeIntVector(level1)
	pb.writeIntVector(level2)
	return seal(KindRank, pb, optFns)
}

// DecodeRank restores an index written by EncodeRank. The tables are checked
// with rank.Restore.
func DecodeRank(data []byte) (*rank.Index, error) {
	pb, err := open(data, KindRank)
	if err != nil {
		return nil, err
	}
	bv := pb.readBitVector()
	level1 := pb.readIntVector()
	level2 := pb.readIntVector()
	if err := finish(pb); err != nil {
		return nil, err
	}

	idx, err := rank.Restore(bv, level1, level2)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return idx, nil
}

// ReadHeader parses and validates the snapshot header without touching the payload.
func ReadHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, header needs %d", ErrCorrupt, len(data), HeaderSize)
	}
	if m := binary.LittleEndian.Uint32(data[0:4]); m != magic {
		return Header{}, fmt.Errorf("%w: invalid magic %x", ErrCorrupt, m)
	}

	h := Header{
		Version:     binary.LittleEndian.Uint32(data[4:8]),
		Kind:        Kind(data[8]),
		Compression: Compression(data[9]),
		Checksum:    Checksum(data[10]),
		Sum:         binary.LittleEndian.Uint64(data[12:20]),
		RawSize:     binary.LittleEndian.Uint32(data[20:24]),
		StoredSize:  binary.LittleEndian.Uint32(data[24:28]),
	}
	if h.Version != version {
		return Header{}, fmt.Errorf("%w: version %d", ErrUnsupported, h.Version)
	}
	switch h.Kind {
	case KindBitVector, KindIntVector, KindRank:
	default:
		return Header{}, fmt.Errorf("%w: %s", ErrUnsupported, h.Kind)
	}
	return h, nil
}

// KindOf returns the structure kind recorded in a snapshot header.
func KindOf(data []byte) (Kind, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return 0, err
	}
	return h.Kind, nil
}

func seal(kind Kind, pb *payloadBuffer, optFns []func(o *Options)) ([]byte, error) {
	if pb.err != nil {
		return nil, pb.err
	}
	opts := DefaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	payload := pb.buf
	sum, err := opts.Checksum.sum(payload)
	if err != nil {
		return nil, err
	}
	rawSize, err := conv.IntToUint32(len(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: payload of %d bytes", ErrUnsupported, len(payload))
	}

	stored, used, err := compress(payload, opts.Compression)
	if err != nil {
		return nil, err
	}
	storedSize, err := conv.IntToUint32(len(stored))
	if err != nil {
		return nil, fmt.Errorf("%w: stored payload of %d bytes", ErrUnsupported, len(stored))
	}

	out := make([]byte, HeaderSize, HeaderSize+len(stored))
	binary.LittleEndian.PutUint32(out[0:4], magic)
	binary.LittleEndian.PutUint32(out[4:8], version)
	out[8] = byte(kind)
	out[9] = byte(used)
	out[10] = byte(opts.Checksum)
	binary.LittleEndian.PutUint64(out[12:20], sum)
	binary.LittleEndian.PutUint32(out[20:24], rawSize)
	binary.LittleEndian.PutUint32(out[24:28], storedSize)
	return append(out, stored...), nil
}

// open validates the header, decompresses and verifies the payload.
func open(data []byte, want Kind) (*payloadBuffer, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}
	if h.Kind != want {
		return nil, fmt.Errorf("%w: snapshot holds %s, want %s", ErrKindMismatch, h.Kind, want)
	}

	stored := data[HeaderSize:]
	storedSize, err := conv.Uint32ToInt(h.StoredSize)
	if err != nil || storedSize != len(stored) {
		return nil, fmt.Errorf("%w: %d payload bytes, header says %d", ErrCorrupt, len(stored), h.StoredSize)
	}
	rawSize, err := conv.Uint32ToInt(h.RawSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	payload, err := decompress(stored, h.Compression, rawSize)
	if err != nil {
		return nil, err
	}

	sum, err := h.Checksum.sum(payload)
	if err != nil {
		return nil, err
	}
	if sum != h.Sum {
		return nil, fmt.Errorf("%w: got %x, header says %x", ErrChecksum, sum, h.Sum)
	}
	return newPayloadBuffer(payload), nil
}

// finish reports decoding errors and trailing bytes.
func finish(pb *payloadBuffer) error {
	if pb.err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, pb.err)
	}
	if n := pb.remaining(); n != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, n)
	}
	return nil
}
