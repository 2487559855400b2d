// Package codec encodes bit vectors, integer vectors and rank indexes as
// self-describing binary snapshots.
//
// # Format
//
// All integers are little endian.
//
//	offset size field
//	0      4    magic "SCNT"
//	4      4    version (1)
//	8      1    kind (bitvector, intvector, rank)
//	9      1    compression (none, lz4, zstd)
//	10     1    checksum algorithm (crc32c, xxh3)
//	11     1    reserved
//	12     8    checksum of the uncompressed payload
//	20     4    uncompressed payload size
//	24     4    stored payload size
//	28     ...  payload
//
// Payloads are sequences of u64 values:
//
//	bitvector  n, word count, words
//	intvector  n, width, word count, words
//	rank       bitvector, level1 intvector, level2 intvector
//
// A rank snapshot carries its tables, so decoding does not rescan the bits;
// the tables are validated with rank.Restore instead.
//
// Compression is skipped when it saves less than 10% of the payload, in which
// case the header records CompressionNone.
package codec
