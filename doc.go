// Package succinct provides succinct bit vectors with constant-time rank.
//
// The building blocks live in sub-packages:
//
//   - bitvector: packed bits with get, set, scan, rank and select
//   - intvector: fixed-width integers packed across word boundaries
//   - rank: a two-level rank index whose tables are IntVectors
//   - codec: checksummed, optionally compressed binary snapshots
//
// This package ties them together with logging, metrics and a unified error
// taxonomy.
//
// # Quick Start
//
//	idx := succinct.BuildRank([]int{0, 1, 0, 0, 1, 1, 0})
//	r, _ := idx.Rank1(4)   // 2
//	p, _ := idx.Select1(3) // 5
//
// # Snapshots
//
//	data, _ := succinct.Encode(idx, succinct.WithCompression(codec.CompressionZSTD))
//	restored, _ := succinct.DecodeAs[*rank.Index](data)
//
// # Errors
//
// Errors returned by this package wrap one of ErrOutOfRange,
// ErrInvalidArgument, ErrCorrupt or ErrUnsupported, and keep the underlying
// package error in the chain for errors.Is.
package succinct
