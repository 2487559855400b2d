// Package hash provides the checksums used to protect encoded snapshots.
//
// Two algorithms are available:
//
//   - CRC32C (Castagnoli): hardware accelerated on x86 (SSE4.2) and ARM, the
//     default for snapshots.
//   - XXH3: 64-bit non-cryptographic hash, faster on large payloads and with
//     a wider digest.
//
// Both are integrity checks against accidental corruption, not
// authentication.
package hash
