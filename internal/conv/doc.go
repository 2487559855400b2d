// Package conv provides overflow-checked integer conversions.
//
// The codec decodes lengths and word counts from untrusted snapshots; every
// such value passes through this package before it sizes an allocation.
// Conversions that are provably safe (loop indices, positions already
// validated against a vector length) use plain casts instead.
package conv
