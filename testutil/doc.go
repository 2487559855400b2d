// Package testutil provides testing utilities for succinct.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random bit patterns and packed values,
// and linear-time reference answers for rank and select.
//
// # Random Bits
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.Bits(1000, 0.3)   // each bit set with probability 0.3
//	runs := rng.RunBits(1000, 64) // alternating runs, mean length 64
//
// # Reference Answers
//
//	r := testutil.LinearRank(bits, i)       // ones in [0, i]
//	p := testutil.LinearSelect(bits, k, 1)  // position of the k-th one
package testutil
