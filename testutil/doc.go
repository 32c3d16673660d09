// Package testutil provides testing utilities for bitkit.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Bit Patterns
//
//	rng := testutil.NewRNG(seed)
//	words := rng.Words(4)        // 256 random bits
//	bools := rng.Bools(70, 0.5)  // 70 bits, each set with probability 0.5
//	w := rng.Width()             // field width in [1, 64]
package testutil
