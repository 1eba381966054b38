// Package testutil provides testing utilities for the collections module.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG for randomized operation sequences and the point
// fixtures used by the list tests and examples.
//
// # Random Operations
//
//	rng := testutil.NewRNG(seed)
//	i := rng.Intn(list.Len() + 1)
//	values := rng.Ints(100, 10)  // 100 values in [0, 10)
//
// # Point Fixtures
//
//	packed := testutil.Points(n)       // []Point{{0,0}, {1,1}, ...}
//	refs := testutil.PointRefs(n)      // []*Point, separately allocated
package testutil
