// Package matrix generates combinatorial test input data.
//
// Given N finite value axes it produces every ordered N-tuple formed by
// choosing one element from each axis (the Cartesian product), in a
// deterministic order: the first axis is the most significant digit and the
// last axis varies fastest, like an odometer.
//
//	combos := matrix.Combine(
//	    matrix.Axis{1, 2},
//	    matrix.Axis{"x", "y"},
//	)
//	// [1 x] [1 y] [2 x] [2 y]
//
// The product is materialized eagerly; callers bound its size themselves
// (use Size before Combine when axes may be large).
//
// The package also ships canned edge-case value sets (NonStrings,
// NonIntegers, BooleanLike, ...) meant to be consumed directly as axes.
package matrix
