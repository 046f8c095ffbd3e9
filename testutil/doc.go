// Package testutil integrates testkit with Go's testing package.
//
// It provides scoped registry guards (snapshot on setup, guaranteed restore
// on test teardown, including on failure) and matrix runners that execute
// one subtest per generated combination.
//
// Guarded registry with automatic restore:
//
//	func TestWithStubs(t *testing.T) {
//	    testutil.T(t).Guard(reg)
//	    singleton.Put(reg, &Database{stub: true})
//	    // registry is restored when the test ends
//	}
//
// Manual restore:
//
//	restore, err := testutil.Guard(reg)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer restore()
//
// One subtest per combination:
//
//	testutil.RunMatrix(t, "parse", []matrix.Axis{
//	    matrix.BooleanLike(),
//	    matrix.EdgeStrings(),
//	}, func(t *testing.T, combo matrix.Combination) {
//	    ...
//	})
package testutil
