package testutil

import (
	"fmt"
	"testing"

	"github.com/kbukum/testkit/matrix"
)

// RunMatrix expands the axes into their Cartesian product and runs fn as
// one subtest per combination. Subtests are named name/<index>/<values> so
// a failing combination is identifiable and re-runnable with -run.
func RunMatrix(t *testing.T, name string, axes []matrix.Axis, fn func(t *testing.T, combo matrix.Combination)) {
	t.Helper()
	combos := matrix.Combine(axes...)
	for i, combo := range combos {
		t.Run(fmt.Sprintf("%s/%d/%v", name, i, combo), func(t *testing.T) {
			fn(t, combo)
		})
	}
}

// RunCases is RunMatrix for labeled axes: fn receives each combination as a
// name-to-value Case.
func RunCases(t *testing.T, name string, axes []matrix.NamedAxis, fn func(t *testing.T, tc matrix.Case)) {
	t.Helper()
	cases := matrix.CombineNamed(axes...)
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%s/%d", name, i), func(t *testing.T) {
			fn(t, tc)
		})
	}
}
