package testutil_test

import (
	"sync"
	"testing"

	"github.com/kbukum/testkit/matrix"
	"github.com/kbukum/testkit/testutil"
)

func TestRunMatrix_RunsEveryCombination(t *testing.T) {
	var mu sync.Mutex
	var seen []matrix.Combination

	testutil.RunMatrix(t, "pair", []matrix.Axis{
		{1, 2},
		{"x", "y"},
	}, func(t *testing.T, combo matrix.Combination) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, combo)
	})

	if len(seen) != 4 {
		t.Fatalf("expected 4 subtests, got %d", len(seen))
	}
	// Enumeration order carries into subtest order.
	if seen[0][0] != 1 || seen[0][1] != "x" {
		t.Errorf("expected first combination [1 x], got %v", seen[0])
	}
	if seen[3][0] != 2 || seen[3][1] != "y" {
		t.Errorf("expected last combination [2 y], got %v", seen[3])
	}
}

func TestRunMatrix_EmptyAxisRunsNothing(t *testing.T) {
	ran := 0
	testutil.RunMatrix(t, "none", []matrix.Axis{
		{},
		{1, 2, 3},
	}, func(t *testing.T, combo matrix.Combination) {
		ran++
	})
	if ran != 0 {
		t.Errorf("expected no subtests for an empty axis, got %d", ran)
	}
}

func TestRunCases_NamedValues(t *testing.T) {
	var mu sync.Mutex
	var seen []matrix.Case

	testutil.RunCases(t, "named", []matrix.NamedAxis{
		{Name: "count", Values: matrix.Axis{0, 1}},
		{Name: "strict", Values: matrix.Axis{true, false}},
	}, func(t *testing.T, tc matrix.Case) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, tc)
	})

	if len(seen) != 4 {
		t.Fatalf("expected 4 cases, got %d", len(seen))
	}
	if seen[0]["count"] != 0 || seen[0]["strict"] != true {
		t.Errorf("expected first case count=0 strict=true, got %v", seen[0])
	}
}
