package matrix

import (
	"math"
	"strings"
)

// Canned edge-case value sets. Each call returns a fresh Axis so callers can
// append or mutate without affecting later callers.

// NonStrings returns values that are anything but a string. Useful for
// probing string-typed parameters.
func NonStrings() Axis {
	return Axis{
		0,
		1,
		-1,
		math.MaxInt64,
		3.14,
		-3.14,
		true,
		false,
		nil,
		[]string{"not", "a", "string"},
		map[string]int{"k": 1},
	}
}

// NonIntegers returns values that are anything but an integer.
func NonIntegers() Axis {
	return Axis{
		"0",
		"one",
		"",
		3.14,
		math.NaN(),
		math.Inf(1),
		true,
		false,
		nil,
		[]int{1},
	}
}

// BooleanLike returns values commonly coerced to booleans by loosely typed
// inputs: real booleans plus their numeric and string spellings.
func BooleanLike() Axis {
	return Axis{
		true,
		false,
		0,
		1,
		"0",
		"1",
		"true",
		"false",
		"yes",
		"no",
		"on",
		"off",
	}
}

// EdgeStrings returns strings that commonly break naive parsing and
// rendering: empty, whitespace, very long, unicode, and control characters.
func EdgeStrings() Axis {
	return Axis{
		"",
		" ",
		"\t\n\r",
		strings.Repeat("a", 4096),
		"héllo wörld",
		"日本語テキスト",
		"emoji \U0001F600",
		"null\x00byte",
		`"quoted"`,
		"<script>alert(1)</script>",
		"'; DROP TABLE users; --",
	}
}

// EdgeInts returns integer boundary values.
func EdgeInts() Axis {
	return Axis{
		0,
		1,
		-1,
		math.MaxInt32,
		math.MinInt32,
		int64(math.MaxInt64),
		int64(math.MinInt64),
	}
}
