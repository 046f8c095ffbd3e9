package matrix

import (
	"github.com/kbukum/testkit/logger"
)

// Axis is one ordered, finite sequence of candidate values for a single
// varying test parameter. Element types may be heterogeneous.
type Axis []any

// Combination holds one value per axis, in the order the axes were supplied.
type Combination []any

// NamedAxis is an Axis labeled with the parameter name it varies.
type NamedAxis struct {
	Name   string
	Values Axis
}

// Case is one named combination: parameter name to chosen value.
type Case map[string]any

// Combine returns the Cartesian product of the supplied axes: one
// Combination for every way of picking one element from each axis.
//
// With zero axes the result is a single empty Combination, the identity
// element of the product. If any axis is empty the result is empty. Each
// Combination is freshly allocated; element values are shared as-is.
//
// Combine never fails and holds no state, so concurrent calls need no
// synchronization. Time and space are proportional to the product size.
func Combine(axes ...Axis) []Combination {
	result := []Combination{{}}
	for _, axis := range axes {
		next := make([]Combination, 0, len(result)*len(axis))
		for _, partial := range result {
			for _, v := range axis {
				combo := make(Combination, len(partial)+1)
				copy(combo, partial)
				combo[len(partial)] = v
				next = append(next, combo)
			}
		}
		result = next
	}

	if n := warnThreshold(); n > 0 && len(result) >= n {
		logger.Debug("combination matrix is large", logger.Fields(
			logger.FieldAxes, len(axes),
			logger.FieldCombinations, len(result),
		))
	}
	return result
}

// Size returns the number of combinations Combine would produce for the
// given axes without materializing them: the product of the axis lengths,
// or 1 for zero axes.
func Size(axes ...Axis) int {
	n := 1
	for _, axis := range axes {
		n *= len(axis)
	}
	return n
}

// Product is the homogeneous, type-safe variant of Combine. It follows the
// same enumeration order: first axis most significant, last axis fastest.
func Product[T any](axes ...[]T) [][]T {
	result := [][]T{{}}
	for _, axis := range axes {
		next := make([][]T, 0, len(result)*len(axis))
		for _, partial := range result {
			for _, v := range axis {
				combo := make([]T, len(partial)+1)
				copy(combo, partial)
				combo[len(partial)] = v
				next = append(next, combo)
			}
		}
		result = next
	}
	return result
}

// CombineNamed expands labeled axes into Cases, keyed by axis name, in the
// same enumeration order as Combine.
func CombineNamed(axes ...NamedAxis) []Case {
	bare := make([]Axis, len(axes))
	for i, a := range axes {
		bare[i] = a.Values
	}

	combos := Combine(bare...)
	cases := make([]Case, len(combos))
	for i, combo := range combos {
		c := make(Case, len(axes))
		for j, a := range axes {
			c[a.Name] = combo[j]
		}
		cases[i] = c
	}
	return cases
}
