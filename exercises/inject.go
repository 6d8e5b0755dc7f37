package exercises

import (
	"github.com/tessellated-io/arrayops/arrays"
)

// InjectPositive returns a copy of values with one extra element. After the first negative number
// it inserts the sum of every number before it; with no negative number the total is appended.
// Empty input yields an empty slice. values is never modified.
//
//	[1, 9, -5, 7] => [1, 9, -5, 10, 7]
//	[1, 9, 7]     => [1, 9, 7, 17]
func InjectPositive[T arrays.Number](values []T) []T {
	if len(values) == 0 {
		return []T{}
	}

	negative := arrays.FindIndex(values, func(v T) bool { return v < 0 })
	if negative == -1 {
		return arrays.Insert(values, len(values), arrays.Sum(values))
	}

	// values[:0] is empty, so a leading negative gets 0.
	return arrays.Insert(values, negative+1, arrays.Sum(values[:negative]))
}
