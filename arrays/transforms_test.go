package arrays_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tessellated-io/arrayops/arrays"
)

func TestMap_Int(t *testing.T) {
	arr := []int{1, 2, 3}
	incrementFunc := func(input int) int { return input + 1 }

	transformed := arrays.Map(arr, incrementFunc)

	require.Equal(t, []int{2, 3, 4}, transformed)
	require.Equal(t, []int{1, 2, 3}, arr)
}

func TestMap_String(t *testing.T) {
	arr := []string{"ab", "cd", "ef"}

	transformed := arrays.Map(arr, strings.ToUpper)

	require.Equal(t, []string{"AB", "CD", "EF"}, transformed)
}

func TestMap_Empty(t *testing.T) {
	transformed := arrays.Map([]int{}, func(input int) string { return fmt.Sprint(input) })

	require.NotNil(t, transformed)
	require.Len(t, transformed, 0)
}

func TestFilter_Int(t *testing.T) {
	arr := []int{1, 2, 3, 4, 5}
	evenOnlyFunc := func(input int) bool { return input%2 == 0 }

	transformed := arrays.Filter(arr, evenOnlyFunc)

	require.Equal(t, []int{2, 4}, transformed)
}

func TestFilter_String(t *testing.T) {
	arr := []string{"abc", "de", "fgh", "ij", "klm"}
	evenOnlyStringLengthFunc := func(input string) bool { return len(input)%2 == 0 }

	transformed := arrays.Filter(arr, evenOnlyStringLengthFunc)

	require.Equal(t, []string{"de", "ij"}, transformed)
}

func TestReduce_Int(t *testing.T) {
	arr := []int{1, 2, 3}
	sumFunc := func(a, b int) int { return a + b }

	transformed := arrays.Reduce(arr, sumFunc, 0)

	require.Equal(t, 6, transformed)
}

func TestReduce_String(t *testing.T) {
	arr := []string{"ab", "cd", "ef"}
	appendStringFunc := func(a, b string) string { return fmt.Sprintf("%s%s", a, b) }

	transformed := arrays.Reduce(arr, appendStringFunc, "")

	require.Equal(t, "abcdef", transformed)
}

func TestReduceRight_String(t *testing.T) {
	arr := []string{"ab", "cd", "ef"}
	appendStringFunc := func(a, b string) string { return fmt.Sprintf("%s%s", a, b) }

	transformed := arrays.ReduceRight(arr, appendStringFunc, ">")

	require.Equal(t, ">efcdab", transformed)
}

func TestFindIndex(t *testing.T) {
	isNegative := func(input int) bool { return input < 0 }

	require.Equal(t, 2, arrays.FindIndex([]int{1, 9, -5, 7, -2}, isNegative))
	require.Equal(t, 0, arrays.FindIndex([]int{-1}, isNegative))
	require.Equal(t, -1, arrays.FindIndex([]int{1, 2}, isNegative))
	require.Equal(t, -1, arrays.FindIndex([]int{}, isNegative))
}

func TestEvery(t *testing.T) {
	isShort := func(input string) bool { return len(input) < 3 }

	require.True(t, arrays.Every([]string{"a", "bc"}, isShort))
	require.False(t, arrays.Every([]string{"a", "bcd"}, isShort))
	require.True(t, arrays.Every([]string{}, isShort))
}

func TestCount(t *testing.T) {
	isOdd := func(input int) bool { return input%2 != 0 }

	require.Equal(t, 3, arrays.Count([]int{1, 2, 3, 4, 5}, isOdd))
	require.Equal(t, 0, arrays.Count([]int{}, isOdd))
}

func TestInsert(t *testing.T) {
	cases := []struct {
		name     string
		index    int
		expected []int
	}{
		{"beginning", 0, []int{99, 0, 1, 2, 3}},
		{"middle", 2, []int{0, 1, 99, 2, 3}},
		{"end", 4, []int{0, 1, 2, 3, 99}},
		{"past end", 10, []int{0, 1, 2, 3, 99}},
		{"before beginning", -3, []int{99, 0, 1, 2, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			arr := []int{0, 1, 2, 3}

			inserted := arrays.Insert(arr, tc.index, 99)

			require.Equal(t, tc.expected, inserted)
			require.Equal(t, []int{0, 1, 2, 3}, arr)
		})
	}
}

func TestInsert_DoesNotShareBacking(t *testing.T) {
	backing := make([]int, 3, 10)
	copy(backing, []int{1, 2, 3})

	inserted := arrays.Insert(backing, 1, 7)
	inserted[0] = 100

	require.Equal(t, []int{1, 2, 3}, backing)
	require.Equal(t, 3, backing[:4][2])
	require.Equal(t, 0, backing[:4][3])
}

func TestSum(t *testing.T) {
	require.Equal(t, 17, arrays.Sum([]int{1, 9, 7}))
	require.Equal(t, 0, arrays.Sum([]int{}))
	require.InDelta(t, 0.75, arrays.Sum([]float64{0.25, 0.5}), 1e-9)
}
