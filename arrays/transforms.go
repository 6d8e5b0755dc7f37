package arrays

// Number is any built-in numeric type that supports ordering and addition.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func Map[InputType, OutputType any](input []InputType, f func(InputType) OutputType) []OutputType {
	result := make([]OutputType, len(input))
	for i, v := range input {
		result[i] = f(v)
	}
	return result
}

func Filter[ArrayType any](input []ArrayType, f func(ArrayType) bool) []ArrayType {
	result := []ArrayType{}

	for _, v := range input {
		if f(v) {
			result = append(result, v)
		}
	}
	return result
}

func Reduce[InputType, OutputType any](input []InputType, f func(OutputType, InputType) OutputType, initial OutputType) OutputType {
	result := initial
	for _, v := range input {
		result = f(result, v)
	}
	return result
}

// ReduceRight folds from the last element to the first.
func ReduceRight[InputType, OutputType any](input []InputType, f func(OutputType, InputType) OutputType, initial OutputType) OutputType {
	result := initial
	for i := len(input) - 1; i >= 0; i-- {
		result = f(result, input[i])
	}
	return result
}

// FindIndex returns the index of the first element matching f, or -1.
func FindIndex[ArrayType any](input []ArrayType, f func(ArrayType) bool) int {
	for i, v := range input {
		if f(v) {
			return i
		}
	}
	return -1
}

// Every reports whether all elements match f. An empty slice always matches.
func Every[ArrayType any](input []ArrayType, f func(ArrayType) bool) bool {
	for _, v := range input {
		if !f(v) {
			return false
		}
	}
	return true
}

func Count[ArrayType any](input []ArrayType, f func(ArrayType) bool) int {
	count := 0
	for _, v := range input {
		if f(v) {
			count++
		}
	}
	return count
}

// Insert returns a new slice with value placed at index. The input is never modified.
// Indexes outside [0, len(input)] are clamped to the nearest end.
func Insert[ArrayType any](input []ArrayType, index int, value ArrayType) []ArrayType {
	index = max(0, min(index, len(input)))

	result := make([]ArrayType, 0, len(input)+1)
	result = append(result, input[:index]...)
	result = append(result, value)
	return append(result, input[index:]...)
}

func Sum[NumberType Number](input []NumberType) NumberType {
	return Reduce(input, func(total, v NumberType) NumberType { return total + v }, 0)
}
