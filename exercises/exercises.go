package exercises

import (
	"strings"

	"github.com/tessellated-io/arrayops/arrays"
	"github.com/tessellated-io/arrayops/numbers"
	"github.com/tessellated-io/arrayops/text"
)

// BookEndList returns the first and last numbers. A single number is repeated; no numbers yields an
// empty slice.
func BookEndList[T any](values []T) []T {
	switch len(values) {
	case 0:
		return []T{}
	case 1:
		return []T{values[0], values[0]}
	default:
		return []T{values[0], values[len(values)-1]}
	}
}

func TripleNumbers[T arrays.Number](values []T) []T {
	return arrays.Map(values, func(v T) T { return v * 3 })
}

// StringsToIntegers parses each string as an integer, using 0 for anything unparsable.
func StringsToIntegers(values []string) []int {
	return arrays.Map(values, numbers.ParseIntOrZero)
}

// RemoveDollars is StringsToIntegers after stripping one leading "$" from each amount.
func RemoveDollars(amounts []string) []int {
	stripped := arrays.Map(amounts, func(amount string) string {
		return strings.TrimPrefix(amount, "$")
	})
	return StringsToIntegers(stripped)
}

// ShoutIfExclaiming drops questions and uppercases exclamations. Other messages pass through.
func ShoutIfExclaiming(messages []string) []string {
	statements := arrays.Filter(messages, func(message string) bool {
		return !text.EndsWith(message, '?')
	})
	return arrays.Map(statements, func(message string) string {
		if text.EndsWith(message, '!') {
			return text.Shout(message)
		}
		return message
	})
}

const shortWordLength = 4

// CountShortWords counts words shorter than four characters, measured in UTF-16 code units.
func CountShortWords(words []string) int {
	return arrays.Count(words, func(word string) bool {
		return text.UTF16Len(word) < shortWordLength
	})
}

var rgbColors = map[string]struct{}{
	"red":   {},
	"green": {},
	"blue":  {},
}

// AllRGB reports whether every color is exactly red, green or blue. It is true for no colors.
func AllRGB(colors []string) bool {
	return arrays.Every(colors, func(color string) bool {
		_, ok := rgbColors[color]
		return ok
	})
}

// MakeMath renders addends as "sum=a+b+c", e.g. [1, 2, 3] becomes "6=1+2+3". No addends is "0=0".
func MakeMath[T arrays.Number](addends []T) string {
	if len(addends) == 0 {
		return "0=0"
	}

	terms := arrays.Map(addends, formatNumber[T])
	return formatNumber(arrays.Sum(addends)) + "=" + strings.Join(terms, "+")
}
