package exercises

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/tessellated-io/arrayops/arrays"
)

// formatNumber renders v the way JavaScript's String(number) does: plain decimal notation,
// switching to exponent form only at or above 1e21 or below 1e-6.
func formatNumber[T arrays.Number](v T) string {
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Float32:
		return formatFloat(value.Float(), 32)
	case reflect.Float64:
		return formatFloat(value.Float(), 64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(value.Uint(), 10)
	default:
		return strconv.FormatInt(value.Int(), 10)
	}
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// Covers negative zero.
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, bitSize))
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

// trimExponent drops the zero padding Go puts on exponents ("1.5e-07" => "1.5e-7").
func trimExponent(s string) string {
	mantissa, exponent, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	sign, digits := exponent[:1], strings.TrimLeft(exponent[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
