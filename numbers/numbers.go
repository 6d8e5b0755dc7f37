package numbers

import (
	"math/big"
	"strings"
	"unicode"
)

// ParseLeadingInt reads an integer from the start of input, the way parseInt does without a radix:
// leading whitespace (including a byte order mark) is skipped, a sign is optional, "0x"/"0X" switches to hexadecimal, and parsing
// stops at the first character that is not a digit. The second return value is false when no digits
// were found or the value does not fit in an int.
func ParseLeadingInt(input string) (int, bool) {
	s := strings.TrimLeftFunc(input, isWhitespace)

	negative := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	digits := leadingDigits(s, base)
	if digits == "" {
		return 0, false
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, false
	}
	if negative {
		n.Neg(n)
	}
	if !n.IsInt64() || int64(int(n.Int64())) != n.Int64() {
		return 0, false
	}
	return int(n.Int64()), true
}

// ParseIntOrZero is ParseLeadingInt with unparsable input mapped to 0.
func ParseIntOrZero(input string) int {
	n, _ := ParseLeadingInt(input)
	return n
}

// isWhitespace matches JavaScript's WhiteSpace and LineTerminator sets: the byte order mark is
// included and U+0085 is not.
func isWhitespace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	default:
		return unicode.IsSpace(r)
	}
}

func leadingDigits(s string, base int) string {
	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	return s[:end]
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
