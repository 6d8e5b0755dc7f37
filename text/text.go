package text

import (
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Shout uppercases s with full Unicode case mapping, so "straße" becomes "STRASSE".
func Shout(s string) string {
	return cases.Upper(language.Und).String(s)
}

// UTF16Len is the number of UTF-16 code units needed to encode s.
func UTF16Len(s string) int {
	length := 0
	// Invalid UTF-8 ranges as utf8.RuneError, a single unit.
	for _, r := range s {
		length += utf16.RuneLen(r)
	}
	return length
}

// LastRune returns the final rune of s, or false when s is empty.
func LastRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r, true
}

func EndsWith(s string, r rune) bool {
	last, ok := LastRune(s)
	return ok && last == r
}
