// Package strz provides byte and string helpers for case-insensitive matching.
package strz

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

func IsUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// ToLower lowers an ASCII letter, other bytes are returned as is.
func ToLower(c byte) byte {
	if IsUpper(c) {
		return c + 32
	}
	return c
}

// IsASCII reports whether s contains only ASCII characters.
func IsASCII(s string) bool {
	for i := range len(s) {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Fold returns the case-folded form of s.
// ASCII strings are lowered byte by byte, others go through [cases.Fold].
func Fold(s string) string {
	if !IsASCII(s) {
		return cases.Fold().String(s)
	}
	r := make([]byte, len(s))
	for i := range len(s) {
		r[i] = ToLower(s[i])
	}
	return string(r)
}

// EqualFold reports whether a and b are equal under case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// HasPrefixFold reports whether s begins with prefix, ignoring case.
//
//	HasPrefixFold("September", "sep") // true
//	HasPrefixFold("Март", "МАР")      // true
func HasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(Fold(s), Fold(prefix))
}
