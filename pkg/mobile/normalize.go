// Package mobile canonicalizes mobile numbers into the 7-digit local form used as
// customer and agent keys.
package mobile

import "strings"

// LocalLength is the number of digits in a local mobile number
const LocalLength = 7

// Normalize strips every non-digit and keeps the last LocalLength digits.
// Shorter numbers are returned as they are, without padding. Returns "" when
// the input holds no digits.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}

	digits := b.String()
	if len(digits) > LocalLength {
		return digits[len(digits)-LocalLength:]
	}
	return digits
}

// NormalizeList splits a comma-separated list of numbers and normalizes each one,
// dropping blanks
func NormalizeList(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n := Normalize(part); n != "" {
			out = append(out, n)
		}
	}
	return out
}
