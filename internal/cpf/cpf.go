// Package cpf validates Brazilian CPF identifiers.
package cpf

import "strings"

// Normalize strips every non-digit character from the identifier, so
// "526.018.159-06" and "52601815906" map to the same value.
func Normalize(identifier string) string {
	var b strings.Builder
	for _, r := range identifier {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Valid reports whether the identifier carries the two mod-11 check digits.
// Formatting characters are ignored. Uniform runs like "111.111.111-11" are
// rejected even though the checksum math holds for some of them.
func Valid(identifier string) bool {
	digits := Normalize(identifier)
	if len(digits) != 11 {
		return false
	}

	uniform := true

	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			uniform = false
			break
		}
	}

	if uniform {
		return false
	}

	sum1 := 0
	for i := range 9 {
		sum1 += int(digits[i]-'0') * (10 - i)
	}

	digit1 := sum1 * 10 % 11 % 10

	// The second sum runs over the first ten digits as given, not over the
	// nine base digits plus the computed check digit.
	sum2 := 0
	for i := range 10 {
		sum2 += int(digits[i]-'0') * (11 - i)
	}

	digit2 := sum2 * 10 % 11 % 10

	return digit1 == int(digits[9]-'0') && digit2 == int(digits[10]-'0')
}
