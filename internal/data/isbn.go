// internal/data/isbn.go
package data

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

const isbnPrefix = "978"

// GenerateISBN returns a random 13-digit ISBN: the 978 prefix, nine random
// digits and the check digit. Uniqueness against stored books is not checked.
func GenerateISBN() string {
	var b strings.Builder
	b.Grow(13)
	b.WriteString(isbnPrefix)
	for range 9 {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	b.WriteString(strconv.Itoa(ISBNChecksum(b.String())))
	return b.String()
}

// ISBNChecksum computes the ISBN-13 check digit of the first 12 digits of
// digits, weighting them alternately by 1 and 3.
func ISBNChecksum(digits string) int {
	sum := 0
	for i := 0; i < 12 && i < len(digits); i++ {
		d := int(digits[i] - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return (10 - sum%10) % 10
}
