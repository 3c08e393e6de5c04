// Package utils contains helper functions for generating and
// extracting short codes.
package utils

import (
	"math/rand"
	"time"
)

var seed = rand.New(rand.NewSource(time.Now().UnixNano()))

const charset = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// StringWithCharset returns a string of length characters, each drawn
// independently and uniformly at random from charset.
// For length <= 0 it returns the empty string.
func StringWithCharset(length int, charset string) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[seed.Intn(len(charset))]
	}
	return string(b)
}

// RandomString returns a random string of length characters drawn from
// the 62-symbol alphanumeric alphabet.
func RandomString(length int) string {
	return StringWithCharset(length, charset)
}
