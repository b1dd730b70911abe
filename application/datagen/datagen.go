// Package datagen produces throwaway form data for sign up flows.
package datagen

import (
	"math/rand"
	"strings"
)

const (
	lower   = "abcdefghijklmnopqrstuvwxyz"
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	special = "!@#$%^&*"

	// MinPasswordLength fits one character of every class
	MinPasswordLength = 4
)

// RandomUsername returns "user_" followed by 8 lowercase letters or digits
func RandomUsername() string {
	return "user_" + pick(lower+digits, 8)
}

// RandomPassword returns a password of length n with at least one
// uppercase letter, lowercase letter, digit and special character. n is
// raised to MinPasswordLength.
func RandomPassword(n int) string {
	n = max(n, MinPasswordLength)

	b := []byte{
		upper[rand.Intn(len(upper))],
		lower[rand.Intn(len(lower))],
		digits[rand.Intn(len(digits))],
		special[rand.Intn(len(special))],
	}
	b = append(b, pick(upper+lower+digits+special, n-len(b))...)
	rand.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })
	return string(b)
}

// Mask hides every character of value
func Mask(value string) string {
	return strings.Repeat("*", len([]rune(value)))
}

func pick(charset string, n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
