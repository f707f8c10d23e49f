// Package password provides cryptographically secure password generation.
package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	symbols   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Alphabet is the full 94-symbol printable-ASCII pool passwords are drawn
// from: letters, digits, and punctuation.
const Alphabet = lowercase + uppercase + digits + symbols

// DefaultLength is the generated password length when the caller does not
// specify one.
const DefaultLength = 16

// Generate returns a password of the given length with every character drawn
// independently and uniformly from Alphabet, using crypto/rand. The secure
// source is a correctness requirement here, not an optimization target.
//
// length must be >= 1.
func Generate(length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("password length must be at least 1, got %d", length)
	}

	var sb strings.Builder
	sb.Grow(length)

	max := big.NewInt(int64(len(Alphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random source: %w", err)
		}
		sb.WriteByte(Alphabet[n.Int64()])
	}

	return sb.String(), nil
}
