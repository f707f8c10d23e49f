package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetIs94PrintableASCII(t *testing.T) {
	require.Len(t, Alphabet, 94)

	seen := map[byte]bool{}
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		assert.GreaterOrEqual(t, c, byte('!'), "alphabet must be printable, no space")
		assert.LessOrEqual(t, c, byte('~'))
		assert.False(t, seen[c], "duplicate alphabet symbol %q", c)
		seen[c] = true
	}
}

func TestGenerateLength(t *testing.T) {
	for _, length := range []int{1, 2, 16, 64} {
		got, err := Generate(length)
		require.NoError(t, err)
		assert.Len(t, got, length)
	}
}

func TestGenerateRejectsInvalidLength(t *testing.T) {
	for _, length := range []int{0, -1, -16} {
		_, err := Generate(length)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 1")
	}
}

func TestGenerateUsesAlphabetOnly(t *testing.T) {
	got, err := Generate(256)
	require.NoError(t, err)
	for _, c := range got {
		assert.True(t, strings.ContainsRune(Alphabet, c), "character %q outside alphabet", c)
	}
}

func TestGenerateDoesNotRepeat(t *testing.T) {
	// Probabilistic: with 94^16 possible values, 1000 draws colliding would
	// indicate a broken random source.
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		got, err := Generate(DefaultLength)
		require.NoError(t, err)
		assert.False(t, seen[got], "duplicate generated password %q", got)
		seen[got] = true
	}
}

func TestGenerateCoversCharacterClasses(t *testing.T) {
	// Across many draws every class must show up; a missing class would mean
	// a biased or truncated pool.
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for i := 0; i < 200 && !(hasLower && hasUpper && hasDigit && hasSymbol); i++ {
		got, err := Generate(DefaultLength)
		require.NoError(t, err)
		for _, c := range got {
			switch {
			case c >= 'a' && c <= 'z':
				hasLower = true
			case c >= 'A' && c <= 'Z':
				hasUpper = true
			case c >= '0' && c <= '9':
				hasDigit = true
			default:
				hasSymbol = true
			}
		}
	}
	assert.True(t, hasLower, "no lowercase letter in 200 draws")
	assert.True(t, hasUpper, "no uppercase letter in 200 draws")
	assert.True(t, hasDigit, "no digit in 200 draws")
	assert.True(t, hasSymbol, "no symbol in 200 draws")
}
