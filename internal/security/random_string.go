package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	sessionTokenLength   = 48
	sessionTokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	generatedPasswordLength   = 12
	generatedPasswordAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString returns a cryptographically secure, unbiased string of the requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}

// NewSessionToken returns an opaque token suitable for a session cookie value.
func NewSessionToken() (string, error) {
	return RandomString(sessionTokenLength, sessionTokenAlphabet)
}

// NewGeneratedPassword returns a one-time plaintext password for reset flows.
// The alphabet omits visually ambiguous characters.
func NewGeneratedPassword() (string, error) {
	return RandomString(generatedPasswordLength, generatedPasswordAlphabet)
}
