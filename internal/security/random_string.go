package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	secretAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

	MinSecretKeyLength     = 32
	DefaultSecretKeyLength = 48
)

var (
	ErrSecretKeyLength = errors.New("secret key length must be at least 32")
	errEmptyAlphabet   = errors.New("alphabet must not be empty")
)

// GenerateSecretKey returns a random SECRET_KEY value suitable for signing
// API tokens.
func GenerateSecretKey(length int) (string, error) {
	if length < MinSecretKeyLength {
		return "", ErrSecretKeyLength
	}
	return randomString(length, secretAlphabet)
}

// randomString draws each character with crypto/rand so the result is
// unbiased over alphabet.
func randomString(length int, alphabet string) (string, error) {
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
