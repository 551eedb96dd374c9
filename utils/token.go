package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateSecureToken returns a hex token from length random bytes.
func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
