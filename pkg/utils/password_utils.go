package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters, keyed to interactive-login latency.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 16
)

// HashPassword derives a salted scrypt hash and encodes it as
// "hex(hash).hex(salt)", the format user credentials are stored in.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	hash, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return hex.EncodeToString(hash) + "." + hex.EncodeToString(salt), nil
}

// VerifyPassword checks a candidate password against a stored
// "hex(hash).hex(salt)" credential in constant time.
func VerifyPassword(stored, password string) (bool, error) {
	parts := strings.Split(stored, ".")
	if len(parts) != 2 {
		return false, fmt.Errorf("malformed stored credential")
	}
	hash, err := hex.DecodeString(parts[0])
	if err != nil {
		return false, fmt.Errorf("decoding stored hash: %w", err)
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, fmt.Errorf("decoding stored salt: %w", err)
	}
	candidate, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false, fmt.Errorf("hashing candidate password: %w", err)
	}
	return subtle.ConstantTimeCompare(hash, candidate) == 1, nil
}
