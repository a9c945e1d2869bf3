// Package credentials derives and verifies salted password hashes.
package credentials

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters.
const (
	argonTime    = 1
	argonMemory  = 19 * 1024
	argonThreads = 2
	argonKeyLen  = 32

	// SaltSize is the number of random bytes in a salt before hex encoding.
	SaltSize = 16
)

// GenerateSalt returns a fresh random salt, hex-encoded.
func GenerateSalt() string {
	b := make([]byte, SaltSize)
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// DeriveHash returns the hex-encoded argon2id hash of plaintext under salt.
// An empty plaintext or an unusable salt yields "" instead of an error.
func DeriveHash(plaintext, salt string) string {
	if plaintext == "" || salt == "" {
		return ""
	}
	rawSalt, err := hex.DecodeString(salt)
	if err != nil || len(rawSalt) == 0 {
		return ""
	}
	key := argon2.IDKey([]byte(plaintext), rawSalt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key)
}

// Verify reports whether plaintext hashes to expected under salt.
func Verify(plaintext, salt, expected string) bool {
	derived := DeriveHash(plaintext, salt)
	if derived == "" || expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(derived), []byte(expected)) == 1
}
