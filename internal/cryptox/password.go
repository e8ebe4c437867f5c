// Package cryptox implements the password hashing used for clinic accounts:
// PBKDF2-HMAC-SHA256 over a per-credential random salt, encoded as base64
// so the derived key can be stored in a text column.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltLength is the size of every per-credential salt, in bytes.
	SaltLength = 16

	// Work factor of the key derivation. Changing either value invalidates
	// every stored hash, so treat them as part of the storage format.
	iterations = 65536
	keyLength  = 32
)

// randReader is a test seam for the salt randomness source.
// In tests you can replace it with a deterministic reader.
var randReader io.Reader = rand.Reader

// HashPassword derives a key from the plaintext and salt and returns it
// base64-encoded. The same plaintext and salt always produce the same
// result; different salts produce unrelated results.
func HashPassword(plaintext string, salt []byte) string {
	key := pbkdf2.Key([]byte(plaintext), salt, iterations, keyLength, sha256.New)
	return base64.StdEncoding.EncodeToString(key)
}

// NewSalt returns a fresh cryptographically random salt of SaltLength bytes.
// Every call returns an independent value; salts are never reused.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(randReader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}
