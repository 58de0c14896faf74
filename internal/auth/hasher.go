package auth

import (
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"

	"crypto/sha512"
)

const (
	pbkdf2Iterations = 4096
	pbkdf2KeyLength  = 64
)

// Hasher derives a deterministic digest from a plaintext password, salted by
// the process-wide pepper. The same input always yields the same digest, so
// comparison against a stored hash is a plain string equality check.
type Hasher struct {
	pepper string
}

func NewHasher(pepper string) *Hasher {
	return &Hasher{pepper: pepper}
}

func (h *Hasher) Hash(plaintext string) string {
	digest := pbkdf2.Key([]byte(plaintext), []byte(h.pepper), pbkdf2Iterations, pbkdf2KeyLength, sha512.New)
	return hex.EncodeToString(digest)
}
