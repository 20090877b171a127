package service

import (
	"crypto/sha256"

	"github.com/allisson/hashcipher/internal/transform/domain"
)

// DeriveKey reduces a passphrase to domain.DerivedKeySize bytes with a single
// unsalted SHA-256 pass over its UTF-8 bytes.
//
// This is not a password-hardening KDF: there is no salt and no iteration count,
// so low-entropy passphrases are cheap to brute force. It is kept as is because
// every frame produced so far was encrypted under exactly this derivation.
// Callers should Zero the result when done.
func DeriveKey(passphrase string) []byte {
	var sum [domain.DerivedKeySize]byte = sha256.Sum256([]byte(passphrase))
	return sum[:]
}
