// Package service implements the transform primitives: passphrase key derivation,
// the digest registry used by the hash path, the cipher table and cipher
// implementations used by the cipher path, and output encoding.
package service

import (
	"hash"

	"github.com/allisson/hashcipher/internal/transform/domain"
)

// Cipher encrypts plaintext under a key bound at construction time.
type Cipher interface {
	// Encrypt encrypts plaintext with the caller-supplied IV and returns the frame.
	// iv must be domain.IVSize bytes.
	Encrypt(iv, plaintext []byte) (domain.CipherFrame, error)
}

// CipherManager builds Cipher instances from algorithm names.
type CipherManager interface {
	// CreateCipher selects the key bytes the named algorithm needs from derivedKey
	// and returns a ready cipher. Unknown names fail with domain.ErrUnknownCipher.
	CreateCipher(name string, derivedKey []byte) (Cipher, error)

	// IsAEAD reports whether name denotes an authenticated cipher.
	IsAEAD(name string) (bool, error)
}

// DigestProvider resolves digest algorithm names.
type DigestProvider interface {
	// New returns a fresh hash for name or domain.ErrUnknownDigest.
	New(name string) (hash.Hash, error)
}

// HashService runs the hash path.
type HashService interface {
	Hash(input, algorithm string) ([]byte, error)
}

// CipherService runs the cipher path.
type CipherService interface {
	Encrypt(input, algorithm, passphrase string) (domain.CipherFrame, error)
}

// Encoder renders raw bytes as text.
type Encoder interface {
	Encode(b []byte, format domain.OutputFormat) string
}
