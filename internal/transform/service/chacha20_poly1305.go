package service

import (
	"crypto/cipher"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/allisson/hashcipher/internal/transform/domain"
)

// ChaCha20Poly1305Cipher implements Cipher with ChaCha20-Poly1305.
//
// The construction takes a 12-byte nonce; the first 12 bytes of the 16-byte IV
// are used. The whole IV is still written to the frame. No frames predate this
// layout: earlier producers rejected a 16-byte IV for this cipher outright.
type ChaCha20Poly1305Cipher struct {
	aead cipher.AEAD
}

// NewChaCha20Poly1305 creates a ChaCha20-Poly1305 cipher. The key must be 32 bytes.
func NewChaCha20Poly1305(key []byte) (*ChaCha20Poly1305Cipher, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, domain.ErrInvalidKeyLength
	}

	return &ChaCha20Poly1305Cipher{aead: aead}, nil
}

// Encrypt seals plaintext with domain.AssociatedData bound as AAD.
func (c *ChaCha20Poly1305Cipher) Encrypt(iv, plaintext []byte) (domain.CipherFrame, error) {
	if len(iv) != domain.IVSize {
		return domain.CipherFrame{}, domain.ErrInvalidIV
	}

	nonce := iv[:chacha20poly1305.NonceSize]
	return splitSealed(iv, c.aead.Seal(nil, nonce, plaintext, domain.AssociatedData), c.aead.Overhead()), nil
}
