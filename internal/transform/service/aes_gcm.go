package service

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/allisson/hashcipher/internal/transform/domain"
)

// AESGCMCipher implements Cipher with AES-GCM using the full 16-byte IV as nonce.
//
// A 16-byte GCM nonce is hashed into the initial counter block (GHASH), which is
// what OpenSSL does for any IV that is not 12 bytes long. The 16-byte tag is
// moved in front of the ciphertext to match the frame layout.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates an AES-GCM cipher. The key must be 16, 24 or 32 bytes.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, domain.ErrInvalidKeyLength
	}

	aead, err := cipher.NewGCMWithNonceSize(block, domain.IVSize)
	if err != nil {
		return nil, err
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Encrypt seals plaintext with domain.AssociatedData bound as AAD.
func (a *AESGCMCipher) Encrypt(iv, plaintext []byte) (domain.CipherFrame, error) {
	if len(iv) != domain.IVSize {
		return domain.CipherFrame{}, domain.ErrInvalidIV
	}
	return splitSealed(iv, a.aead.Seal(nil, iv, plaintext, domain.AssociatedData), a.aead.Overhead()), nil
}

// splitSealed moves the trailing tag produced by cipher.AEAD.Seal into its own field.
func splitSealed(iv, sealed []byte, tagSize int) domain.CipherFrame {
	cut := len(sealed) - tagSize
	return domain.CipherFrame{
		IV:         iv,
		Tag:        sealed[cut:],
		Ciphertext: sealed[:cut],
	}
}
