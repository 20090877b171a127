package service

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"

	apperrors "github.com/allisson/hashcipher/internal/errors"
	"github.com/allisson/hashcipher/internal/transform/domain"
)

const chacha20BlockSize = 64

var errCounterOverflow = apperrors.Tag(domain.ErrCipherFailure, "ChaCha20 counter overflow")

// ChaCha20Cipher implements Cipher with the unauthenticated ChaCha20 stream cipher.
//
// The 16-byte IV uses the OpenSSL layout: a 32-bit little-endian initial block
// counter followed by the 12-byte nonce.
type ChaCha20Cipher struct {
	key []byte
}

// NewChaCha20 creates a ChaCha20 cipher. The key must be 32 bytes.
func NewChaCha20(key []byte) (*ChaCha20Cipher, error) {
	if len(key) != chacha20.KeySize {
		return nil, domain.ErrInvalidKeyLength
	}
	return &ChaCha20Cipher{key: key}, nil
}

// Encrypt XORs plaintext with the keystream selected by iv.
func (c *ChaCha20Cipher) Encrypt(iv, plaintext []byte) (domain.CipherFrame, error) {
	if len(iv) != domain.IVSize {
		return domain.CipherFrame{}, domain.ErrInvalidIV
	}

	counter := binary.LittleEndian.Uint32(iv[:4])
	blocks := (uint64(len(plaintext)) + chacha20BlockSize - 1) / chacha20BlockSize
	if uint64(counter)+blocks > 1<<32 {
		return domain.CipherFrame{}, errCounterOverflow
	}

	stream, err := chacha20.NewUnauthenticatedCipher(c.key, iv[4:])
	if err != nil {
		return domain.CipherFrame{}, domain.ErrInvalidIV
	}
	stream.SetCounter(counter)

	ciphertext := make([]byte, len(plaintext))
	stream.XORKeyStream(ciphertext, plaintext)

	return domain.CipherFrame{IV: iv, Ciphertext: ciphertext}, nil
}
