package service

import (
	"crypto/rand"
	"fmt"
	"io"

	apperrors "github.com/allisson/hashcipher/internal/errors"
	"github.com/allisson/hashcipher/internal/transform/domain"
)

var errFrameLayout = apperrors.Tag(domain.ErrCipherFailure, "cipher frame layout does not match the algorithm")

// frameCipherService implements CipherService.
type frameCipherService struct {
	ciphers CipherManager
	random  io.Reader
}

// NewCipherService creates a CipherService drawing IVs from crypto/rand.
func NewCipherService(ciphers CipherManager) CipherService {
	return &frameCipherService{ciphers: ciphers, random: rand.Reader}
}

// Encrypt derives a key from passphrase, draws a fresh IV and encrypts input
// under the named algorithm. The derived key is zeroed before returning.
// AEAD algorithms must yield a domain.TagSize tag and the others none.
func (s *frameCipherService) Encrypt(input, algorithm, passphrase string) (domain.CipherFrame, error) {
	key := DeriveKey(passphrase)
	defer domain.Zero(key)

	iv := make([]byte, domain.IVSize)
	if _, err := io.ReadFull(s.random, iv); err != nil {
		return domain.CipherFrame{}, fmt.Errorf("failed to generate IV: %w", err)
	}

	c, err := s.ciphers.CreateCipher(algorithm, key)
	if err != nil {
		return domain.CipherFrame{}, err
	}

	aead, err := s.ciphers.IsAEAD(algorithm)
	if err != nil {
		return domain.CipherFrame{}, err
	}

	frame, err := c.Encrypt(iv, []byte(input))
	if err != nil {
		return domain.CipherFrame{}, err
	}

	wantTag := 0
	if aead {
		wantTag = domain.TagSize
	}
	if len(frame.Tag) != wantTag {
		return domain.CipherFrame{}, errFrameLayout
	}
	return frame, nil
}
