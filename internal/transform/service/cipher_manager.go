package service

import (
	"github.com/allisson/hashcipher/internal/transform/domain"
)

// CipherManagerService implements CipherManager over the static cipher table.
type CipherManagerService struct{}

// NewCipherManager creates a CipherManagerService.
func NewCipherManager() *CipherManagerService {
	return &CipherManagerService{}
}

// CreateCipher looks name up in the cipher table and keys the cipher with the
// leading bytes of derivedKey the algorithm needs (16 for *-128-*, 24 for
// *-192-*, 32 otherwise).
func (m *CipherManagerService) CreateCipher(name string, derivedKey []byte) (Cipher, error) {
	spec, err := lookupCipher(name)
	if err != nil {
		return nil, err
	}

	if len(derivedKey) < spec.keySize {
		return nil, domain.ErrInvalidKeyLength
	}
	key := derivedKey[:spec.keySize]

	switch spec.family {
	case familyAESCBC:
		return NewAESBlockCipher(key, modeCBC)
	case familyAESCTR:
		return NewAESBlockCipher(key, modeCTR)
	case familyAESCFB:
		return NewAESBlockCipher(key, modeCFB)
	case familyAESOFB:
		return NewAESBlockCipher(key, modeOFB)
	case familyAESGCM:
		return NewAESGCM(key)
	case familyChaCha20:
		return NewChaCha20(key)
	case familyChaCha20Poly1305:
		return NewChaCha20Poly1305(key)
	default:
		return nil, domain.ErrUnknownCipher
	}
}

// IsAEAD reports whether name denotes an authenticated cipher.
func (m *CipherManagerService) IsAEAD(name string) (bool, error) {
	spec, err := lookupCipher(name)
	if err != nil {
		return false, err
	}
	return spec.aead, nil
}
