package service

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"

	"github.com/allisson/hashcipher/internal/transform/domain"
)

// blockMode names the AES mode of operation used by AESBlockCipher.
type blockMode int

const (
	modeCBC blockMode = iota
	modeCTR
	modeCFB
	modeOFB
)

// AESBlockCipher implements the unauthenticated AES modes. CBC pads with
// PKCS#7; CTR, CFB and OFB are stream modes and emit ciphertext of the same
// length as the plaintext.
type AESBlockCipher struct {
	block cipher.Block
	mode  blockMode
}

// NewAESBlockCipher creates an AES cipher in the given mode. The key must be
// 16, 24 or 32 bytes.
func NewAESBlockCipher(key []byte, mode blockMode) (*AESBlockCipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, domain.ErrInvalidKeyLength
	}
	return &AESBlockCipher{block: block, mode: mode}, nil
}

// Encrypt encrypts plaintext under iv. The frame carries no tag.
func (a *AESBlockCipher) Encrypt(iv, plaintext []byte) (domain.CipherFrame, error) {
	if len(iv) != a.block.BlockSize() {
		return domain.CipherFrame{}, domain.ErrInvalidIV
	}

	var ciphertext []byte
	switch a.mode {
	case modeCBC:
		ciphertext = pkcs7Pad(plaintext, a.block.BlockSize())
		cipher.NewCBCEncrypter(a.block, iv).CryptBlocks(ciphertext, ciphertext)
	default:
		ciphertext = make([]byte, len(plaintext))
		a.stream(iv).XORKeyStream(ciphertext, plaintext)
	}

	return domain.CipherFrame{IV: iv, Ciphertext: ciphertext}, nil
}

func (a *AESBlockCipher) stream(iv []byte) cipher.Stream {
	switch a.mode {
	case modeCFB:
		return cipher.NewCFBEncrypter(a.block, iv) //nolint:staticcheck // deprecated, still needed for aes-*-cfb
	case modeOFB:
		return cipher.NewOFB(a.block, iv) //nolint:staticcheck // deprecated, still needed for aes-*-ofb
	default:
		return cipher.NewCTR(a.block, iv)
	}
}

// pkcs7Pad returns a copy of b padded to a multiple of blockSize. A full block
// of padding is added when b is already aligned.
func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	out := make([]byte, len(b), len(b)+n)
	copy(out, b)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}
