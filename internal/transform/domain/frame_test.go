package domain_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/hashcipher/internal/errors"
	"github.com/allisson/hashcipher/internal/transform/domain"
)

func TestCipherFrame_Bytes(t *testing.T) {
	iv := bytes.Repeat([]byte{0x01}, domain.IVSize)
	tag := bytes.Repeat([]byte{0x02}, domain.TagSize)
	ct := []byte{0x03, 0x04, 0x05}

	t.Run("Success_AEADLayout", func(t *testing.T) {
		frame := domain.CipherFrame{IV: iv, Tag: tag, Ciphertext: ct}

		b := frame.Bytes()

		require.Len(t, b, 16+16+3)
		assert.Equal(t, iv, b[0:16])
		assert.Equal(t, tag, b[16:32])
		assert.Equal(t, ct, b[32:])
	})

	t.Run("Success_NoTagLayout", func(t *testing.T) {
		frame := domain.CipherFrame{IV: iv, Ciphertext: ct}

		b := frame.Bytes()

		require.Len(t, b, 16+3)
		assert.Equal(t, iv, b[0:16])
		assert.Equal(t, ct, b[16:])
	})
}

func TestParseCipherFrame(t *testing.T) {
	raw := make([]byte, 40)
	for i := range raw {
		raw[i] = byte(i)
	}

	t.Run("Success_AEAD", func(t *testing.T) {
		frame, err := domain.ParseCipherFrame(raw, true)

		require.NoError(t, err)
		assert.Equal(t, raw[0:16], frame.IV)
		assert.Equal(t, raw[16:32], frame.Tag)
		assert.Equal(t, raw[32:], frame.Ciphertext)
		assert.Equal(t, raw, frame.Bytes())
	})

	t.Run("Success_NonAEAD", func(t *testing.T) {
		frame, err := domain.ParseCipherFrame(raw, false)

		require.NoError(t, err)
		assert.Equal(t, raw[0:16], frame.IV)
		assert.Nil(t, frame.Tag)
		assert.Equal(t, raw[16:], frame.Ciphertext)
	})

	t.Run("Error_TooShort", func(t *testing.T) {
		_, err := domain.ParseCipherFrame(raw[:20], true)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrShortFrame)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3}
	domain.Zero(b)
	assert.Equal(t, []byte{0, 0, 0}, b)

	// nil must not panic
	domain.Zero(nil)
}
