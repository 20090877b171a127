package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/hashcipher/internal/errors"
	"github.com/allisson/hashcipher/internal/transform/domain"
)

func TestValidationErrorMessages(t *testing.T) {
	assert.Equal(t, "Input string is required", domain.ErrInvalidInput.Error())
	assert.Equal(t, "Cipher key is required when using cipher algorithms", domain.ErrMissingKey.Error())
	assert.ErrorIs(t, domain.ErrInvalidInput, apperrors.ErrInvalidInput)
	assert.ErrorIs(t, domain.ErrMissingKey, apperrors.ErrInvalidInput)
}

func TestTransformError(t *testing.T) {
	t.Run("Hash_UnsupportedAlgorithm", func(t *testing.T) {
		err := domain.NewTransformError(domain.ModeHash, "whirlpool9", domain.ErrUnknownDigest)

		assert.Equal(t, "Hash 'whirlpool9' failed: Digest method not supported", err.Error())
		assert.ErrorIs(t, err, domain.ErrUnsupportedAlgorithm)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.NotErrorIs(t, err, domain.ErrCipherFailure)
	})

	t.Run("Cipher_UnsupportedAlgorithm", func(t *testing.T) {
		err := domain.NewTransformError(domain.ModeCipher, "rot13", domain.ErrUnknownCipher)

		assert.Equal(t, "Cipher 'rot13' failed: Unknown cipher", err.Error())
		assert.ErrorIs(t, err, domain.ErrUnsupportedAlgorithm)
		assert.ErrorIs(t, err, domain.ErrCipherFailure)
	})

	t.Run("Cipher_ArbitraryReasonIsCipherFailure", func(t *testing.T) {
		reason := errors.New("entropy source unavailable")
		err := domain.NewTransformError(domain.ModeCipher, "aes-256-cbc", reason)

		assert.Equal(t, "Cipher 'aes-256-cbc' failed: entropy source unavailable", err.Error())
		assert.ErrorIs(t, err, domain.ErrCipherFailure)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.ErrorIs(t, err, reason)
		assert.NotErrorIs(t, err, domain.ErrUnsupportedAlgorithm)
	})

	t.Run("As_ExposesModeAndAlgorithm", func(t *testing.T) {
		var wrapped error = domain.NewTransformError(domain.ModeCipher, "aes-256-gcm", domain.ErrInvalidIV)

		var target *domain.TransformError
		assert.True(t, errors.As(wrapped, &target))
		assert.Equal(t, domain.ModeCipher, target.Mode)
		assert.Equal(t, "aes-256-gcm", target.Algorithm)
	})
}
