package domain

import (
	"errors"
	"fmt"

	apperrors "github.com/allisson/hashcipher/internal/errors"
)

// Transform error taxonomy. Every error matches apperrors.ErrInvalidInput so the
// HTTP layer reports them as 422 Unprocessable Entity.
var (
	// ErrInvalidInput is returned when the input string is empty.
	ErrInvalidInput = apperrors.Tag(apperrors.ErrInvalidInput, "Input string is required")

	// ErrMissingKey is returned when a cipher is named without a cipher key.
	ErrMissingKey = apperrors.Tag(
		apperrors.ErrInvalidInput,
		"Cipher key is required when using cipher algorithms",
	)

	// ErrUnsupportedAlgorithm is matched when no provider recognizes the algorithm name.
	ErrUnsupportedAlgorithm = apperrors.Tag(apperrors.ErrInvalidInput, "unsupported algorithm")

	// ErrCipherFailure is matched by every failure raised on the cipher path.
	ErrCipherFailure = apperrors.Tag(apperrors.ErrInvalidInput, "cipher failure")

	// ErrUnknownDigest is the provider reason for an unrecognized hash name.
	ErrUnknownDigest = apperrors.Tag(ErrUnsupportedAlgorithm, "Digest method not supported")

	// ErrUnknownCipher is the provider reason for an unrecognized cipher name.
	ErrUnknownCipher = apperrors.Tag(ErrUnsupportedAlgorithm, "Unknown cipher")

	// ErrInvalidKeyLength is the provider reason for a key that does not fit the cipher.
	ErrInvalidKeyLength = apperrors.Tag(ErrCipherFailure, "Invalid key length")

	// ErrInvalidIV is the provider reason for an IV that does not fit the cipher.
	ErrInvalidIV = apperrors.Tag(ErrCipherFailure, "Invalid initialization vector")

	// ErrShortFrame is returned when frame bytes are shorter than the frame header.
	ErrShortFrame = apperrors.Tag(apperrors.ErrInvalidInput, "cipher frame too short")
)

// TransformError reports a failure of the hash or cipher path.
//
// The message has the form "<Hash|Cipher> '<algorithm>' failed: <reason>" and
// never includes the input, the key, the derived key or the IV.
type TransformError struct {
	Mode      Mode
	Algorithm string
	Err       error
}

// NewTransformError wraps err with the mode and algorithm of the failed call.
func NewTransformError(mode Mode, algorithm string, err error) *TransformError {
	return &TransformError{Mode: mode, Algorithm: algorithm, Err: err}
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("%s '%s' failed: %s", e.Mode.Title(), e.Algorithm, e.Err.Error())
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// Is makes every cipher-mode failure match ErrCipherFailure (and its kinds),
// regardless of the underlying reason.
func (e *TransformError) Is(target error) bool {
	return e.Mode == ModeCipher && errors.Is(ErrCipherFailure, target)
}
