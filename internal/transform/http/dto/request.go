// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/hashcipher/internal/transform/domain"
	customValidation "github.com/allisson/hashcipher/internal/validation"
)

// TransformRequest mirrors domain.Request. Cipher takes precedence over Hash.
// An empty input is not rejected here so that callers get the transform's own message.
type TransformRequest struct {
	Input        string `json:"input"`
	Hash         string `json:"hash,omitempty"`
	Cipher       string `json:"cipher,omitempty"`
	CipherKey    string `json:"cipher_key,omitempty"`
	OutputFormat string `json:"output_format,omitempty"`
}

// Validate checks the shape of the request. maxInputBytes of zero disables the size check.
func (r *TransformRequest) Validate(maxInputBytes int) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Input, customValidation.MaxBytes(maxInputBytes)),
		validation.Field(&r.Hash, customValidation.NoWhitespace, customValidation.AlgorithmName),
		validation.Field(&r.Cipher, customValidation.NoWhitespace, customValidation.AlgorithmName),
		validation.Field(&r.OutputFormat, validation.Length(0, 16)),
	)
}

// ToDomain converts the request to a domain.Request.
func (r *TransformRequest) ToDomain() *domain.Request {
	return &domain.Request{
		Input:           r.Input,
		HashAlgorithm:   r.Hash,
		CipherAlgorithm: r.Cipher,
		CipherKey:       r.CipherKey,
		OutputFormat:    r.OutputFormat,
	}
}

// HashRequest contains the parameters for hashing a string.
type HashRequest struct {
	Input        string `json:"input"`
	Algorithm    string `json:"algorithm,omitempty"` // defaults to "sha1"
	OutputFormat string `json:"output_format,omitempty"`
}

// Validate checks the shape of the request.
func (r *HashRequest) Validate(maxInputBytes int) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Input, customValidation.MaxBytes(maxInputBytes)),
		validation.Field(&r.Algorithm, customValidation.NoWhitespace, customValidation.AlgorithmName),
		validation.Field(&r.OutputFormat, validation.Length(0, 16)),
	)
}

// EncryptRequest contains the parameters for encrypting a string.
type EncryptRequest struct {
	Input        string `json:"input"`
	Algorithm    string `json:"algorithm"` // e.g. "aes-256-gcm" or "chacha20-poly1305"
	CipherKey    string `json:"cipher_key"`
	OutputFormat string `json:"output_format,omitempty"`
}

// Validate checks the shape of the request. The cipher key is checked by the transform.
func (r *EncryptRequest) Validate(maxInputBytes int) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Input, customValidation.MaxBytes(maxInputBytes)),
		validation.Field(&r.Algorithm,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
			customValidation.AlgorithmName,
		),
		validation.Field(&r.OutputFormat, validation.Length(0, 16)),
	)
}
