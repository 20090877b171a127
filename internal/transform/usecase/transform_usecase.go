// Package usecase orchestrates the hash/cipher transform.
//
// A call flows strictly in sequence: the request is validated and its mode
// resolved, the hash or cipher path produces raw bytes, and the encoder renders
// them as text. Nothing is retained between calls, so a single use case value is
// safe for concurrent use.
//
//	uc := usecase.NewTransformUseCase(hashService, cipherService, encoder, "hex")
//
//	digest, err := uc.Hash(ctx, "hello", "sha256", "hex")
//	// 2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824
//
//	frame, err := uc.Encrypt(ctx, "hello", "aes-256-gcm", "passphrase", "base64")
//	// base64(IV || tag || ciphertext)
package usecase

import (
	"context"

	"github.com/allisson/hashcipher/internal/transform/domain"
	"github.com/allisson/hashcipher/internal/transform/service"
)

type transformUseCase struct {
	hashService         service.HashService
	cipherService       service.CipherService
	encoder             service.Encoder
	defaultOutputFormat string
}

// NewTransformUseCase creates a TransformUseCase. defaultOutputFormat applies
// when a request leaves the output format empty.
func NewTransformUseCase(
	hashService service.HashService,
	cipherService service.CipherService,
	encoder service.Encoder,
	defaultOutputFormat string,
) TransformUseCase {
	return &transformUseCase{
		hashService:         hashService,
		cipherService:       cipherService,
		encoder:             encoder,
		defaultOutputFormat: defaultOutputFormat,
	}
}

// Validate checks req and resolves its mode. Empty input is reported before a
// missing key.
func Validate(req *domain.Request) (domain.Mode, error) {
	if req == nil || req.Input == "" {
		return "", domain.ErrInvalidInput
	}

	mode := req.Mode()
	if mode == domain.ModeCipher && req.CipherKey == "" {
		return "", domain.ErrMissingKey
	}
	return mode, nil
}

// Transform validates req, runs the selected path and encodes the raw bytes.
// Path failures are returned as *domain.TransformError.
func (t *transformUseCase) Transform(_ context.Context, req *domain.Request) (string, error) {
	mode, err := Validate(req)
	if err != nil {
		return "", err
	}

	algorithm := req.Algorithm()

	var raw []byte
	switch mode {
	case domain.ModeCipher:
		frame, err := t.cipherService.Encrypt(req.Input, algorithm, req.CipherKey)
		if err != nil {
			return "", domain.NewTransformError(mode, algorithm, err)
		}
		raw = frame.Bytes()
	default:
		raw, err = t.hashService.Hash(req.Input, algorithm)
		if err != nil {
			return "", domain.NewTransformError(mode, algorithm, err)
		}
	}

	return t.encoder.Encode(raw, t.outputFormat(req.OutputFormat)), nil
}

// Hash runs the hash path.
func (t *transformUseCase) Hash(ctx context.Context, input, algorithm, outputFormat string) (string, error) {
	return t.Transform(ctx, &domain.Request{
		Input:         input,
		HashAlgorithm: algorithm,
		OutputFormat:  outputFormat,
	})
}

// Encrypt runs the cipher path.
func (t *transformUseCase) Encrypt(
	ctx context.Context,
	input, algorithm, cipherKey, outputFormat string,
) (string, error) {
	if algorithm == "" {
		switch {
		case input == "":
			return "", domain.ErrInvalidInput
		case cipherKey == "":
			return "", domain.ErrMissingKey
		}
		return "", domain.NewTransformError(domain.ModeCipher, algorithm, domain.ErrUnknownCipher)
	}
	return t.Transform(ctx, &domain.Request{
		Input:           input,
		CipherAlgorithm: algorithm,
		CipherKey:       cipherKey,
		OutputFormat:    outputFormat,
	})
}

func (t *transformUseCase) outputFormat(requested string) domain.OutputFormat {
	if requested == "" {
		requested = t.defaultOutputFormat
	}
	return domain.ParseOutputFormat(requested)
}
