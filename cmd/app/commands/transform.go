package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allisson/hashcipher/internal/transform/domain"
	transformUseCase "github.com/allisson/hashcipher/internal/transform/usecase"
)

// RunTransform hashes or encrypts req.Input depending on whether a cipher is selected.
// An input of "-" is read from io.Reader. The result is written to io.Writer as a
// bare line or, with format "json", as {"result": "..."}.
func RunTransform(
	ctx context.Context,
	useCase transformUseCase.TransformUseCase,
	logger *slog.Logger,
	io IOTuple,
	req *domain.Request,
	format string,
) error {
	input, err := resolveInput(req.Input, io.Reader)
	if err != nil {
		return err
	}
	req.Input = input

	result, err := useCase.Transform(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to transform input: %w", err)
	}

	if err := outputResult(io.Writer, result, format); err != nil {
		return err
	}

	logger.Debug("transform completed", slog.Any("request", req))
	return nil
}

// RunHash digests input with algorithm; an empty algorithm selects sha1.
func RunHash(
	ctx context.Context,
	useCase transformUseCase.TransformUseCase,
	logger *slog.Logger,
	io IOTuple,
	input string,
	algorithm string,
	outputFormat string,
	format string,
) error {
	input, err := resolveInput(input, io.Reader)
	if err != nil {
		return err
	}

	result, err := useCase.Hash(ctx, input, algorithm, outputFormat)
	if err != nil {
		return fmt.Errorf("failed to hash input: %w", err)
	}

	if err := outputResult(io.Writer, result, format); err != nil {
		return err
	}

	logger.Debug("hash completed", slog.String("algorithm", algorithm))
	return nil
}

// RunEncrypt encrypts input under a key derived from cipherKey.
// The cipher key never reaches the logs.
func RunEncrypt(
	ctx context.Context,
	useCase transformUseCase.TransformUseCase,
	logger *slog.Logger,
	io IOTuple,
	input string,
	algorithm string,
	cipherKey string,
	outputFormat string,
	format string,
) error {
	input, err := resolveInput(input, io.Reader)
	if err != nil {
		return err
	}

	result, err := useCase.Encrypt(ctx, input, algorithm, cipherKey, outputFormat)
	if err != nil {
		return fmt.Errorf("failed to encrypt input: %w", err)
	}

	if err := outputResult(io.Writer, result, format); err != nil {
		return err
	}

	logger.Debug("encryption completed", slog.String("algorithm", algorithm))
	return nil
}
