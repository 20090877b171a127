package usecase

import (
	"context"

	"github.com/allisson/hashcipher/internal/transform/domain"
)

// TransformUseCase defines the hash/cipher transform operations.
type TransformUseCase interface {
	// Transform validates req, runs the hash or cipher path and encodes the result.
	Transform(ctx context.Context, req *domain.Request) (string, error)

	// Hash is Transform in hash mode.
	Hash(ctx context.Context, input, algorithm, outputFormat string) (string, error)

	// Encrypt is Transform in cipher mode.
	Encrypt(ctx context.Context, input, algorithm, cipherKey, outputFormat string) (string, error)
}
