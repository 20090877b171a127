package usecase

import (
	"context"
	"time"

	"github.com/allisson/hashcipher/internal/metrics"
	"github.com/allisson/hashcipher/internal/transform/domain"
)

// transformUseCaseWithMetrics decorates TransformUseCase with metrics instrumentation.
type transformUseCaseWithMetrics struct {
	next    TransformUseCase
	metrics metrics.BusinessMetrics
}

// NewTransformUseCaseWithMetrics wraps a TransformUseCase with metrics recording.
func NewTransformUseCaseWithMetrics(useCase TransformUseCase, m metrics.BusinessMetrics) TransformUseCase {
	return &transformUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Transform records metrics labelled by the resolved mode.
func (t *transformUseCaseWithMetrics) Transform(ctx context.Context, req *domain.Request) (string, error) {
	start := time.Now()
	result, err := t.next.Transform(ctx, req)

	operation := "transform_hash"
	size := 0
	if req != nil {
		size = len(req.Input)
		if req.Mode() == domain.ModeCipher {
			operation = "transform_cipher"
		}
	}
	t.record(ctx, operation, size, start, err)

	return result, err
}

// Hash records metrics for hash operations.
func (t *transformUseCaseWithMetrics) Hash(
	ctx context.Context,
	input, algorithm, outputFormat string,
) (string, error) {
	start := time.Now()
	result, err := t.next.Hash(ctx, input, algorithm, outputFormat)
	t.record(ctx, "transform_hash", len(input), start, err)
	return result, err
}

// Encrypt records metrics for cipher operations.
func (t *transformUseCaseWithMetrics) Encrypt(
	ctx context.Context,
	input, algorithm, cipherKey, outputFormat string,
) (string, error) {
	start := time.Now()
	result, err := t.next.Encrypt(ctx, input, algorithm, cipherKey, outputFormat)
	t.record(ctx, "transform_cipher", len(input), start, err)
	return result, err
}

func (t *transformUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	inputSize int,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "transform", operation, status)
	t.metrics.RecordDuration(ctx, "transform", operation, time.Since(start), status)
	t.metrics.RecordInputSize(ctx, "transform", operation, inputSize)
}
