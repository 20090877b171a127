// Package mocks provides mock implementations for testing transform consumers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/hashcipher/internal/transform/domain"
)

// MockTransformUseCase is a mock implementation of TransformUseCase for testing.
type MockTransformUseCase struct {
	mock.Mock
}

// Transform mocks the Transform method of TransformUseCase.
func (m *MockTransformUseCase) Transform(ctx context.Context, req *domain.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// Hash mocks the Hash method of TransformUseCase.
func (m *MockTransformUseCase) Hash(
	ctx context.Context,
	input, algorithm, outputFormat string,
) (string, error) {
	args := m.Called(ctx, input, algorithm, outputFormat)
	return args.String(0), args.Error(1)
}

// Encrypt mocks the Encrypt method of TransformUseCase.
func (m *MockTransformUseCase) Encrypt(
	ctx context.Context,
	input, algorithm, cipherKey, outputFormat string,
) (string, error) {
	args := m.Called(ctx, input, algorithm, cipherKey, outputFormat)
	return args.String(0), args.Error(1)
}
