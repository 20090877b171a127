// Package mocks provides mock implementations of the transform services.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/allisson/hashcipher/internal/transform/domain"
)

// MockHashService is a mock implementation of HashService.
type MockHashService struct {
	mock.Mock
}

// Hash mocks the Hash method of HashService.
func (m *MockHashService) Hash(input, algorithm string) ([]byte, error) {
	args := m.Called(input, algorithm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockCipherService is a mock implementation of CipherService.
type MockCipherService struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of CipherService.
func (m *MockCipherService) Encrypt(input, algorithm, passphrase string) (domain.CipherFrame, error) {
	args := m.Called(input, algorithm, passphrase)
	return args.Get(0).(domain.CipherFrame), args.Error(1)
}
