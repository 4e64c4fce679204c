//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeyGenerationService is a mock implementation of KeyGenerationService
type MockKeyGenerationService struct {
	mock.Mock
}

func (m *MockKeyGenerationService) Generate(ctx context.Context, userID string, keySize int, exponent int64) ([]*keys.KeyMeta, error) {
	args := m.Called(ctx, userID, keySize, exponent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyMeta), args.Error(1)
}

// MockKeyMetadataService is a mock implementation of KeyMetadataService
type MockKeyMetadataService struct {
	mock.Mock
}

func (m *MockKeyMetadataService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyMeta), args.Error(1)
}

func (m *MockKeyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyMeta), args.Error(1)
}

func (m *MockKeyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockKeyDownloadService is a mock implementation of KeyDownloadService
type MockKeyDownloadService struct {
	mock.Mock
}

func (m *MockKeyDownloadService) DownloadByID(ctx context.Context, keyID string) ([]byte, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockKeyCipherService is a mock implementation of KeyCipherService
type MockKeyCipherService struct {
	mock.Mock
}

func (m *MockKeyCipherService) Encrypt(ctx context.Context, keyID, plaintext string) (string, error) {
	args := m.Called(ctx, keyID, plaintext)
	return args.String(0), args.Error(1)
}

func (m *MockKeyCipherService) Decrypt(ctx context.Context, keyID, ciphertext string) (string, error) {
	args := m.Called(ctx, keyID, ciphertext)
	return args.String(0), args.Error(1)
}
