//go:build unit
// +build unit

package app

import (
	"context"
	"encoding/pem"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbook"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testKeySize = 256

// 3233 = 61 * 53 with e = 17 and d = 2753
func storedKey(keyType string) *keys.KeyMeta {
	exponent := "11"
	if keyType == keys.KeyTypePrivate {
		exponent = "ac1"
	}
	return &keys.KeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       uuid.NewString(),
		Algorithm:       keys.AlgorithmTextbookRSA,
		KeySize:         16,
		Exponent:        exponent,
		Modulus:         "ca1",
		Type:            keyType,
		DateTimeCreated: time.Now(),
		UserID:          uuid.NewString(),
	}
}

func setupProcessor(t *testing.T) (cryptoalg.RSAProcessor, logger.Logger) {
	t.Helper()
	log := testutil.SetupTestLogger(t)
	processor, err := cryptography.NewRSAProcessor(log, 0)
	require.NoError(t, err)
	return processor, log
}

func TestKeyGenerationService_Generate(t *testing.T) {
	processor, log := setupProcessor(t)

	t.Run("StoresBothHalves", func(t *testing.T) {
		repo := new(MockKeyRepository)
		repo.On("CreateKeyPair", mock.Anything, mock.AnythingOfType("*keys.KeyMeta"), mock.AnythingOfType("*keys.KeyMeta")).Return(nil)

		service, err := NewKeyGenerationService(repo, processor, nil, log)
		require.NoError(t, err)

		userID := uuid.NewString()
		metas, err := service.Generate(context.Background(), userID, testKeySize, 17)
		require.NoError(t, err)
		require.Len(t, metas, 2)

		publicMeta, privateMeta := metas[0], metas[1]
		assert.Equal(t, keys.KeyTypePublic, publicMeta.Type)
		assert.Equal(t, keys.KeyTypePrivate, privateMeta.Type)
		assert.Equal(t, publicMeta.KeyPairID, privateMeta.KeyPairID)
		assert.Equal(t, publicMeta.Modulus, privateMeta.Modulus)
		assert.Equal(t, "11", publicMeta.Exponent)
		assert.Equal(t, userID, publicMeta.UserID)
		assert.NoError(t, publicMeta.Validate())
		assert.NoError(t, privateMeta.Validate())

		publicKey, err := publicMeta.PublicKey()
		require.NoError(t, err)
		privateKey, err := privateMeta.PrivateKey()
		require.NoError(t, err)

		ciphertext, err := publicKey.Encrypt("stored")
		require.NoError(t, err)
		plaintext, err := privateKey.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, "stored", plaintext)

		repo.AssertExpectations(t)
	})

	t.Run("AppliesConfiguredDefaults", func(t *testing.T) {
		repo := new(MockKeyRepository)
		repo.On("CreateKeyPair", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		settings := &config.KeyGenSettings{KeySize: testKeySize, Exponent: 5}
		service, err := NewKeyGenerationService(repo, processor, settings, log)
		require.NoError(t, err)

		metas, err := service.Generate(context.Background(), uuid.NewString(), 0, 0)
		require.NoError(t, err)
		assert.Equal(t, testKeySize, metas[0].KeySize)
		assert.Equal(t, "5", metas[0].Exponent)
	})

	t.Run("InvalidExponent", func(t *testing.T) {
		repo := new(MockKeyRepository)

		service, err := NewKeyGenerationService(repo, processor, nil, log)
		require.NoError(t, err)

		_, err = service.Generate(context.Background(), uuid.NewString(), testKeySize, 15)
		assert.True(t, errors.Is(err, textbook.ErrInvalidExponent))
		repo.AssertNotCalled(t, "CreateKeyPair", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RepositoryFailure", func(t *testing.T) {
		repo := new(MockKeyRepository)
		repo.On("CreateKeyPair", mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("disk full"))

		service, err := NewKeyGenerationService(repo, processor, nil, log)
		require.NoError(t, err)

		_, err = service.Generate(context.Background(), uuid.NewString(), testKeySize, 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("InvalidSettings", func(t *testing.T) {
		_, err := NewKeyGenerationService(new(MockKeyRepository), processor, &config.KeyGenSettings{KeySize: 8, Exponent: 3}, log)
		assert.Error(t, err)
	})
}

func TestKeyMetadataService(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	t.Run("List", func(t *testing.T) {
		repo := new(MockKeyRepository)
		query := &keys.KeyQuery{Type: keys.KeyTypePublic}
		repo.On("List", mock.Anything, query).Return([]*keys.KeyMeta{storedKey(keys.KeyTypePublic)}, nil)

		service, err := NewKeyMetadataService(repo, log)
		require.NoError(t, err)

		metas, err := service.List(context.Background(), query)
		require.NoError(t, err)
		assert.Len(t, metas, 1)
		repo.AssertExpectations(t)
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		repo := new(MockKeyRepository)
		repo.On("GetByID", mock.Anything, "missing").Return(nil, keys.ErrKeyNotFound)

		service, err := NewKeyMetadataService(repo, log)
		require.NoError(t, err)

		_, err = service.GetByID(context.Background(), "missing")
		assert.True(t, errors.Is(err, keys.ErrKeyNotFound))
	})

	t.Run("DeleteByID", func(t *testing.T) {
		repo := new(MockKeyRepository)
		repo.On("DeleteByID", mock.Anything, "key-id").Return(nil)

		service, err := NewKeyMetadataService(repo, log)
		require.NoError(t, err)

		require.NoError(t, service.DeleteByID(context.Background(), "key-id"))
		repo.AssertExpectations(t)
	})
}

func TestKeyDownloadService_DownloadByID(t *testing.T) {
	processor, log := setupProcessor(t)

	t.Run("PublicKey", func(t *testing.T) {
		key := storedKey(keys.KeyTypePublic)
		repo := new(MockKeyRepository)
		repo.On("GetByID", mock.Anything, key.ID).Return(key, nil)

		service, err := NewKeyDownloadService(repo, processor, log)
		require.NoError(t, err)

		pemBytes, err := service.DownloadByID(context.Background(), key.ID)
		require.NoError(t, err)

		block, _ := pem.Decode(pemBytes)
		require.NotNil(t, block)
		assert.Equal(t, cryptography.PublicKeyBlockType, block.Type)
	})

	t.Run("PrivateKeyRefused", func(t *testing.T) {
		key := storedKey(keys.KeyTypePrivate)
		repo := new(MockKeyRepository)
		repo.On("GetByID", mock.Anything, key.ID).Return(key, nil)

		service, err := NewKeyDownloadService(repo, processor, log)
		require.NoError(t, err)

		_, err = service.DownloadByID(context.Background(), key.ID)
		assert.True(t, errors.Is(err, keys.ErrKeyTypeMismatch))
	})
}

func TestKeyCipherService(t *testing.T) {
	processor, log := setupProcessor(t)

	publicKey := storedKey(keys.KeyTypePublic)
	privateKey := storedKey(keys.KeyTypePrivate)

	repo := new(MockKeyRepository)
	repo.On("GetByID", mock.Anything, publicKey.ID).Return(publicKey, nil)
	repo.On("GetByID", mock.Anything, privateKey.ID).Return(privateKey, nil)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, keys.ErrKeyNotFound)

	service, err := NewKeyCipherService(repo, processor, log)
	require.NoError(t, err)

	t.Run("EncryptDecrypt", func(t *testing.T) {
		ciphertext, err := service.Encrypt(context.Background(), publicKey.ID, "A")
		require.NoError(t, err)
		assert.Equal(t, "ae6", ciphertext)

		plaintext, err := service.Decrypt(context.Background(), privateKey.ID, ciphertext)
		require.NoError(t, err)
		assert.Equal(t, "A", plaintext)
	})

	t.Run("WrongKeyType", func(t *testing.T) {
		_, err := service.Encrypt(context.Background(), privateKey.ID, "A")
		assert.True(t, errors.Is(err, keys.ErrKeyTypeMismatch))

		_, err = service.Decrypt(context.Background(), publicKey.ID, "ae6")
		assert.True(t, errors.Is(err, keys.ErrKeyTypeMismatch))
	})

	t.Run("MessageTooLong", func(t *testing.T) {
		_, err := service.Encrypt(context.Background(), publicKey.ID, "AB")
		assert.True(t, errors.Is(err, textbook.ErrMessageTooLong))
	})

	t.Run("InvalidCiphertext", func(t *testing.T) {
		_, err := service.Decrypt(context.Background(), privateKey.ID, "xyz")
		assert.True(t, errors.Is(err, textbook.ErrDecoding))
	})

	t.Run("MissingKey", func(t *testing.T) {
		_, err := service.Encrypt(context.Background(), "missing", "A")
		assert.True(t, errors.Is(err, keys.ErrKeyNotFound))
	})
}
