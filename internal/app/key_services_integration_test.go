//go:build integration
// +build integration

package app

import (
	"context"
	"encoding/pem"
	"errors"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyServices_Lifecycle(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	metas, err := services.KeyGenerationService.Generate(ctx, uuid.NewString(), 0, 0)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	publicMeta, privateMeta := metas[0], metas[1]

	listed, err := services.KeyMetadataService.List(ctx, &keys.KeyQuery{KeyPairID: publicMeta.KeyPairID})
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	pemBytes, err := services.KeyDownloadService.DownloadByID(ctx, publicMeta.ID)
	require.NoError(t, err)
	block, _ := pem.Decode(pemBytes)
	require.NotNil(t, block)

	_, err = services.KeyDownloadService.DownloadByID(ctx, privateMeta.ID)
	assert.True(t, errors.Is(err, keys.ErrKeyTypeMismatch))

	ciphertext, err := services.KeyCipherService.Encrypt(ctx, publicMeta.ID, "integration")
	require.NoError(t, err)
	plaintext, err := services.KeyCipherService.Decrypt(ctx, privateMeta.ID, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "integration", plaintext)

	require.NoError(t, services.KeyMetadataService.DeleteByID(ctx, privateMeta.ID))
	_, err = services.KeyCipherService.Decrypt(ctx, privateMeta.ID, ciphertext)
	assert.True(t, errors.Is(err, keys.ErrKeyNotFound))

	_, err = services.KeyMetadataService.GetByID(ctx, publicMeta.ID)
	assert.NoError(t, err)
}

func TestKeyServices_GenerateWithOptions(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	tests := []struct {
		name     string
		keySize  int
		exponent int64
		wantErr  bool
	}{
		{"512-bit e=3", 512, 3, false},
		{"256-bit e=65537", 256, 65537, false},
		{"non-prime exponent", 256, 9, true},
		{"key too small", 8, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metas, err := services.KeyGenerationService.Generate(context.Background(), uuid.NewString(), tt.keySize, tt.exponent)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.keySize, metas[0].KeySize)
		})
	}
}
