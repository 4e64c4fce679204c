//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/stretchr/testify/assert"
)

func TestKeyModel_ToDomain(t *testing.T) {
	keyModel := &KeyModel{
		ID:              "test-id",
		KeyPairID:       "test-keypair-id",
		Algorithm:       keys.AlgorithmTextbookRSA,
		KeySize:         1024,
		Exponent:        "3",
		Modulus:         "ca1",
		Type:            keys.KeyTypePublic,
		DateTimeCreated: time.Now(),
		UserID:          "user-id",
	}

	keyMeta := keyModel.ToDomain()

	assert.Equal(t, keyModel.ID, keyMeta.ID)
	assert.Equal(t, keyModel.KeyPairID, keyMeta.KeyPairID)
	assert.Equal(t, keyModel.Algorithm, keyMeta.Algorithm)
	assert.Equal(t, keyModel.KeySize, keyMeta.KeySize)
	assert.Equal(t, keyModel.Exponent, keyMeta.Exponent)
	assert.Equal(t, keyModel.Modulus, keyMeta.Modulus)
	assert.Equal(t, keyModel.Type, keyMeta.Type)
	assert.Equal(t, keyModel.DateTimeCreated, keyMeta.DateTimeCreated)
	assert.Equal(t, keyModel.UserID, keyMeta.UserID)
}

func TestKeyModel_FromDomain(t *testing.T) {
	keyMeta := &keys.KeyMeta{
		ID:              "test-id",
		KeyPairID:       "test-keypair-id",
		Algorithm:       keys.AlgorithmTextbookRSA,
		KeySize:         1024,
		Exponent:        "ac1",
		Modulus:         "ca1",
		Type:            keys.KeyTypePrivate,
		DateTimeCreated: time.Now(),
		UserID:          "user-id",
	}

	keyModel := &KeyModel{}
	keyModel.FromDomain(keyMeta)

	assert.Equal(t, keyMeta, keyModel.ToDomain())
	assert.Equal(t, "textbook_rsa_keys", keyModel.TableName())
}
