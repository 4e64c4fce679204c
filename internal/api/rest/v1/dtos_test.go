//go:build unit
// +build unit

package v1

import (
	"testing"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   GenerateKeyRequest
		shouldErr bool
	}{
		{"Empty fields (valid)", GenerateKeyRequest{}, false},
		{"Valid 1024", GenerateKeyRequest{KeySize: 1024}, false},
		{"Valid 256 with e=17", GenerateKeyRequest{KeySize: 256, Exponent: 17}, false},
		{"Exponent only", GenerateKeyRequest{Exponent: 65537}, false},
		{"Key size too small", GenerateKeyRequest{KeySize: 8}, true},
		{"Key size not whole bytes", GenerateKeyRequest{KeySize: 1234}, true},
		{"Exponent too small", GenerateKeyRequest{Exponent: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestDecryptRequest_Validate(t *testing.T) {
	assert.NoError(t, (&DecryptRequest{Ciphertext: "ae6"}).Validate())

	err := (&DecryptRequest{}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Ciphertext, Tag: required")
}

func TestPrimeQuery_Validate(t *testing.T) {
	assert.NoError(t, (&PrimeQuery{Bits: 64}).Validate())
	assert.NoError(t, (&PrimeQuery{Bits: 64, Exponent: 3}).Validate())
	assert.Error(t, (&PrimeQuery{Bits: 1}).Validate())
	assert.Error(t, (&PrimeQuery{Bits: 8192}).Validate())
	assert.Error(t, (&PrimeQuery{Bits: 64, Exponent: 1}).Validate())
}

func TestNewKeyMetaResponse_HidesPrivateExponent(t *testing.T) {
	meta := &keys.KeyMeta{
		ID:              "key-1",
		KeyPairID:       "pair-1",
		Algorithm:       keys.AlgorithmTextbookRSA,
		KeySize:         16,
		Exponent:        "ac1",
		Modulus:         "ca1",
		Type:            keys.KeyTypePrivate,
		DateTimeCreated: time.Now(),
		UserID:          "user-1",
	}

	response := newKeyMetaResponse(meta)
	assert.Empty(t, response.PublicExponent)
	assert.Equal(t, "ca1", response.Modulus)

	meta.Type = keys.KeyTypePublic
	meta.Exponent = "11"
	response = newKeyMetaResponse(meta)
	assert.Equal(t, "11", response.PublicExponent)
}
