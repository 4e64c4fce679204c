package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// GenerateKeyRequest holds the optional parameters of a key pair generation.
// Zero values select the server defaults.
type GenerateKeyRequest struct {
	KeySize  int   `json:"key_size" validate:"omitempty,keySizeValidation"`
	Exponent int64 `json:"exponent" validate:"omitempty,min=3"`
}

// Validate for validating GenerateKeyRequest struct
func (r *GenerateKeyRequest) Validate() error {
	validate := validator.New()

	if err := validators.Register(validate); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	return formatValidationError(validate.Struct(r))
}

// EncryptRequest carries the text to encrypt. The empty string is a valid message.
type EncryptRequest struct {
	Plaintext string `json:"plaintext"`
}

// DecryptRequest carries a hexadecimal ciphertext.
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext" validate:"required"`
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	return formatValidationError(validator.New().Struct(r))
}

// PrimeQuery holds the query parameters of a prime generation.
type PrimeQuery struct {
	Bits     int   `validate:"required,min=2,max=4096"`
	Exponent int64 `validate:"omitempty,min=2"`
}

// Validate for validating PrimeQuery struct
func (q *PrimeQuery) Validate() error {
	return formatValidationError(validator.New().Struct(q))
}

func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}

// KeyMetaResponse describes a stored key. The private exponent is never returned.
type KeyMetaResponse struct {
	ID              string    `json:"id"`
	KeyPairID       string    `json:"key_pair_id"`
	Algorithm       string    `json:"algorithm"`
	KeySize         int       `json:"key_size"`
	Modulus         string    `json:"modulus"`
	PublicExponent  string    `json:"public_exponent,omitempty"`
	Type            string    `json:"type"`
	DateTimeCreated time.Time `json:"date_time_created"`
	UserID          string    `json:"user_id"`
}

func newKeyMetaResponse(k *keys.KeyMeta) KeyMetaResponse {
	response := KeyMetaResponse{
		ID:              k.ID,
		KeyPairID:       k.KeyPairID,
		Algorithm:       k.Algorithm,
		KeySize:         k.KeySize,
		Modulus:         k.Modulus,
		Type:            k.Type,
		DateTimeCreated: k.DateTimeCreated,
		UserID:          k.UserID,
	}
	if k.Type == keys.KeyTypePublic {
		response.PublicExponent = k.Exponent
	}
	return response
}

// EncryptResponse carries a lowercase hexadecimal ciphertext.
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// DecryptResponse carries a recovered plaintext.
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}

// PrimeResponse carries a generated prime in decimal and hexadecimal.
type PrimeResponse struct {
	Bits    int    `json:"bits"`
	Decimal string `json:"decimal"`
	Hex     string `json:"hex"`
}

// PrimalityResponse reports whether a candidate is probably prime.
type PrimalityResponse struct {
	Candidate string `json:"candidate"`
	Prime     bool   `json:"prime"`
}

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message
type InfoResponse struct {
	Message string `json:"message"`
}
