package keys

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbook"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// KeyMeta is one half of a stored key pair. Exponent holds e for public keys and
// d for private keys; Exponent and Modulus are lowercase hexadecimal.
type KeyMeta struct {
	ID              string    `validate:"required,uuid4"`
	KeyPairID       string    `validate:"required,uuid4"`
	Algorithm       string    `validate:"required,oneof=TRSA"`
	KeySize         int       `validate:"keySizeValidation"`
	Exponent        string    `validate:"required,hexadecimal"`
	Modulus         string    `validate:"required,hexadecimal"`
	Type            string    `validate:"required,oneof=public private"`
	DateTimeCreated time.Time `validate:"required"`
	UserID          string    `validate:"required,uuid4"`
}

// Validate for validating KeyMeta struct
func (k *KeyMeta) Validate() error {
	validate := validator.New()

	if err := validators.Register(validate); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(k)
	if err != nil {
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

	return nil
}

// PublicKey rebuilds the public key stored in k.
func (k *KeyMeta) PublicKey() (*textbook.PublicKey, error) {
	if k.Type != KeyTypePublic {
		return nil, fmt.Errorf("%w: key %s is %s", ErrKeyTypeMismatch, k.ID, k.Type)
	}

	e, n, err := k.parseMaterial()
	if err != nil {
		return nil, err
	}

	return textbook.NewPublicKey(e, n, k.KeySize), nil
}

// PrivateKey rebuilds the private key stored in k.
func (k *KeyMeta) PrivateKey() (*textbook.PrivateKey, error) {
	if k.Type != KeyTypePrivate {
		return nil, fmt.Errorf("%w: key %s is %s", ErrKeyTypeMismatch, k.ID, k.Type)
	}

	d, n, err := k.parseMaterial()
	if err != nil {
		return nil, err
	}

	return textbook.NewPrivateKey(d, n), nil
}

func (k *KeyMeta) parseMaterial() (exponent, modulus *big.Int, err error) {
	exponent, ok := new(big.Int).SetString(k.Exponent, 16)
	if !ok {
		return nil, nil, fmt.Errorf("key %s has a malformed exponent", k.ID)
	}
	modulus, ok = new(big.Int).SetString(k.Modulus, 16)
	if !ok {
		return nil, nil, fmt.Errorf("key %s has a malformed modulus", k.ID)
	}
	return exponent, modulus, nil
}
