package config

import (
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Key generation defaults
const (
	DefaultKeySize  = 1024
	DefaultExponent = 3
)

// KeyGenSettings holds the defaults applied when a caller does not pick a key size
// or public exponent. MaxAttempts caps every prime search; zero leaves them unbounded.
type KeyGenSettings struct {
	KeySize     int   `mapstructure:"key_size" validate:"keySizeValidation"`
	Exponent    int64 `mapstructure:"exponent" validate:"min=3"`
	MaxAttempts int   `mapstructure:"max_attempts" validate:"min=0"`
}

// DefaultKeyGenSettings returns 1024-bit keys with e = 3 and unbounded prime searches.
func DefaultKeyGenSettings() *KeyGenSettings {
	return &KeyGenSettings{
		KeySize:  DefaultKeySize,
		Exponent: DefaultExponent,
	}
}

// Validate checks that all fields in KeyGenSettings are valid
func (s *KeyGenSettings) Validate() error {
	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyGenSettings: %w", err)
	}

	if s.Exponent%2 == 0 {
		return fmt.Errorf("validation failed for KeyGenSettings: exponent %d must be odd", s.Exponent)
	}

	return nil
}
