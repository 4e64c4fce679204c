package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// KeyQuery filters, sorts and pages key metadata listings. Zero fields are ignored.
type KeyQuery struct {
	Algorithm       string    `validate:"omitempty,oneof=TRSA"`
	Type            string    `validate:"omitempty,oneof=public private"`
	KeyPairID       string    `validate:"omitempty,uuid4"`
	DateTimeCreated time.Time `validate:"omitempty"`
	Limit           int       `validate:"omitempty,min=1"`
	Offset          int       `validate:"omitempty,min=0"`
	SortBy          string    `validate:"omitempty,oneof=id key_size type date_time_created"`
	SortOrder       string    `validate:"omitempty,oneof=asc desc"`
}

// NewKeyQuery returns an empty query matching every key.
func NewKeyQuery() *KeyQuery {
	return &KeyQuery{}
}

// Validate for validating KeyQuery struct
func (q *KeyQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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
