package validators

import (
	"github.com/go-playground/validator/v10"
)

// Key size bounds accepted for stored and requested textbook RSA keys.
const (
	MinKeySize = 16
	MaxKeySize = 8192
)

// KeySizeValidation accepts key sizes in [MinKeySize, MaxKeySize] that are a
// whole number of bytes, so both prime halves and the message capacity are exact.
func KeySizeValidation(fl validator.FieldLevel) bool {
	keySize := fl.Field().Int()
	return keySize >= MinKeySize && keySize <= MaxKeySize && keySize%8 == 0
}

// Register installs every custom validation of this package on validate.
func Register(validate *validator.Validate) error {
	return validate.RegisterValidation("keySizeValidation", KeySizeValidation)
}
