package v1

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbook"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/primality"
)

// statusFor maps domain errors onto HTTP status codes. ErrKeyInvariant and
// anything unrecognised are server errors.
func statusFor(err error) int {
	switch {
	case errors.Is(err, keys.ErrKeyNotFound):
		return http.StatusNotFound
	case errors.Is(err, textbook.ErrMessageTooLong),
		errors.Is(err, textbook.ErrDecoding),
		errors.Is(err, textbook.ErrInvalidKeySize),
		errors.Is(err, textbook.ErrInvalidExponent),
		errors.Is(err, keys.ErrKeyTypeMismatch),
		errors.Is(err, primality.ErrInvalidBitLength),
		errors.Is(err, primality.ErrInvalidExponent):
		return http.StatusBadRequest
	case errors.Is(err, primality.ErrAttemptsExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
