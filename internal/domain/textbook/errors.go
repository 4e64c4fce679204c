package textbook

import "errors"

var (
	// ErrMessageTooLong is returned when a plaintext is at least KeySize/8 bytes long in UTF-8.
	ErrMessageTooLong = errors.New("message too long for key")

	// ErrDecoding is returned when a ciphertext is not hexadecimal or does not decrypt to UTF-8 text.
	ErrDecoding = errors.New("failed to decode message")

	// ErrKeyInvariant is returned when the public exponent has no inverse modulo
	// (p-1)(q-1). Prime selection rules this out, so seeing it means a bug.
	ErrKeyInvariant = errors.New("key generation invariant violated")

	// ErrInvalidKeySize is returned for key sizes below MinKeySize.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidExponent is returned for public exponents that are not odd primes.
	ErrInvalidExponent = errors.New("invalid public exponent")
)
