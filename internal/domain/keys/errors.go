package keys

import "errors"

var (
	// ErrKeyNotFound is returned when no key metadata matches an ID.
	ErrKeyNotFound = errors.New("key not found")

	// ErrKeyTypeMismatch is returned when an operation needs the other half of a key pair,
	// e.g. encrypting with a private key or downloading one.
	ErrKeyTypeMismatch = errors.New("key type mismatch")
)
