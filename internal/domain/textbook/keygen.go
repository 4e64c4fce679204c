package textbook

import (
	"fmt"
	"io"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/primality"
)

const (
	// DefaultKeySize is the key size in bits used when none is configured.
	DefaultKeySize = 1024

	// DefaultExponent is the public exponent used when none is configured.
	DefaultExponent = 3

	// MinKeySize is the smallest key size GenerateKeys accepts.
	MinKeySize = 16
)

// KeyGenOptions configures GenerateKeys. Zero fields fall back to the defaults.
type KeyGenOptions struct {
	KeySize  int
	Exponent int64

	// MaxAttempts caps every prime search; zero leaves them unbounded.
	MaxAttempts int
}

// DefaultKeyGenOptions returns a 1024-bit, e = 3, unbounded configuration.
func DefaultKeyGenOptions() *KeyGenOptions {
	return &KeyGenOptions{
		KeySize:  DefaultKeySize,
		Exponent: DefaultExponent,
	}
}

func resolveOptions(opts *KeyGenOptions) KeyGenOptions {
	resolved := *DefaultKeyGenOptions()
	if opts == nil {
		return resolved
	}
	if opts.KeySize != 0 {
		resolved.KeySize = opts.KeySize
	}
	if opts.Exponent != 0 {
		resolved.Exponent = opts.Exponent
	}
	resolved.MaxAttempts = opts.MaxAttempts
	return resolved
}

func validateOptions(opts KeyGenOptions, random io.Reader) error {
	if opts.KeySize < MinKeySize {
		return fmt.Errorf("%w: %d bits, need at least %d", ErrInvalidKeySize, opts.KeySize, MinKeySize)
	}
	if opts.MaxAttempts < 0 {
		return fmt.Errorf("max attempts must not be negative, got %d", opts.MaxAttempts)
	}
	if opts.Exponent < 3 || opts.Exponent%2 == 0 {
		return fmt.Errorf("%w: %d is not an odd number of at least 3", ErrInvalidExponent, opts.Exponent)
	}

	prime, err := primality.IsPrime(big.NewInt(opts.Exponent), random)
	if err != nil {
		return fmt.Errorf("failed to check public exponent: %w", err)
	}
	if !prime {
		return fmt.Errorf("%w: %d is not prime", ErrInvalidExponent, opts.Exponent)
	}
	return nil
}

// GenerateKeys generates a textbook RSA key pair. Two primes of KeySize/2 bits with
// p mod e != 1 are drawn from random, combined into n = p*q, and d is the inverse
// of e modulo (p-1)(q-1). The primes are discarded before returning.
//
// A nil opts selects DefaultKeyGenOptions.
func GenerateKeys(random io.Reader, opts *KeyGenOptions) (*PublicKey, *PrivateKey, error) {
	resolved := resolveOptions(opts)
	if err := validateOptions(resolved, random); err != nil {
		return nil, nil, err
	}

	e := big.NewInt(resolved.Exponent)
	half := resolved.KeySize / 2
	generator := &primality.Generator{Random: random, MaxAttempts: resolved.MaxAttempts}

	p, err := generator.RSAPrime(half, e)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate first prime: %w", err)
	}

	var q *big.Int
	for {
		q, err = generator.RSAPrime(half, e)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate second prime: %w", err)
		}
		// A square modulus has a different totient, so p and q must differ
		if q.Cmp(p) != 0 {
			break
		}
	}

	return assemble(p, q, e, resolved.KeySize)
}

// assemble derives the key pair from the primes p and q.
func assemble(p, q, e *big.Int, keySize int) (*PublicKey, *PrivateKey, error) {
	one := big.NewInt(1)

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one),
	)

	d, err := numtheory.InvMod(e, phi)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: e = %s: %w", ErrKeyInvariant, e, err)
	}

	return NewPublicKey(e, n, keySize), NewPrivateKey(d, n), nil
}
