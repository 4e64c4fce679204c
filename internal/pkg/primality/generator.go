package primality

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	// ErrInvalidExponent is returned when RSAPrime is asked to avoid p mod e == 1 for e < 2.
	ErrInvalidExponent = errors.New("exponent must be at least 2")

	// ErrAttemptsExhausted is returned when a capped Generator runs out of attempts.
	ErrAttemptsExhausted = errors.New("prime search exhausted its attempts")
)

// Generator samples random primes from Random.
//
// MaxAttempts caps the number of candidates BigPrime tests and the number of primes
// RSAPrime draws. Zero leaves both searches unbounded.
type Generator struct {
	Random      io.Reader
	MaxAttempts int
}

// NewGenerator returns an unbounded Generator drawing from random.
func NewGenerator(random io.Reader) *Generator {
	return &Generator{Random: random}
}

func (g *Generator) exhausted(attempts int) bool {
	return g.MaxAttempts > 0 && attempts >= g.MaxAttempts
}

// BigPrime returns a random prime of bits bits. It samples a bits-long integer,
// forces it odd and then walks upward in steps of two until IsPrime accepts,
// resampling whenever the walk leaves the bit length.
func (g *Generator) BigPrime(bits int) (*big.Int, error) {
	candidate, err := randomBits(g.Random, bits)
	if err != nil {
		return nil, fmt.Errorf("failed to sample prime candidate: %w", err)
	}
	if candidate.Bit(0) == 0 {
		candidate.Add(candidate, one)
	}

	for attempts := 0; ; attempts++ {
		if g.exhausted(attempts) {
			return nil, fmt.Errorf("no %d-bit prime after %d candidates: %w", bits, attempts, ErrAttemptsExhausted)
		}

		prime, err := IsPrime(candidate, g.Random)
		if err != nil {
			return nil, err
		}
		if prime {
			return candidate, nil
		}
		candidate.Add(candidate, two)

		// Walking past 2^bits would change the bit length, so start over
		if candidate.BitLen() > bits {
			if candidate, err = randomBits(g.Random, bits); err != nil {
				return nil, fmt.Errorf("failed to sample prime candidate: %w", err)
			}
			candidate.SetBit(candidate, 0, 1)
		}
	}
}

// RSAPrime returns a random prime p of bits bits with p mod e != 1, so that e has a
// chance of being coprime to (p-1)(q-1) once two such primes are combined.
func (g *Generator) RSAPrime(bits int, e *big.Int) (*big.Int, error) {
	if e.Cmp(two) < 0 {
		return nil, ErrInvalidExponent
	}

	residue := new(big.Int)
	for attempts := 0; ; attempts++ {
		if g.exhausted(attempts) {
			return nil, fmt.Errorf("no %d-bit prime with p mod %s != 1 after %d draws: %w", bits, e, attempts, ErrAttemptsExhausted)
		}

		p, err := g.BigPrime(bits)
		if err != nil {
			return nil, err
		}
		if residue.Mod(p, e).Cmp(one) != 0 {
			return p, nil
		}
	}
}

// BigPrime returns a random prime of bits bits using an unbounded Generator.
func BigPrime(random io.Reader, bits int) (*big.Int, error) {
	return NewGenerator(random).BigPrime(bits)
}

// RSAPrime returns a random prime p of bits bits with p mod e != 1 using an
// unbounded Generator.
func RSAPrime(random io.Reader, bits int, e *big.Int) (*big.Int, error) {
	return NewGenerator(random).RSAPrime(bits, e)
}
