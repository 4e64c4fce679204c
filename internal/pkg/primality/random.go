package primality

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrInvalidBitLength is returned when a prime of fewer than two bits is requested.
var ErrInvalidBitLength = errors.New("bit length must be at least 2")

// randomBelow returns a uniformly distributed integer in [0, max) by rejection
// sampling whole bytes from random. max must be positive.
func randomBelow(random io.Reader, max *big.Int) (*big.Int, error) {
	limit := new(big.Int).Sub(max, one)
	bitLen := limit.BitLen()
	if bitLen == 0 {
		return new(big.Int), nil
	}

	buf := make([]byte, (bitLen+7)/8)
	excess := uint(len(buf)*8 - bitLen)
	n := new(big.Int)
	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, fmt.Errorf("failed to read random bytes: %w", err)
		}
		buf[0] &= byte(0xff >> excess)

		n.SetBytes(buf)
		if n.Cmp(max) < 0 {
			return n, nil
		}
	}
}

// randomBits returns a random integer of exactly bits bits: the top bit is always set.
func randomBits(random io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, ErrInvalidBitLength
	}

	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(random, buf); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}

	excess := uint(len(buf)*8 - bits)
	buf[0] &= byte(0xff >> excess)
	buf[0] |= byte(0x80 >> excess)

	return new(big.Int).SetBytes(buf), nil
}
