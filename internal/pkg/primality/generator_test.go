//go:build unit
// +build unit

package primality

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"
	"testing/iotest"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroReader yields an endless stream of zero bytes.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestBigPrime(t *testing.T) {
	random := testutil.SeededReader(5)

	for _, bits := range []int{2, 8, 16, 64, 128, 256} {
		p, err := BigPrime(random, bits)
		require.NoError(t, err)

		assert.Equal(t, uint(1), p.Bit(0), "%d-bit prime is even", bits)
		assert.GreaterOrEqual(t, p.BitLen(), bits-1)
		assert.True(t, p.ProbablyPrime(20), "%s is not prime", p)
	}
}

func TestBigPrime_1024Bits(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 1024-bit prime search in short mode")
	}

	size := 1024
	p, err := BigPrime(rand.Reader, size)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, p.BitLen(), size-1)
	assert.Equal(t, uint(1), p.Bit(0))

	prime, err := IsPrime(p, rand.Reader)
	require.NoError(t, err)
	assert.True(t, prime)
}

func TestBigPrime_SeededIsReproducible(t *testing.T) {
	first, err := BigPrime(testutil.SeededReader(99), 128)
	require.NoError(t, err)

	second, err := BigPrime(testutil.SeededReader(99), 128)
	require.NoError(t, err)

	assert.Equal(t, 0, first.Cmp(second))
}

func TestBigPrime_InvalidBitLength(t *testing.T) {
	_, err := BigPrime(rand.Reader, 1)
	assert.ErrorIs(t, err, ErrInvalidBitLength)
}

func TestBigPrime_RandomSourceFailure(t *testing.T) {
	boom := errors.New("entropy unavailable")
	_, err := BigPrime(iotest.ErrReader(boom), 64)
	assert.ErrorIs(t, err, boom)
}

func TestGenerator_MaxAttempts(t *testing.T) {
	t.Run("BigPrimeExhausted", func(t *testing.T) {
		// 2^63 + 1 is divisible by 3, so the first candidate is rejected
		generator := &Generator{Random: zeroReader{}, MaxAttempts: 1}
		_, err := generator.BigPrime(64)
		assert.ErrorIs(t, err, ErrAttemptsExhausted)
	})

	t.Run("BigPrimeWithinCap", func(t *testing.T) {
		// 129 = 3 * 43 is rejected, 131 is accepted
		generator := &Generator{Random: zeroReader{}, MaxAttempts: 2}
		p, err := generator.BigPrime(8)
		require.NoError(t, err)
		assert.Equal(t, int64(131), p.Int64())
	})

	t.Run("RSAPrimeExhausted", func(t *testing.T) {
		// Every draw is 131 and 131 mod 5 == 1
		generator := &Generator{Random: zeroReader{}, MaxAttempts: 3}
		_, err := generator.RSAPrime(8, big.NewInt(5))
		assert.ErrorIs(t, err, ErrAttemptsExhausted)
	})

	t.Run("RSAPrimeAccepted", func(t *testing.T) {
		generator := &Generator{Random: zeroReader{}, MaxAttempts: 3}
		p, err := generator.RSAPrime(8, big.NewInt(3))
		require.NoError(t, err)
		assert.Equal(t, int64(131), p.Int64())
	})
}

func TestRSAPrime(t *testing.T) {
	random := testutil.SeededReader(21)
	one := big.NewInt(1)

	for _, e := range []int64{3, 5} {
		exponent := big.NewInt(e)
		for i := 0; i < 10; i++ {
			p, err := RSAPrime(random, 128, exponent)
			require.NoError(t, err)

			residue := new(big.Int).Mod(p, exponent)
			assert.NotEqual(t, 0, residue.Cmp(one), "p = %s satisfies p mod %d == 1", p, e)
			assert.True(t, p.ProbablyPrime(20))
		}
	}
}

func TestRSAPrime_1024Bits(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 1024-bit prime search in short mode")
	}

	one := big.NewInt(1)
	for _, e := range []int64{3, 5} {
		exponent := big.NewInt(e)
		p, err := RSAPrime(rand.Reader, 1024, exponent)
		require.NoError(t, err)
		assert.NotEqual(t, 0, new(big.Int).Mod(p, exponent).Cmp(one))
	}
}

func TestRSAPrime_InvalidExponent(t *testing.T) {
	_, err := RSAPrime(rand.Reader, 64, big.NewInt(1))
	assert.ErrorIs(t, err, ErrInvalidExponent)
}
