//go:build unit
// +build unit

package numtheory

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendedGCD(t *testing.T) {
	tests := []struct {
		name        string
		a, b        int64
		expectedGCD int64
	}{
		{"coprime", 3, 7, 1},
		{"common factor", 12, 18, 6},
		{"zero left", 0, 9, 9},
		{"zero right", 9, 0, 9},
		{"equal", 21, 21, 21},
		{"larger first", 240, 46, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := big.NewInt(tt.a), big.NewInt(tt.b)
			gcd, u, v := ExtendedGCD(a, b)

			assert.Equal(t, tt.expectedGCD, gcd.Int64())

			bezout := new(big.Int).Add(new(big.Int).Mul(u, a), new(big.Int).Mul(v, b))
			assert.Equal(t, 0, bezout.Cmp(gcd), "u*a + v*b = %s, want %s", bezout, gcd)
		})
	}
}

func TestExtendedGCD_BezoutIdentityOnRandomPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	limit := new(big.Int).Lsh(big.NewInt(1), 512)

	for i := 0; i < 100; i++ {
		a := new(big.Int).Rand(rng, limit)
		b := new(big.Int).Rand(rng, limit)

		gcd, u, v := ExtendedGCD(a, b)

		expected := new(big.Int).GCD(nil, nil, a, b)
		require.Equal(t, 0, expected.Cmp(gcd))

		bezout := new(big.Int).Add(new(big.Int).Mul(u, a), new(big.Int).Mul(v, b))
		require.Equal(t, 0, bezout.Cmp(gcd))
	}
}

func TestInvMod(t *testing.T) {
	t.Run("three mod seven", func(t *testing.T) {
		inverse, err := InvMod(big.NewInt(3), big.NewInt(7))
		require.NoError(t, err)
		assert.Equal(t, int64(5), inverse.Int64())
	})

	t.Run("seven mod forty-one", func(t *testing.T) {
		inverse, err := InvMod(big.NewInt(7), big.NewInt(41))
		require.NoError(t, err)
		assert.Equal(t, int64(6), inverse.Int64())
	})

	t.Run("not coprime", func(t *testing.T) {
		inverse, err := InvMod(big.NewInt(3), big.NewInt(6))
		assert.ErrorIs(t, err, ErrNoInverse)
		assert.Nil(t, inverse)
	})

	t.Run("zero modulus", func(t *testing.T) {
		_, err := InvMod(big.NewInt(3), big.NewInt(0))
		assert.ErrorIs(t, err, ErrNoInverse)
	})

	t.Run("result is reduced", func(t *testing.T) {
		modulus := big.NewInt(97)
		for x := int64(1); x < 97; x++ {
			inverse, err := InvMod(big.NewInt(x), modulus)
			require.NoError(t, err)
			assert.True(t, inverse.Sign() >= 0 && inverse.Cmp(modulus) < 0)

			product := new(big.Int).Mul(inverse, big.NewInt(x))
			assert.Equal(t, int64(1), product.Mod(product, modulus).Int64())
		}
	})
}
