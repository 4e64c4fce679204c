package numtheory

import (
	"errors"
	"math/big"
)

// ErrNoInverse is returned when x has no multiplicative inverse modulo m,
// i.e. gcd(x, m) != 1.
var ErrNoInverse = errors.New("no modular inverse exists")

// ExtendedGCD runs the iterative extended Euclidean algorithm over signed integers.
// It returns gcd together with Bézout coefficients u and v such that u*a + v*b = gcd.
func ExtendedGCD(a, b *big.Int) (gcd, u, v *big.Int) {
	uA, vA := big.NewInt(1), big.NewInt(0)
	uB, vB := big.NewInt(0), big.NewInt(1)
	aa, bb := new(big.Int).Set(a), new(big.Int).Set(b)

	q, r, t := new(big.Int), new(big.Int), new(big.Int)
	for aa.Sign() != 0 {
		q.QuoRem(bb, aa, r)
		bb, aa = aa, new(big.Int).Set(r)

		t.Mul(q, uA)
		uB, uA = uA, new(big.Int).Sub(uB, t)

		t.Mul(q, vA)
		vB, vA = vA, new(big.Int).Sub(vB, t)
	}

	return bb, uB, vB
}

// InvMod returns the inverse of x modulo modulus, reduced into [0, modulus).
// It fails with ErrNoInverse when x and modulus are not coprime.
func InvMod(x, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, ErrNoInverse
	}

	gcd, inverse, _ := ExtendedGCD(x, modulus)
	if gcd.Cmp(one) != 0 {
		return nil, ErrNoInverse
	}

	return inverse.Mod(inverse, modulus), nil
}
