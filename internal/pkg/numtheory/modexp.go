package numtheory

import "math/big"

var one = big.NewInt(1)

// ModExp computes base^exponent mod modulus by right-to-left square-and-multiply.
// The exponent must be non-negative and the modulus positive; other inputs panic.
func ModExp(base, exponent, modulus *big.Int) *big.Int {
	if modulus.Sign() <= 0 {
		panic("numtheory: modulus must be positive")
	}
	if exponent.Sign() < 0 {
		panic("numtheory: exponent must be non-negative")
	}

	result := new(big.Int).Mod(one, modulus)
	baseAcc := new(big.Int).Mod(base, modulus)
	exponentAcc := new(big.Int).Set(exponent)

	for exponentAcc.Sign() > 0 {
		// Accumulate the current base if the current exponent bit is 1
		if exponentAcc.Bit(0) == 1 {
			result.Mul(result, baseAcc)
			result.Mod(result, modulus)
		}

		baseAcc.Mul(baseAcc, baseAcc)
		baseAcc.Mod(baseAcc, modulus)

		exponentAcc.Rsh(exponentAcc, 1)
	}

	return result
}
