package primality

import (
	"io"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
)

// SieveBound is the bound of the trial-division filter applied before Miller-Rabin.
const SieveBound = 1000

var smallPrimes = func() []*big.Int {
	primes := numtheory.SmallPrimes(SieveBound)
	result := make([]*big.Int, len(primes))
	for i, p := range primes {
		result[i] = big.NewInt(int64(p))
	}
	return result
}()

// IsPrime reports whether candidate is prime. Candidates that are, or are divisible
// by, a prime below SieveBound are decided exactly; everything else goes through
// RabinMiller.
func IsPrime(candidate *big.Int, random io.Reader) (bool, error) {
	remainder := new(big.Int)
	for _, p := range smallPrimes {
		if candidate.Cmp(p) == 0 {
			return true, nil
		}
		if remainder.Mod(candidate, p).Sign() == 0 {
			return false, nil
		}
	}

	return RabinMiller(candidate, random)
}
