package primality

import (
	"fmt"
	"io"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
)

// Rounds is the number of Miller-Rabin witnesses drawn per candidate.
// Each round lets a composite through with probability at most 1/4.
const Rounds = 64

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// decompose writes n as 2^s * d with d odd. n must be positive.
func decompose(n *big.Int) (int, *big.Int) {
	d := new(big.Int).Set(n)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}
	return s, d
}

// RabinMiller reports whether candidate is probably prime after Rounds rounds of
// Miller-Rabin with witnesses drawn uniformly from [2, candidate).
// The only error it returns is a failure of the random source.
func RabinMiller(candidate *big.Int, random io.Reader) (bool, error) {
	// Even numbers and anything below 2 never reach the general algorithm
	if candidate.Cmp(two) == 0 {
		return true, nil
	}
	if candidate.Cmp(two) < 0 || candidate.Bit(0) == 0 {
		return false, nil
	}

	nMinusOne := new(big.Int).Sub(candidate, one)
	s, d := decompose(nMinusOne)
	witnessSpan := new(big.Int).Sub(candidate, two)

	// k steps by 2 so that the false-positive bound reads as 2^-k
	for k := 0; k < 2*Rounds; k += 2 {
		witness, err := randomBelow(random, witnessSpan)
		if err != nil {
			return false, fmt.Errorf("failed to draw Miller-Rabin witness: %w", err)
		}
		witness.Add(witness, two)

		v := numtheory.ModExp(witness, d, candidate)
		if v.Cmp(one) == 0 || v.Cmp(nMinusOne) == 0 {
			continue
		}

		composite := true
		for i := 1; i < s; i++ {
			v = numtheory.ModExp(v, two, candidate)
			if v.Cmp(nMinusOne) == 0 {
				composite = false
				break
			}
			if v.Cmp(one) == 0 {
				break
			}
		}
		if composite {
			return false, nil
		}
	}

	return true, nil
}
