package numtheory

// SmallPrimes returns every prime p with 2 <= p <= bound in increasing order,
// computed with the Sieve of Eratosthenes.
func SmallPrimes(bound int) []int {
	if bound < 2 {
		return []int{}
	}

	// primes[num] stays true as long as num is believed prime.
	// Evens besides 2 are filtered out up front.
	primes := make([]bool, bound+1)
	for num := range primes {
		primes[num] = num == 2 || num&1 != 0
	}

	for num := 3; num*num <= bound; num += 2 {
		if !primes[num] {
			continue
		}
		// Multiples below num*num were already eliminated by smaller factors
		for j := num * num; j <= bound; j += num {
			primes[j] = false
		}
	}

	result := make([]int, 0, bound/2)
	for i := 2; i <= bound; i++ {
		if primes[i] {
			result = append(result, i)
		}
	}
	return result
}
