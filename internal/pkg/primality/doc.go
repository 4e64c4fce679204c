// Package primality decides primality of large integers and samples random primes.
//
// Primality is decided by trial division against the primes below 1000 followed by
// 64 rounds of Miller-Rabin, bounding the false-positive rate by 2^-128. Random
// primes are found by rejection sampling over odd candidates of a fixed bit length.
//
// Every sampling operation draws from an explicit io.Reader. Pass crypto/rand.Reader
// in production and a seeded reader in tests. The prime searches are unbounded by
// default: a degenerate reader (for example one that always returns zero bytes) can
// make them loop forever, so callers that cannot accept that risk set
// Generator.MaxAttempts.
package primality
