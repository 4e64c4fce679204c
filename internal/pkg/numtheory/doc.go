// Package numtheory provides the number-theoretic primitives behind textbook RSA:
// a small-prime sieve, square-and-multiply modular exponentiation and the
// extended Euclidean algorithm used for modular inversion.
//
// All functions treat their *big.Int arguments as read-only and return freshly
// allocated values.
package numtheory
