// Package cryptoalg defines the algorithm-level contracts implemented by the
// infrastructure layer: key generation, encryption, decryption, key file
// persistence and the prime oracle backing textbook RSA.
package cryptoalg
