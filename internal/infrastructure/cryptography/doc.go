// Package cryptography implements the algorithm contracts of the cryptoalg package:
// textbook RSA key generation, encryption, decryption and PEM key files.
package cryptography
