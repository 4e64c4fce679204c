// Package textbook implements unpadded ("textbook") RSA: key-pair generation on top
// of the primality and numtheory packages, and deterministic encryption of short
// text messages.
//
// Textbook RSA is not semantically secure. Encrypting the same plaintext twice
// under one key yields the same ciphertext, and no padding protects short or
// structured messages. The package exists for teaching and testing, never for
// protecting real data.
package textbook
