package textbook

import "math/big"

// PublicKey is the public half of a textbook RSA key pair.
// It is immutable: accessors return copies.
type PublicKey struct {
	e       *big.Int
	n       *big.Int
	keySize int
}

// NewPublicKey builds a public key from exponent e, modulus n and the key size in
// bits requested at generation time. The arguments are copied.
func NewPublicKey(e, n *big.Int, keySize int) *PublicKey {
	return &PublicKey{
		e:       new(big.Int).Set(e),
		n:       new(big.Int).Set(n),
		keySize: keySize,
	}
}

// E returns the public exponent.
func (k *PublicKey) E() *big.Int { return new(big.Int).Set(k.e) }

// N returns the modulus.
func (k *PublicKey) N() *big.Int { return new(big.Int).Set(k.n) }

// KeySize returns the key size in bits.
func (k *PublicKey) KeySize() int { return k.keySize }

// Capacity returns the exclusive upper bound on the UTF-8 byte length Encrypt accepts.
func (k *PublicKey) Capacity() int { return k.keySize / 8 }

// PrivateKey is the private half of a textbook RSA key pair.
// It holds no reference to the primes the modulus was built from.
type PrivateKey struct {
	d *big.Int
	n *big.Int
}

// NewPrivateKey builds a private key from exponent d and modulus n. The arguments are copied.
func NewPrivateKey(d, n *big.Int) *PrivateKey {
	return &PrivateKey{
		d: new(big.Int).Set(d),
		n: new(big.Int).Set(n),
	}
}

// D returns the private exponent.
func (k *PrivateKey) D() *big.Int { return new(big.Int).Set(k.d) }

// N returns the modulus.
func (k *PrivateKey) N() *big.Int { return new(big.Int).Set(k.n) }
