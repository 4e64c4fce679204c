package cryptoalg

import (
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbook"
)

// RSAProcessor handles textbook (unpadded) RSA operations.
// Ciphertexts are lowercase hexadecimal strings and plaintexts are UTF-8 text.
type RSAProcessor interface {
	// GenerateKeys generates a key pair whose modulus has roughly keySize bits
	// and whose public exponent is exponent. Zero values select the defaults.
	GenerateKeys(keySize int, exponent int64) (*textbook.PrivateKey, *textbook.PublicKey, error)

	// Encrypt encrypts plaintext with the public key and returns the hex ciphertext.
	Encrypt(plaintext string, publicKey *textbook.PublicKey) (string, error)

	// Decrypt decrypts a hex ciphertext with the private key.
	Decrypt(ciphertext string, privateKey *textbook.PrivateKey) (string, error)

	// SavePrivateKeyToFile saves the private key to a PEM-encoded file.
	SavePrivateKeyToFile(privateKey *textbook.PrivateKey, filename string) error

	// SavePublicKeyToFile saves the public key to a PEM-encoded file.
	SavePublicKeyToFile(publicKey *textbook.PublicKey, filename string) error

	// ReadPrivateKey reads a private key written by SavePrivateKeyToFile.
	ReadPrivateKey(privateKeyPath string) (*textbook.PrivateKey, error)

	// ReadPublicKey reads a public key written by SavePublicKeyToFile.
	ReadPublicKey(publicKeyPath string) (*textbook.PublicKey, error)

	// EncodePublicKeyPEM returns the PEM encoding used for public key files.
	EncodePublicKeyPEM(publicKey *textbook.PublicKey) ([]byte, error)

	// IsPrime reports whether candidate is probably prime.
	IsPrime(candidate *big.Int) (bool, error)

	// GeneratePrime returns a probable prime with exactly bits bits. When
	// exponent is non-zero the prime p also satisfies p mod exponent != 1.
	GeneratePrime(bits int, exponent int64) (*big.Int, error)
}
