package textbook

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"
)

// Encrypt encrypts plaintext with raw modular exponentiation and returns the
// ciphertext as lowercase hexadecimal without leading zeros.
//
// The plaintext must be shorter than KeySize/8 bytes in its UTF-8 encoding, which
// keeps the message integer below 2^(KeySize-8) and therefore below the modulus.
// Short messages with multi-byte characters may be rejected.
func (k *PublicKey) Encrypt(plaintext string) (string, error) {
	if length := len(plaintext); length >= k.Capacity() {
		return "", fmt.Errorf("%w: %d bytes, a %d-bit key accepts fewer than %d",
			ErrMessageTooLong, length, k.keySize, k.Capacity())
	}

	// Same integer as parsing the hex encoding of the bytes in base 16
	m := new(big.Int).SetBytes([]byte(plaintext))
	c := numtheory.ModExp(m, k.e, k.n)

	return c.Text(16), nil
}

// Decrypt decrypts a hexadecimal ciphertext produced by Encrypt.
// Leading NUL bytes of the original plaintext do not survive the round trip.
func (k *PrivateKey) Decrypt(ciphertext string) (string, error) {
	c, err := parseHex(ciphertext)
	if err != nil {
		return "", err
	}

	m := numtheory.ModExp(c, k.d, k.n)

	plaintext := m.Bytes()
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", ErrDecoding)
	}

	return string(plaintext), nil
}

// parseHex parses an unsigned hexadecimal integer of any length.
func parseHex(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty ciphertext", ErrDecoding)
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecoding, err)
	}

	return new(big.Int).SetBytes(raw), nil
}
