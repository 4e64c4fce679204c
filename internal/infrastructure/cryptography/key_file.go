package cryptography

import (
	"encoding/asn1"
	"encoding/pem"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbook"
)

// PEM block types of textbook RSA key files.
const (
	PublicKeyBlockType  = "TEXTBOOK RSA PUBLIC KEY"
	PrivateKeyBlockType = "TEXTBOOK RSA PRIVATE KEY"
)

type publicKeyASN1 struct {
	N       *big.Int
	E       *big.Int
	KeySize int
}

type privateKeyASN1 struct {
	N *big.Int
	D *big.Int
}

func encodePublicKey(publicKey *textbook.PublicKey) ([]byte, error) {
	der, err := asn1.Marshal(publicKeyASN1{N: publicKey.N(), E: publicKey.E(), KeySize: publicKey.KeySize()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: PublicKeyBlockType, Bytes: der}), nil
}

func encodePrivateKey(privateKey *textbook.PrivateKey) ([]byte, error) {
	der, err := asn1.Marshal(privateKeyASN1{N: privateKey.N(), D: privateKey.D()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: PrivateKeyBlockType, Bytes: der}), nil
}

func decodeBlock(data []byte, blockType string) ([]byte, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("failed to parse PEM block containing the key")
	}
	if block.Type != blockType {
		return nil, fmt.Errorf("unexpected PEM block type %q, want %q", block.Type, blockType)
	}
	return block.Bytes, nil
}

func decodePublicKey(data []byte) (*textbook.PublicKey, error) {
	der, err := decodeBlock(data, PublicKeyBlockType)
	if err != nil {
		return nil, err
	}

	var key publicKeyASN1
	rest, err := asn1.Unmarshal(der, &key)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal public key: %w", err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("trailing data after public key")
	}
	if key.N.Sign() <= 0 || key.E.Sign() <= 0 {
		return nil, fmt.Errorf("public key values must be positive")
	}

	return textbook.NewPublicKey(key.E, key.N, key.KeySize), nil
}

func decodePrivateKey(data []byte) (*textbook.PrivateKey, error) {
	der, err := decodeBlock(data, PrivateKeyBlockType)
	if err != nil {
		return nil, err
	}

	var key privateKeyASN1
	rest, err := asn1.Unmarshal(der, &key)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal private key: %w", err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("trailing data after private key")
	}
	if key.N.Sign() <= 0 || key.D.Sign() <= 0 {
		return nil, fmt.Errorf("private key values must be positive")
	}

	return textbook.NewPrivateKey(key.D, key.N), nil
}
