package cryptography

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbook"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/primality"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger      logger.Logger
	random      io.Reader
	maxAttempts int
}

// NewRSAProcessor creates a textbook RSA processor drawing randomness from
// crypto/rand. maxAttempts caps every prime search; zero leaves them unbounded.
func NewRSAProcessor(logger logger.Logger, maxAttempts int) (cryptoalg.RSAProcessor, error) {
	if maxAttempts < 0 {
		return nil, fmt.Errorf("max attempts must not be negative, got %d", maxAttempts)
	}
	return &rsaProcessor{
		logger:      logger,
		random:      rand.Reader,
		maxAttempts: maxAttempts,
	}, nil
}

// GenerateKeys generates a textbook RSA key pair.
func (r *rsaProcessor) GenerateKeys(keySize int, exponent int64) (*textbook.PrivateKey, *textbook.PublicKey, error) {
	opts := &textbook.KeyGenOptions{
		KeySize:     keySize,
		Exponent:    exponent,
		MaxAttempts: r.maxAttempts,
	}

	publicKey, privateKey, err := textbook.GenerateKeys(r.random, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate textbook RSA keys: %w", err)
	}

	r.logger.Infof("Generated textbook RSA key pair with %d-bit modulus and e = %s", publicKey.N().BitLen(), publicKey.E())
	return privateKey, publicKey, nil
}

func (r *rsaProcessor) Encrypt(plaintext string, publicKey *textbook.PublicKey) (string, error) {
	if publicKey == nil {
		return "", errors.New("public key cannot be nil")
	}

	ciphertext, err := publicKey.Encrypt(plaintext)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Debug("Textbook RSA encryption succeeded")
	return ciphertext, nil
}

func (r *rsaProcessor) Decrypt(ciphertext string, privateKey *textbook.PrivateKey) (string, error) {
	if privateKey == nil {
		return "", errors.New("private key cannot be nil")
	}

	plaintext, err := privateKey.Decrypt(ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt data: %w", err)
	}

	r.logger.Debug("Textbook RSA decryption succeeded")
	return plaintext, nil
}

// SavePrivateKeyToFile writes the private key as a TEXTBOOK RSA PRIVATE KEY PEM block.
func (r *rsaProcessor) SavePrivateKeyToFile(privateKey *textbook.PrivateKey, filename string) error {
	if privateKey == nil {
		return errors.New("private key cannot be nil")
	}

	pemBytes, err := encodePrivateKey(privateKey)
	if err != nil {
		return err
	}

	if err := writeKeyFile(filename, pemBytes); err != nil {
		return fmt.Errorf("failed to write private key file: %w", err)
	}

	r.logger.Info("Saved textbook RSA private key ", filename)
	return nil
}

// SavePublicKeyToFile writes the public key as a TEXTBOOK RSA PUBLIC KEY PEM block.
func (r *rsaProcessor) SavePublicKeyToFile(publicKey *textbook.PublicKey, filename string) error {
	pemBytes, err := r.EncodePublicKeyPEM(publicKey)
	if err != nil {
		return err
	}

	if err := writeKeyFile(filename, pemBytes); err != nil {
		return fmt.Errorf("failed to write public key file: %w", err)
	}

	r.logger.Info("Saved textbook RSA public key ", filename)
	return nil
}

func (r *rsaProcessor) EncodePublicKeyPEM(publicKey *textbook.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}
	return encodePublicKey(publicKey)
}

func (r *rsaProcessor) ReadPrivateKey(privateKeyPath string) (*textbook.PrivateKey, error) {
	data, err := os.ReadFile(filepath.Clean(privateKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read private key file: %w", err)
	}

	privateKey, err := decodePrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key %s: %w", privateKeyPath, err)
	}
	return privateKey, nil
}

func (r *rsaProcessor) ReadPublicKey(publicKeyPath string) (*textbook.PublicKey, error) {
	data, err := os.ReadFile(filepath.Clean(publicKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read public key file: %w", err)
	}

	publicKey, err := decodePublicKey(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse public key %s: %w", publicKeyPath, err)
	}
	return publicKey, nil
}

// IsPrime runs trial division followed by 64 Miller-Rabin rounds.
func (r *rsaProcessor) IsPrime(candidate *big.Int) (bool, error) {
	if candidate == nil {
		return false, errors.New("candidate cannot be nil")
	}

	prime, err := primality.IsPrime(candidate, r.random)
	if err != nil {
		return false, fmt.Errorf("failed to test primality: %w", err)
	}
	return prime, nil
}

func (r *rsaProcessor) GeneratePrime(bits int, exponent int64) (*big.Int, error) {
	generator := &primality.Generator{Random: r.random, MaxAttempts: r.maxAttempts}

	var (
		prime *big.Int
		err   error
	)
	if exponent == 0 {
		prime, err = generator.BigPrime(bits)
	} else {
		prime, err = generator.RSAPrime(bits, big.NewInt(exponent))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate prime: %w", err)
	}

	r.logger.Debugf("Generated %d-bit prime", bits)
	return prime, nil
}

func writeKeyFile(filename string, data []byte) error {
	file, err := os.OpenFile(filepath.Clean(filename), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
