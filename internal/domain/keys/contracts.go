package keys

import (
	"context"
)

// KeyGenerationService generates textbook RSA key pairs and stores both halves.
type KeyGenerationService interface {
	// Generate creates a key pair for userID. Zero keySize or exponent select the
	// configured defaults. It returns the public and the private key metadata, in that order.
	Generate(ctx context.Context, userID string, keySize int, exponent int64) ([]*KeyMeta, error)
}

// KeyMetadataService defines methods for managing key metadata and deleting keys.
type KeyMetadataService interface {
	// List retrieves all key metadata considering a query filter when set.
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)

	// GetByID retrieves the metadata of a key by its unique ID.
	GetByID(ctx context.Context, keyID string) (*KeyMeta, error)

	// DeleteByID deletes a key by ID.
	DeleteByID(ctx context.Context, keyID string) error
}

// KeyDownloadService defines methods for downloading keys.
type KeyDownloadService interface {
	// DownloadByID returns the PEM encoding of a public key. Private keys are never handed out.
	DownloadByID(ctx context.Context, keyID string) ([]byte, error)
}

// KeyCipherService encrypts and decrypts messages with stored keys.
type KeyCipherService interface {
	// Encrypt encrypts plaintext with the public key keyID and returns hex ciphertext.
	Encrypt(ctx context.Context, keyID, plaintext string) (string, error)

	// Decrypt decrypts hex ciphertext with the private key keyID.
	Decrypt(ctx context.Context, keyID, ciphertext string) (string, error)
}

// KeyRepository defines the persistence operations on key metadata.
type KeyRepository interface {
	Create(ctx context.Context, key *KeyMeta) error
	// CreateKeyPair stores both halves of a key pair atomically.
	CreateKeyPair(ctx context.Context, publicKey, privateKey *KeyMeta) error
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)
	GetByID(ctx context.Context, keyID string) (*KeyMeta, error)
	DeleteByID(ctx context.Context, keyID string) error
}
