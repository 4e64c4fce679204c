package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/google/uuid"
)

// keyGenerationService implements the KeyGenerationService interface
type keyGenerationService struct {
	keyRepo      keys.KeyRepository
	rsaProcessor cryptoalg.RSAProcessor
	settings     *config.KeyGenSettings
	logger       logger.Logger
}

// NewKeyGenerationService creates a new keyGenerationService instance. settings
// supplies the key size and exponent used when a request leaves them unset.
func NewKeyGenerationService(
	keyRepo keys.KeyRepository,
	rsaProcessor cryptoalg.RSAProcessor,
	settings *config.KeyGenSettings,
	logger logger.Logger,
) (keys.KeyGenerationService, error) {
	if settings == nil {
		settings = config.DefaultKeyGenSettings()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &keyGenerationService{
		keyRepo:      keyRepo,
		rsaProcessor: rsaProcessor,
		settings:     settings,
		logger:       logger,
	}, nil
}

// Generate creates a key pair and stores both halves under one key pair ID.
// The primes are discarded once the pair is assembled.
func (s *keyGenerationService) Generate(ctx context.Context, userID string, keySize int, exponent int64) ([]*keys.KeyMeta, error) {
	if keySize == 0 {
		keySize = s.settings.KeySize
	}
	if exponent == 0 {
		exponent = s.settings.Exponent
	}

	privateKey, publicKey, err := s.rsaProcessor.GenerateKeys(keySize, exponent)
	if err != nil {
		return nil, err
	}

	keyPairID := uuid.NewString()
	created := time.Now().UTC()

	publicMeta := &keys.KeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       keyPairID,
		Algorithm:       keys.AlgorithmTextbookRSA,
		KeySize:         keySize,
		Exponent:        publicKey.E().Text(16),
		Modulus:         publicKey.N().Text(16),
		Type:            keys.KeyTypePublic,
		DateTimeCreated: created,
		UserID:          userID,
	}
	privateMeta := &keys.KeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       keyPairID,
		Algorithm:       keys.AlgorithmTextbookRSA,
		KeySize:         keySize,
		Exponent:        privateKey.D().Text(16),
		Modulus:         privateKey.N().Text(16),
		Type:            keys.KeyTypePrivate,
		DateTimeCreated: created,
		UserID:          userID,
	}

	if err := s.keyRepo.CreateKeyPair(ctx, publicMeta, privateMeta); err != nil {
		return nil, fmt.Errorf("failed to store key pair: %w", err)
	}

	s.logger.Infof("Generated %d-bit key pair %s for user %s", keySize, keyPairID, userID)
	return []*keys.KeyMeta{publicMeta, privateMeta}, nil
}

// keyMetadataService implements the KeyMetadataService interface
type keyMetadataService struct {
	keyRepo keys.KeyRepository
	logger  logger.Logger
}

// NewKeyMetadataService creates a new keyMetadataService instance
func NewKeyMetadataService(keyRepo keys.KeyRepository, logger logger.Logger) (keys.KeyMetadataService, error) {
	return &keyMetadataService{
		keyRepo: keyRepo,
		logger:  logger,
	}, nil
}

// List retrieves all key metadata based on a query.
func (s *keyMetadataService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	keyMetas, err := s.keyRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return keyMetas, nil
}

// GetByID retrieves the metadata of a key by its ID.
func (s *keyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	keyMeta, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return keyMeta, nil
}

// DeleteByID deletes a key by its ID. The other half of its pair is kept.
func (s *keyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	if err := s.keyRepo.DeleteByID(ctx, keyID); err != nil {
		return fmt.Errorf("failed to delete key from database: %w", err)
	}
	return nil
}

// keyDownloadService implements the KeyDownloadService interface
type keyDownloadService struct {
	keyRepo      keys.KeyRepository
	rsaProcessor cryptoalg.RSAProcessor
	logger       logger.Logger
}

// NewKeyDownloadService creates a new keyDownloadService instance
func NewKeyDownloadService(keyRepo keys.KeyRepository, rsaProcessor cryptoalg.RSAProcessor, logger logger.Logger) (keys.KeyDownloadService, error) {
	return &keyDownloadService{
		keyRepo:      keyRepo,
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// DownloadByID returns the PEM encoding of a public key.
func (s *keyDownloadService) DownloadByID(ctx context.Context, keyID string) ([]byte, error) {
	keyMeta, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	publicKey, err := keyMeta.PublicKey()
	if err != nil {
		return nil, fmt.Errorf("download refused: %w", err)
	}

	pemBytes, err := s.rsaProcessor.EncodePublicKeyPEM(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return pemBytes, nil
}

// keyCipherService implements the KeyCipherService interface
type keyCipherService struct {
	keyRepo      keys.KeyRepository
	rsaProcessor cryptoalg.RSAProcessor
	logger       logger.Logger
}

// NewKeyCipherService creates a new keyCipherService instance
func NewKeyCipherService(keyRepo keys.KeyRepository, rsaProcessor cryptoalg.RSAProcessor, logger logger.Logger) (keys.KeyCipherService, error) {
	return &keyCipherService{
		keyRepo:      keyRepo,
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

func (s *keyCipherService) Encrypt(ctx context.Context, keyID, plaintext string) (string, error) {
	keyMeta, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}

	publicKey, err := keyMeta.PublicKey()
	if err != nil {
		return "", err
	}

	return s.rsaProcessor.Encrypt(plaintext, publicKey)
}

func (s *keyCipherService) Decrypt(ctx context.Context, keyID, ciphertext string) (string, error) {
	keyMeta, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}

	privateKey, err := keyMeta.PrivateKey()
	if err != nil {
		return "", err
	}

	return s.rsaProcessor.Decrypt(ciphertext, privateKey)
}
