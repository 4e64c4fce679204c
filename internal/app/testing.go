//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/persistence"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	KeyGenerationService keys.KeyGenerationService
	KeyMetadataService   keys.KeyMetadataService
	KeyDownloadService   keys.KeyDownloadService
	KeyCipherService     keys.KeyCipherService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	rsaProcessor, err := cryptography.NewRSAProcessor(logger, 0)
	require.NoError(t, err, "Failed to create RSA processor")

	settings := &config.KeyGenSettings{KeySize: 256, Exponent: 3}
	keyGenerationService, err := NewKeyGenerationService(dbContext.KeyRepo, rsaProcessor, settings, logger)
	require.NoError(t, err, "Failed to create KeyGenerationService")

	keyMetadataService, err := NewKeyMetadataService(dbContext.KeyRepo, logger)
	require.NoError(t, err, "Failed to create KeyMetadataService")

	keyDownloadService, err := NewKeyDownloadService(dbContext.KeyRepo, rsaProcessor, logger)
	require.NoError(t, err, "Failed to create KeyDownloadService")

	keyCipherService, err := NewKeyCipherService(dbContext.KeyRepo, rsaProcessor, logger)
	require.NoError(t, err, "Failed to create KeyCipherService")

	return &TestServices{
		KeyGenerationService: keyGenerationService,
		KeyMetadataService:   keyMetadataService,
		KeyDownloadService:   keyDownloadService,
		KeyCipherService:     keyCipherService,
		DBContext:            dbContext,
	}
}
