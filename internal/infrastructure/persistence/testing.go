//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test constants
const (
	TestKeySize256  = 256
	TestKeySize1024 = 1024

	// 3233 = 61 * 53 with e = 17 and d = 2753
	TestModulus         = "ca1"
	TestPublicExponent  = "11"
	TestPrivateExponent = "ac1"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB      *gorm.DB
	KeyRepo keys.KeyRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	keyRepo, err := NewGormKeyRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create key repository")

	return &TestContext{
		DB:      db,
		KeyRepo: keyRepo,
	}
}

// CreateTestKey creates a public test key with default values
func CreateTestKey(t *testing.T, userID string) *keys.KeyMeta {
	t.Helper()

	return CreateTestKeyWithOptions(t, userID, keys.KeyTypePublic, TestKeySize256)
}

// CreateTestKeyWithOptions creates a test key with custom options
func CreateTestKeyWithOptions(t *testing.T, userID, keyType string, keySize int) *keys.KeyMeta {
	t.Helper()

	exponent := TestPublicExponent
	if keyType == keys.KeyTypePrivate {
		exponent = TestPrivateExponent
	}

	return &keys.KeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       uuid.NewString(),
		Algorithm:       keys.AlgorithmTextbookRSA,
		KeySize:         keySize,
		Exponent:        exponent,
		Modulus:         TestModulus,
		Type:            keyType,
		DateTimeCreated: time.Now(),
		UserID:          userID,
	}
}

// CreateTestKeyPair creates public and private test keys sharing a key pair ID
func CreateTestKeyPair(t *testing.T, userID string) (*keys.KeyMeta, *keys.KeyMeta) {
	t.Helper()

	publicKey := CreateTestKeyWithOptions(t, userID, keys.KeyTypePublic, TestKeySize256)
	privateKey := CreateTestKeyWithOptions(t, userID, keys.KeyTypePrivate, TestKeySize256)
	privateKey.KeyPairID = publicKey.KeyPairID

	return publicKey, privateKey
}
