// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store textbook RSA key metadata and key
// material in SQLite or PostgreSQL.
package persistence
