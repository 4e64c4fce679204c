package models

import (
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
)

// KeyModel is the GORM database model for textbook RSA keys
type KeyModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	KeyPairID       string    `gorm:"not null;index;type:uuid"`
	Algorithm       string    `gorm:"type:varchar(20)"`
	KeySize         int       `gorm:"type:integer"`
	Exponent        string    `gorm:"not null;type:text"`
	Modulus         string    `gorm:"not null;type:text"`
	Type            string    `gorm:"type:varchar(20)"`
	DateTimeCreated time.Time `gorm:"not null"`
	UserID          string    `gorm:"not null;index;type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (KeyModel) TableName() string {
	return "textbook_rsa_keys"
}

// ToDomain converts GORM model to domain entity
func (m *KeyModel) ToDomain() *keys.KeyMeta {
	return &keys.KeyMeta{
		ID:              m.ID,
		KeyPairID:       m.KeyPairID,
		Algorithm:       m.Algorithm,
		KeySize:         m.KeySize,
		Exponent:        m.Exponent,
		Modulus:         m.Modulus,
		Type:            m.Type,
		DateTimeCreated: m.DateTimeCreated,
		UserID:          m.UserID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyModel) FromDomain(k *keys.KeyMeta) {
	m.ID = k.ID
	m.KeyPairID = k.KeyPairID
	m.Algorithm = k.Algorithm
	m.KeySize = k.KeySize
	m.Exponent = k.Exponent
	m.Modulus = k.Modulus
	m.Type = k.Type
	m.DateTimeCreated = k.DateTimeCreated
	m.UserID = k.UserID
}
