package model

import "time"

// SystemConfig is a key/value settings row (admin PIN, UI preferences).
// Upsert-by-key; not part of the ledger.
type SystemConfig struct {
	ID        uint   `gorm:"primaryKey"`
	Chave     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Valor     string `gorm:"not null"`
	Descricao *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SystemConfig) TableName() string { return "system_config" }
